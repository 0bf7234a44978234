package store

import "feedindia/pkg/types"

// TransitionPolicy decides whether a record may move between two statuses.
type TransitionPolicy func(from, to types.DonationStatus) error

// PermissiveTransitions allows any status in the fixed set from any status.
func PermissiveTransitions(_, _ types.DonationStatus) error {
	return nil
}

var allowedTransitions = map[types.DonationStatus][]types.DonationStatus{
	types.DonationStatusPending:         {types.DonationStatusPickupScheduled, types.DonationStatusCompleted, types.DonationStatusCancelled},
	types.DonationStatusPickupScheduled: {types.DonationStatusInTransit, types.DonationStatusCancelled},
	types.DonationStatusInTransit:       {types.DonationStatusQualityCheck, types.DonationStatusDelivered, types.DonationStatusCancelled},
	types.DonationStatusQualityCheck:    {types.DonationStatusDelivered, types.DonationStatusCancelled},
	types.DonationStatusDelivered:       {types.DonationStatusCompleted},
}

// StrictTransitions only allows forward moves along the fulfilment lifecycle.
// Completed and cancelled are terminal. Re-assigning the current status is a
// no-op and always allowed.
func StrictTransitions(from, to types.DonationStatus) error {
	if from == to {
		return nil
	}

	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}

	return &types.TransitionError{From: from, To: to}
}

func TransitionPolicyFor(strict bool) TransitionPolicy {
	if strict {
		return StrictTransitions
	}
	return PermissiveTransitions
}

// checkTransition enforces the fixed status set before consulting policy.
func checkTransition(policy TransitionPolicy, from, to types.DonationStatus) error {
	if !to.Valid() {
		return &types.ValidationError{Fields: []string{"status"}}
	}

	if policy == nil {
		policy = PermissiveTransitions
	}

	return policy(from, to)
}
