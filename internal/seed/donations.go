package seed

import (
	"feedindia/pkg/types"
)

func donation(id, donor string, kind types.DonationKind, item, quantity, location string, status types.DonationStatus, date, recipient string) *types.Donation {
	return &types.Donation{
		ID:           id,
		DonorName:    donor,
		Kind:         kind,
		ItemOrAmount: item,
		Quantity:     quantity,
		Location:     location,
		Status:       status,
		Date:         date,
		Recipient:    recipient,
	}
}

// Donations is the admin console's global collection, in display order.
func Donations() []*types.Donation {
	return []*types.Donation{
		donation("DON-2024-001", "Rajesh Kumar", types.DonationKindFood, "Rice & Dal", "50 kg", "Mumbai", types.DonationStatusDelivered, "2024-01-15", "Hope Shelter"),
		donation("DON-2024-002", "Priya Foods Ltd", types.DonationKindFood, "Ready Meals", "200 plates", "Delhi", types.DonationStatusInTransit, "2024-01-16", "Community Kitchen"),
		donation("DON-2024-003", "Amit Sharma", types.DonationKindMonetary, "₹15,000", "-", "Bangalore", types.DonationStatusCompleted, "2024-01-16", "General Fund"),
		donation("DON-2024-004", "Green Grocers", types.DonationKindFood, "Fresh Vegetables", "30 kg", "Chennai", types.DonationStatusPending, "2024-01-17", types.RecipientUnassigned),
		donation("DON-2024-005", "Hotel Sunshine", types.DonationKindFood, "Cooked Food", "100 plates", "Hyderabad", types.DonationStatusPickupScheduled, "2024-01-17", "Street Children NGO"),
		donation("DON-2024-006", "Meera Patel", types.DonationKindMonetary, "₹1,500", "-", "Pune", types.DonationStatusCompleted, "2024-01-17", "Meal Program"),
		donation("DON-2024-007", "Fresh Mart", types.DonationKindFood, "Bread & Bakery", "80 units", "Kolkata", types.DonationStatusQualityCheck, "2024-01-18", "Orphanage Care"),
		donation("DON-2024-008", "Corporate Cares Inc", types.DonationKindMonetary, "₹30,000", "-", "Mumbai", types.DonationStatusCompleted, "2024-01-18", "Training Program"),
	}
}

// DonationsByUser maps account ids to their donation history. Accounts
// without an entry have no donations on record.
func DonationsByUser() map[string][]*types.Donation {
	return map[string][]*types.Donation{
		"USR-001": {
			donation("DON-2024-001", "Rajesh Kumar", types.DonationKindFood, "Rice & Dal", "50 kg", "Mumbai", types.DonationStatusDelivered, "2024-01-15", "Hope Shelter"),
			donation("DON-2024-010", "Rajesh Kumar", types.DonationKindFood, "Vegetables", "20 kg", "Mumbai", types.DonationStatusInTransit, "2024-01-18", "Community Kitchen"),
		},
		"USR-002": {
			donation("DON-2024-002", "Priya Foods Ltd", types.DonationKindFood, "Ready Meals", "200 plates", "Delhi", types.DonationStatusInTransit, "2024-01-16", "Community Kitchen"),
			donation("DON-2024-011", "Priya Foods Ltd", types.DonationKindFood, "Packaged Snacks", "500 units", "Delhi", types.DonationStatusPending, "2024-01-19", "School Program"),
			donation("DON-2024-012", "Priya Foods Ltd", types.DonationKindMonetary, "₹50,000", "-", "Delhi", types.DonationStatusCompleted, "2024-01-10", "General Fund"),
		},
		"USR-004": {
			donation("DON-2024-003", "Amit Sharma", types.DonationKindMonetary, "₹15,000", "-", "Bangalore", types.DonationStatusCompleted, "2024-01-16", "General Fund"),
		},
		"USR-005": {
			donation("DON-2024-004", "Green Grocers", types.DonationKindFood, "Fresh Vegetables", "30 kg", "Chennai", types.DonationStatusPending, "2024-01-17", types.RecipientUnassigned),
			donation("DON-2024-013", "Green Grocers", types.DonationKindFood, "Fruits", "25 kg", "Chennai", types.DonationStatusDelivered, "2024-01-12", "Orphanage Care"),
		},
		"USR-006": {
			donation("DON-2024-006", "Meera Patel", types.DonationKindMonetary, "₹1,500", "-", "Pune", types.DonationStatusCompleted, "2024-01-17", "Meal Program"),
		},
	}
}
