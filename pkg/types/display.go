package types

import "strings"

// StatusDisplay is the badge rendered for a donation status.
type StatusDisplay struct {
	Label   string
	Variant string
	Icon    string
}

var statusDisplays = map[DonationStatus]StatusDisplay{
	DonationStatusPending:         {Label: "Pending", Variant: "outline", Icon: "clock"},
	DonationStatusPickupScheduled: {Label: "Pickup Scheduled", Variant: "secondary", Icon: "calendar"},
	DonationStatusInTransit:       {Label: "In Transit", Variant: "secondary", Icon: "truck"},
	DonationStatusQualityCheck:    {Label: "Quality Check", Variant: "secondary", Icon: "eye"},
	DonationStatusDelivered:       {Label: "Delivered", Variant: "default", Icon: "check-circle"},
	DonationStatusCompleted:       {Label: "Completed", Variant: "default", Icon: "check-circle"},
	DonationStatusCancelled:       {Label: "Cancelled", Variant: "destructive", Icon: "x-circle"},
}

// DefaultStatusDisplay is used for any status outside the fixed set.
var DefaultStatusDisplay = StatusDisplay{Label: "Unknown", Variant: "outline", Icon: "clock"}

// StatusDisplayFor never fails: unknown statuses get the default badge with
// the raw value as label so operators can still see what was stored.
func StatusDisplayFor(status DonationStatus) StatusDisplay {
	if d, ok := statusDisplays[status]; ok {
		return d
	}

	d := DefaultStatusDisplay
	if raw := strings.TrimSpace(string(status)); raw != "" {
		d.Label = raw
	}
	return d
}

type AccountTypeDisplay struct {
	Icon  string
	Color string
}

var accountTypeDisplays = map[AccountType]AccountTypeDisplay{
	AccountTypeIndividual:   {Icon: "user", Color: "text-blue-600"},
	AccountTypeOrganization: {Icon: "building", Color: "text-purple-600"},
	AccountTypeCorporate:    {Icon: "trending-up", Color: "text-green-600"},
}

var DefaultAccountTypeDisplay = AccountTypeDisplay{Icon: "user", Color: "text-muted-foreground"}

func AccountTypeDisplayFor(t AccountType) AccountTypeDisplay {
	if d, ok := accountTypeDisplays[t]; ok {
		return d
	}
	return DefaultAccountTypeDisplay
}

type KindDisplay struct {
	Label   string
	Variant string
}

var kindDisplays = map[DonationKind]KindDisplay{
	DonationKindFood:     {Label: "Food", Variant: "outline"},
	DonationKindMonetary: {Label: "Monetary", Variant: "secondary"},
	DonationKindSupplies: {Label: "Supplies", Variant: "outline"},
}

func KindDisplayFor(kind DonationKind) KindDisplay {
	if d, ok := kindDisplays[kind]; ok {
		return d
	}
	return KindDisplay{Label: string(kind), Variant: "outline"}
}
