package types

import (
	"strings"
	"time"
)

type DonationKind string

const (
	DonationKindFood     DonationKind = "Food"
	DonationKindMonetary DonationKind = "Monetary"
	DonationKindSupplies DonationKind = "Supplies"
)

// ParseDonationKind accepts the lower case form values used by the donor
// form ("food", "monetary", "supplies") as well as the display values.
func ParseDonationKind(v string) (DonationKind, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "food":
		return DonationKindFood, true
	case "monetary":
		return DonationKindMonetary, true
	case "supplies":
		return DonationKindSupplies, true
	}
	return "", false
}

type DonationStatus string

const (
	DonationStatusPending         DonationStatus = "pending"
	DonationStatusPickupScheduled DonationStatus = "pickup-scheduled"
	DonationStatusInTransit       DonationStatus = "in-transit"
	DonationStatusQualityCheck    DonationStatus = "quality-check"
	DonationStatusDelivered       DonationStatus = "delivered"
	DonationStatusCompleted       DonationStatus = "completed"
	DonationStatusCancelled       DonationStatus = "cancelled"
)

// DonationStatuses is the fixed status set in lifecycle order.
var DonationStatuses = []DonationStatus{
	DonationStatusPending,
	DonationStatusPickupScheduled,
	DonationStatusInTransit,
	DonationStatusQualityCheck,
	DonationStatusDelivered,
	DonationStatusCompleted,
	DonationStatusCancelled,
}

func (s DonationStatus) Valid() bool {
	for _, known := range DonationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// RecipientUnassigned is shown until an operator routes the donation.
const RecipientUnassigned = "Pending Assignment"

type Donation struct {
	ID               string         `db:"id"`
	DonorName        string         `db:"donor_name"`
	Kind             DonationKind   `db:"kind"`
	ItemOrAmount     string         `db:"item_or_amount"`
	Quantity         string         `db:"quantity"`
	Location         string         `db:"location"`
	Window           string         `db:"availability_window"`
	PaymentMethod    string         `db:"payment_method"`
	Purpose          string         `db:"purpose"`
	PaymentReference string         `db:"payment_reference"`
	Status           DonationStatus `db:"status"`
	Recipient        string         `db:"recipient"`
	Date             string         `db:"donation_date"`
	Notes            string         `db:"notes"`
	CreatedAt        time.Time      `db:"created_at"`
}

// DisplayQuantity renders a dash for kinds where quantity has no meaning.
func (d *Donation) DisplayQuantity() string {
	if d.Kind == DonationKindMonetary || strings.TrimSpace(d.Quantity) == "" {
		return "-"
	}
	return d.Quantity
}

// DonationCandidate is the submit-shaped payload posted by the donor form.
type DonationCandidate struct {
	Kind          string `form:"donationType"`
	DonorName     string `form:"donorName"`
	Item          string `form:"foodItem"`
	Quantity      string `form:"quantity"`
	Location      string `form:"location"`
	Window        string `form:"bestBefore"`
	Amount        string `form:"amount"`
	PaymentMethod string `form:"paymentMethod"`
	Purpose       string `form:"purpose"`
	Notes         string `form:"notes"`

	// PaymentReference is set by the server once a payment gateway accepted
	// the monetary amount; never decoded from the form.
	PaymentReference string `form:"-"`
}

type requiredField struct {
	name  string
	value string
}

// Validate reports every required field missing for the candidate's kind.
// A candidate without a recognised kind only reports the kind.
func (c *DonationCandidate) Validate() error {
	if c == nil {
		return &ValidationError{Fields: []string{"donationType"}}
	}

	kind, ok := ParseDonationKind(c.Kind)
	if !ok {
		return &ValidationError{Fields: []string{"donationType"}}
	}

	var required []requiredField
	switch kind {
	case DonationKindMonetary:
		required = []requiredField{
			{"amount", c.Amount},
			{"paymentMethod", c.PaymentMethod},
			{"purpose", c.Purpose},
		}
	default:
		required = []requiredField{
			{"foodItem", c.Item},
			{"quantity", c.Quantity},
			{"location", c.Location},
			{"bestBefore", c.Window},
		}
	}

	missing := make([]string, 0, len(required))
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	return nil
}

// Record builds the stored form of a validated candidate. The caller assigns
// the id and timestamps.
func (c *DonationCandidate) Record() *Donation {
	kind, _ := ParseDonationKind(c.Kind)

	d := &Donation{
		DonorName: strings.TrimSpace(c.DonorName),
		Kind:      kind,
		Location:  strings.TrimSpace(c.Location),
		Status:    DonationStatusPending,
		Recipient: RecipientUnassigned,
		Notes:     strings.TrimSpace(c.Notes),
	}

	if kind == DonationKindMonetary {
		d.ItemOrAmount = strings.TrimSpace(c.Amount)
		d.PaymentMethod = strings.TrimSpace(c.PaymentMethod)
		d.Purpose = strings.TrimSpace(c.Purpose)
		d.PaymentReference = c.PaymentReference
		return d
	}

	d.ItemOrAmount = strings.TrimSpace(c.Item)
	d.Quantity = strings.TrimSpace(c.Quantity)
	d.Window = strings.TrimSpace(c.Window)
	return d
}

type StatusEvent struct {
	ID         string         `db:"id"`
	DonationID string         `db:"donation_id"`
	Status     DonationStatus `db:"status"`
	CreatedAt  time.Time      `db:"created_at"`
}
