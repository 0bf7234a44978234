package tracking

import (
	"time"

	"feedindia/pkg/types"
)

type Step struct {
	Title       string
	Description string
	Icon        string
	Completed   bool
	Current     bool
	At          time.Time
}

// Date and Time format At for display; both are empty when unknown.
func (s Step) Date() string {
	if s.At.IsZero() {
		return ""
	}
	return s.At.Format("Jan 2, 2006")
}

func (s Step) Time() string {
	if s.At.IsZero() || (s.At.Hour() == 0 && s.At.Minute() == 0) {
		return ""
	}
	return s.At.Format("3:04 PM")
}

type stage struct {
	title       string
	description string
	icon        string
	status      types.DonationStatus
}

// stages mirrors the fulfilment lifecycle. "Out for Delivery" has no status
// of its own and completes together with delivery.
var stages = []stage{
	{"Donation Confirmed", "Your generous donation has been registered in our system", "check-circle", types.DonationStatusPending},
	{"Pickup Scheduled", "Our volunteer will collect the donation from your location", "package", types.DonationStatusPickupScheduled},
	{"In Transit", "Your donation is on its way to our distribution center", "truck", types.DonationStatusInTransit},
	{"Quality Check & Sorting", "Items verified and prepared for distribution", "clipboard-check", types.DonationStatusQualityCheck},
	{"Out for Delivery", "Donation dispatched to recipient organization", "map-pin", ""},
	{"Delivered & Impact Made", "Your donation has reached those in need", "users", types.DonationStatusDelivered},
}

// progress is the index of the last completed stage for each status.
var progress = map[types.DonationStatus]int{
	types.DonationStatusPending:         0,
	types.DonationStatusPickupScheduled: 1,
	types.DonationStatusInTransit:       2,
	types.DonationStatusQualityCheck:    3,
	types.DonationStatusDelivered:       5,
	types.DonationStatusCompleted:       5,
}

type Timeline struct {
	Donation  *types.Donation
	Status    types.StatusDisplay
	Steps     []Step
	Cancelled bool
}

// Progress is the share of completed steps, 0-100.
func (t *Timeline) Progress() int {
	if len(t.Steps) == 0 {
		return 0
	}
	done := 0
	for _, s := range t.Steps {
		if s.Completed {
			done++
		}
	}
	return done * 100 / len(t.Steps)
}

// Build derives the tracking timeline from a record and its status events.
// The latest event for a status dates the matching step. Statuses outside the
// lifecycle only complete the confirmation step.
func Build(d *types.Donation, events []*types.StatusEvent) *Timeline {
	reached := make(map[types.DonationStatus]time.Time, len(events))
	for _, e := range events {
		reached[e.Status] = e.CreatedAt
	}

	last, ok := progress[d.Status]
	if !ok {
		last = 0
	}

	cancelled := d.Status == types.DonationStatusCancelled
	if cancelled {
		last = cancelledProgress(events)
	}

	t := &Timeline{
		Donation:  d,
		Status:    types.StatusDisplayFor(d.Status),
		Steps:     make([]Step, 0, len(stages)+1),
		Cancelled: cancelled,
	}

	for i, st := range stages {
		if cancelled && i > last {
			break
		}

		step := Step{
			Title:       st.title,
			Description: st.description,
			Icon:        st.icon,
			Completed:   i <= last,
			Current:     i == last && !cancelled,
		}
		if st.status != "" {
			step.At = reached[st.status]
		}
		if st.status == "" && step.Completed {
			step.At = reached[types.DonationStatusDelivered]
		}
		if i == 0 && step.At.IsZero() {
			step.At = d.CreatedAt
		}

		t.Steps = append(t.Steps, step)
	}

	if cancelled {
		t.Steps = append(t.Steps, Step{
			Title:       "Cancelled",
			Description: "This donation was cancelled before reaching a recipient",
			Icon:        "x-circle",
			Completed:   true,
			Current:     true,
			At:          reached[types.DonationStatusCancelled],
		})
	}

	return t
}

// cancelledProgress finds how far a cancelled donation got before the
// cancellation.
func cancelledProgress(events []*types.StatusEvent) int {
	last := 0
	for _, e := range events {
		if p, ok := progress[e.Status]; ok && p > last {
			last = p
		}
	}
	return last
}
