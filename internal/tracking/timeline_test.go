package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedindia/pkg/types"
)

func completedTitles(t *Timeline) []string {
	var out []string
	for _, s := range t.Steps {
		if s.Completed {
			out = append(out, s.Title)
		}
	}
	return out
}

func TestBuild_Pending(t *testing.T) {
	created := time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC)
	d := &types.Donation{ID: "DON-1", Status: types.DonationStatusPending, CreatedAt: created}

	tl := Build(d, nil)

	require.Len(t, tl.Steps, 6)
	assert.Equal(t, []string{"Donation Confirmed"}, completedTitles(tl))
	assert.True(t, tl.Steps[0].Current)
	assert.Equal(t, "Jan 20, 2024", tl.Steps[0].Date())
	assert.Equal(t, "10:30 AM", tl.Steps[0].Time())
	assert.Equal(t, 16, tl.Progress())
}

func TestBuild_InTransitUsesEventTimes(t *testing.T) {
	at := time.Date(2024, 1, 20, 14, 15, 0, 0, time.UTC)
	d := &types.Donation{ID: "DON-1", Status: types.DonationStatusInTransit}
	events := []*types.StatusEvent{
		{Status: types.DonationStatusPending, CreatedAt: at.Add(-4 * time.Hour)},
		{Status: types.DonationStatusInTransit, CreatedAt: at},
	}

	tl := Build(d, events)

	assert.Equal(t, []string{"Donation Confirmed", "Pickup Scheduled", "In Transit"}, completedTitles(tl))
	assert.Equal(t, "2:15 PM", tl.Steps[2].Time())
	assert.True(t, tl.Steps[1].At.IsZero(), "skipped stage has no time")
	assert.True(t, tl.Steps[2].Current)
}

func TestBuild_DeliveredAndCompletedFinishEveryStep(t *testing.T) {
	for _, status := range []types.DonationStatus{types.DonationStatusDelivered, types.DonationStatusCompleted} {
		tl := Build(&types.Donation{Status: status}, nil)
		assert.Len(t, completedTitles(tl), 6, status)
		assert.Equal(t, 100, tl.Progress())
	}
}

func TestBuild_Cancelled(t *testing.T) {
	d := &types.Donation{Status: types.DonationStatusCancelled}
	events := []*types.StatusEvent{
		{Status: types.DonationStatusPending},
		{Status: types.DonationStatusPickupScheduled},
		{Status: types.DonationStatusCancelled},
	}

	tl := Build(d, events)

	require.True(t, tl.Cancelled)
	require.Len(t, tl.Steps, 3)
	assert.Equal(t, "Pickup Scheduled", tl.Steps[1].Title)
	assert.Equal(t, "Cancelled", tl.Steps[2].Title)
	assert.Equal(t, "Cancelled", tl.Status.Label)
}

func TestBuild_UnknownStatusFallsBack(t *testing.T) {
	tl := Build(&types.Donation{Status: "on-hold"}, nil)

	assert.Equal(t, []string{"Donation Confirmed"}, completedTitles(tl))
	assert.Equal(t, "on-hold", tl.Status.Label)
}
