package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedindia/pkg/types"
)

func TestSessionRegistry_Isolation(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRegistry(time.Hour)

	_, err := r.Store("alpha").Submit(ctx, &types.DonationCandidate{Kind: "food", Item: "Rice", Quantity: "10kg", Location: "Pune", Window: "4"})
	require.NoError(t, err)

	assert.Equal(t, 1, r.Store("alpha").Len())
	assert.Equal(t, 0, r.Store("beta").Len())
	assert.Equal(t, 2, r.Len())
}

func TestSessionRegistry_Lookup(t *testing.T) {
	r := NewSessionRegistry(time.Hour)

	_, ok := r.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len(), "lookup must not create sessions")

	created := r.Store("alpha")
	found, ok := r.Lookup("alpha")
	require.True(t, ok)
	assert.Same(t, created, found)
}

func TestSessionRegistry_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)
	r := NewSessionRegistry(time.Hour, WithClock(func() time.Time { return now }))

	r.Store("old")
	now = now.Add(45 * time.Minute)
	r.Store("fresh")
	now = now.Add(30 * time.Minute)

	assert.Equal(t, 1, r.Sweep())
	_, ok := r.Lookup("old")
	assert.False(t, ok)
	_, ok = r.Lookup("fresh")
	assert.True(t, ok)
}
