package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedindia/pkg/types"
)

func testDirectory() *MemoryAccountDirectory {
	accounts := []*types.UserAccount{
		{ID: "USR-001", Name: "Rajesh Kumar", Email: "rajesh@email.com", AccountType: types.AccountTypeIndividual, DonationCount: 12},
		{ID: "USR-003", Name: "Hope Foundation", Email: "info@hopefoundation.org", AccountType: types.AccountTypeOrganization},
	}
	byUser := map[string][]*types.Donation{
		"USR-001": seedDonations(),
	}
	return NewMemoryAccountDirectory(accounts, byUser)
}

func TestMemoryAccountDirectory_Account(t *testing.T) {
	ctx := context.Background()
	dir := testDirectory()

	a, err := dir.Account(ctx, "USR-001")
	require.NoError(t, err)
	assert.Equal(t, "Rajesh Kumar", a.Name)

	_, err = dir.Account(ctx, "USR-404")
	assert.ErrorIs(t, err, types.ErrAccountNotFound)
}

func TestMemoryAccountDirectory_DonationsFor(t *testing.T) {
	ctx := context.Background()
	dir := testDirectory()

	scope, err := dir.DonationsFor(ctx, "USR-001")
	require.NoError(t, err)
	list, err := scope.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := dir.DonationsFor(ctx, "USR-003")
	require.NoError(t, err)
	list, err = empty.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = dir.DonationsFor(ctx, "USR-404")
	assert.ErrorIs(t, err, types.ErrAccountNotFound)
}

func TestMemoryAccountDirectory_ScopeKeepsStatusChanges(t *testing.T) {
	ctx := context.Background()
	dir := testDirectory()

	scope, err := dir.DonationsFor(ctx, "USR-001")
	require.NoError(t, err)
	_, err = scope.UpdateStatus(ctx, "DON-2024-004", types.DonationStatusInTransit)
	require.NoError(t, err)

	again, err := dir.DonationsFor(ctx, "USR-001")
	require.NoError(t, err)
	d, err := again.Donation(ctx, "DON-2024-004")
	require.NoError(t, err)
	assert.Equal(t, types.DonationStatusInTransit, d.Status)
}

func TestWithDerivedCounts(t *testing.T) {
	ctx := context.Background()
	dir := testDirectory()

	accounts, err := dir.Accounts(ctx)
	require.NoError(t, err)

	derived, err := WithDerivedCounts(ctx, dir, accounts)
	require.NoError(t, err)
	require.Len(t, derived, 2)
	assert.Equal(t, 2, derived[0].DonationCount)
	assert.Equal(t, 0, derived[1].DonationCount)

	assert.Equal(t, 12, accounts[0].DonationCount, "stored counter left untouched")
}
