package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedindia/pkg/types"
)

func TestListDonationsQuery_Global(t *testing.T) {
	query, args, err := listDonationsQuery("").ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM feedindia.donations")
	assert.Contains(t, query, "ORDER BY seq DESC, id DESC")
	assert.NotContains(t, query, "user_donations")
	assert.Empty(t, args)
}

func TestListDonationsQuery_UserScope(t *testing.T) {
	query, args, err := listDonationsQuery("USR-001").ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "d.id, d.donor_name")
	assert.Contains(t, query, "JOIN feedindia.user_donations ud ON ud.donation_id = d.id")
	assert.Contains(t, query, "WHERE ud.user_id = $1")
	assert.Contains(t, query, "ORDER BY d.seq DESC, d.id DESC")
	assert.NotContains(t, query, "created_at DESC")
	assert.Equal(t, []any{"USR-001"}, args)
}

func TestDonationByIDQuery(t *testing.T) {
	query, args, err := donationByIDQuery("", "DON-2024-001").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE id = $1")
	assert.Equal(t, []any{"DON-2024-001"}, args)

	query, args, err = donationByIDQuery("USR-001", "DON-2024-001").ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE ud.user_id = $1 AND d.id = $2")
	assert.Equal(t, []any{"USR-001", "DON-2024-001"}, args)
}

func TestInsertDonationQuery(t *testing.T) {
	d := &types.Donation{
		ID:        "DON-1705746600000",
		Kind:      types.DonationKindFood,
		Status:    types.DonationStatusPending,
		CreatedAt: time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC),
	}

	query, args, err := insertDonationQuery(d).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO feedindia.donations")
	assert.NotContains(t, query, "ON CONFLICT", "a submission must fail on a taken id")
	assert.NotContains(t, query, "seq")
	assert.Len(t, args, len(donationColumns))
	assert.Contains(t, args, "DON-1705746600000")

	query, _, err = importDonationQuery(d).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (id) DO NOTHING")
}

func TestIsUniqueViolation(t *testing.T) {
	duplicate := fmt.Errorf("failed to insert donation: %w", &pgconn.PgError{Code: "23505"})

	assert.True(t, isUniqueViolation(duplicate))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection reset")))
	assert.False(t, isUniqueViolation(nil))
}

func TestDonationRepository_ForUserSharesIDSequence(t *testing.T) {
	repo := NewDonationRepository(nil, nil)
	scoped := repo.ForUser("USR-001")
	now := time.UnixMilli(1705746600000)

	assert.Equal(t, "DON-1705746600000", repo.ids.next(now))
	assert.Equal(t, "DON-1705746600001", scoped.ids.next(now))
}

func TestUpdateStatusQuery(t *testing.T) {
	query, args, err := updateStatusQuery("DON-2024-004", types.DonationStatusInTransit).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE feedindia.donations SET status = $1 WHERE id = $2", query)
	assert.Equal(t, []any{types.DonationStatusInTransit, "DON-2024-004"}, args)
}

func TestStatusEventsQuery(t *testing.T) {
	query, args, err := statusEventsQuery("DON-2024-004").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, donation_id, status, created_at FROM feedindia.donation_events WHERE donation_id = $1 ORDER BY created_at ASC", query)
	assert.Equal(t, []any{"DON-2024-004"}, args)
}

func TestUpsertAccountQuery(t *testing.T) {
	query, _, err := upsertAccountQuery(&types.UserAccount{ID: "USR-001"}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO feedindia.user_accounts")
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET")
}
