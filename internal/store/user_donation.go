package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// user_donations is the external mapping from an account to its donations;
// donation rows carry no user column.
const userDonationTableName = "feedindia.user_donations"

func linkUserDonation(ctx context.Context, tx pgx.Tx, userID, donationID string) error {
	query, args, err := psql().
		Insert(userDonationTableName).
		Columns("user_id", "donation_id").
		Values(userID, donationID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert user donation query: %w", err)
	}

	_, err = tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to link donation %s to user %s: %w", donationID, userID, err)
	}

	return nil
}
