package store

import (
	"context"
	"fmt"
	"time"

	"feedindia/internal/utils"
	"feedindia/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

const donationEventsTableName = "feedindia.donation_events"

var donationEventColumns = utils.StructTagValues(types.StatusEvent{})

// recordStatusEvent logs that a donation entered a status (allows duplicates
// when an operator re-assigns the same status)
func recordStatusEvent(ctx context.Context, tx pgx.Tx, donationID string, status types.DonationStatus, at time.Time) error {
	query, args, err := psql().
		Insert(donationEventsTableName).
		Columns(donationEventColumns...).
		Values(utils.NanoID(), donationID, status, at).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert status event query: %w", err)
	}

	_, err = tx.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to record status event")
}

func statusEventsQuery(donationID string) sq.SelectBuilder {
	return psql().
		Select(donationEventColumns...).
		From(donationEventsTableName).
		Where(sq.Eq{"donation_id": donationID}).
		OrderBy("created_at ASC")
}

// statusEvents returns all status events for a donation, ordered chronologically
func statusEvents(ctx context.Context, db pgxscan.Querier, donationID string) ([]*types.StatusEvent, error) {
	query, args, err := statusEventsQuery(donationID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate status events query: %w", err)
	}

	var events []*types.StatusEvent
	err = pgxscan.Select(ctx, db, &events, query, args...)
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to get status events")
	}

	return events, nil
}
