package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feedindia/internal/utils"
	"feedindia/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	donationTableName = "feedindia.donations"

	// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
	uniqueViolation = "23505"

	maxSubmitAttempts = 5
)

var donationColumns = utils.StructTagValues(types.Donation{})

// DonationRepository is the Postgres-backed donation store. A repository
// returned by ForUser is scoped to the donations linked to that user.
type DonationRepository struct {
	pool   *pgxpool.Pool
	policy TransitionPolicy
	ids    *idSequence
	userID string
}

func NewDonationRepository(pool *pgxpool.Pool, policy TransitionPolicy) *DonationRepository {
	if policy == nil {
		policy = PermissiveTransitions
	}
	return &DonationRepository{pool: pool, policy: policy, ids: new(idSequence)}
}

func (r *DonationRepository) ForUser(userID string) *DonationRepository {
	return &DonationRepository{pool: r.pool, policy: r.policy, ids: r.ids, userID: userID}
}

// Rows come back in insertion order, newest first. seq is assigned by the
// database on insert, id breaks ties.
func listDonationsQuery(userID string) sq.SelectBuilder {
	if userID == "" {
		return psql().
			Select(donationColumns...).
			From(donationTableName).
			OrderBy("seq DESC", "id DESC")
	}

	return psql().
		Select(utils.PrefixSliceOfStrings("d", donationColumns)...).
		From(donationTableName + " d").
		Join(userDonationTableName + " ud ON ud.donation_id = d.id").
		Where(sq.Eq{"ud.user_id": userID}).
		OrderBy("d.seq DESC", "d.id DESC")
}

func donationByIDQuery(userID, id string) sq.SelectBuilder {
	if userID == "" {
		return psql().
			Select(donationColumns...).
			From(donationTableName).
			Where(sq.Eq{"id": id}).
			Limit(1)
	}

	return listDonationsQuery(userID).Where(sq.Eq{"d.id": id}).Limit(1)
}

func (r *DonationRepository) List(ctx context.Context) ([]*types.Donation, error) {
	query, args, err := listDonationsQuery(r.userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate list donations query: %w", err)
	}

	donations := make([]*types.Donation, 0)
	err = pgxscan.Select(ctx, r.pool, &donations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch donations: %w", err)
	}

	return donations, nil
}

func (r *DonationRepository) Donation(ctx context.Context, id string) (*types.Donation, error) {
	query, args, err := donationByIDQuery(r.userID, id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate donation query: %w", err)
	}

	var donation = new(types.Donation)
	err = pgxscan.Get(ctx, r.pool, donation, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, donationNotFound(id)
		}
		return nil, fmt.Errorf("failed to fetch donation %s: %w", id, err)
	}

	return donation, nil
}

// Submit stores a new record under a fresh DON-<millis> id. An id already
// taken by another process is skipped, never overwritten.
func (r *DonationRepository) Submit(ctx context.Context, candidate *types.DonationCandidate) (*types.Donation, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	donation := candidate.Record()

	for attempt := 1; ; attempt++ {
		now := time.Now()
		donation.ID = r.ids.next(now)
		donation.CreatedAt = now
		donation.Date = now.Format(time.DateOnly)

		err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
			return r.insert(ctx, tx, insertDonationQuery(donation), donation)
		})
		if err == nil {
			return donation, nil
		}

		if !isUniqueViolation(err) || attempt == maxSubmitAttempts {
			return nil, utils.ErrorWrapOrNil(err, "failed to submit donation")
		}
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Import stores a fully formed record, keeping its id. A record that already
// exists keeps its row and history; only the user link may be added. Used by
// seeding.
func (r *DonationRepository) Import(ctx context.Context, donation *types.Donation) error {
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = seededAt(donation)
	}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return r.insert(ctx, tx, importDonationQuery(donation), donation)
	})
	return utils.ErrorWrapOrNil(err, "failed to import donation")
}

func insertDonationQuery(donation *types.Donation) sq.InsertBuilder {
	return psql().
		Insert(donationTableName).
		SetMap(utils.StructToMap(donation))
}

func importDonationQuery(donation *types.Donation) sq.InsertBuilder {
	return insertDonationQuery(donation).Suffix("ON CONFLICT (id) DO NOTHING")
}

func (r *DonationRepository) insert(ctx context.Context, tx pgx.Tx, builder sq.InsertBuilder, donation *types.Donation) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert donation query: %w", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}

	// An existing row keeps its history; only the user link may be new.
	if tag.RowsAffected() > 0 {
		if err := recordStatusEvent(ctx, tx, donation.ID, donation.Status, donation.CreatedAt); err != nil {
			return err
		}
	}

	if r.userID != "" {
		return linkUserDonation(ctx, tx, r.userID, donation.ID)
	}

	return nil
}

func updateStatusQuery(id string, status types.DonationStatus) sq.UpdateBuilder {
	return psql().
		Update(donationTableName).
		Set("status", status).
		Where(sq.Eq{"id": id})
}

func (r *DonationRepository) UpdateStatus(ctx context.Context, id string, status types.DonationStatus) (*types.Donation, error) {
	var updated *types.Donation

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		query, args, err := donationByIDQuery(r.userID, id).Suffix("FOR UPDATE").ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate donation query: %w", err)
		}

		var current = new(types.Donation)
		err = pgxscan.Get(ctx, tx, current, query, args...)
		if err != nil {
			if pgxscan.NotFound(err) {
				return donationNotFound(id)
			}
			return fmt.Errorf("failed to fetch donation %s: %w", id, err)
		}

		if err := checkTransition(r.policy, current.Status, status); err != nil {
			return err
		}

		query, args, err = updateStatusQuery(id, status).ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate update status query for donation %s: %w", id, err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update donation status: %w", err)
		}

		if err := recordStatusEvent(ctx, tx, id, status, time.Now()); err != nil {
			return err
		}

		current.Status = status
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *DonationRepository) Events(ctx context.Context, id string) ([]*types.StatusEvent, error) {
	if _, err := r.Donation(ctx, id); err != nil {
		return nil, err
	}

	return statusEvents(ctx, r.pool, id)
}
