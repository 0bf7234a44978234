package store

import (
	"context"
	"fmt"
	"time"

	"feedindia/internal/utils"
	"feedindia/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountTableName = "feedindia.user_accounts"

var accountColumns = utils.StructTagValues(types.UserAccount{})

type AccountRepository struct {
	pool      *pgxpool.Pool
	donations *DonationRepository
}

func NewAccountRepository(pool *pgxpool.Pool, donations *DonationRepository) *AccountRepository {
	return &AccountRepository{pool: pool, donations: donations}
}

func (r *AccountRepository) Accounts(ctx context.Context) ([]*types.UserAccount, error) {
	query, args, err := psql().
		Select(accountColumns...).
		From(accountTableName).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate accounts query: %w", err)
	}

	accounts := make([]*types.UserAccount, 0)
	err = pgxscan.Select(ctx, r.pool, &accounts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepository) Account(ctx context.Context, id string) (*types.UserAccount, error) {
	query, args, err := psql().
		Select(accountColumns...).
		From(accountTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account query: %w", err)
	}

	var account types.UserAccount
	err = pgxscan.Get(ctx, r.pool, &account, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, accountNotFound(id)
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	return &account, nil
}

func (r *AccountRepository) DonationsFor(ctx context.Context, id string) (DonationStore, error) {
	if _, err := r.Account(ctx, id); err != nil {
		return nil, err
	}

	return r.donations.ForUser(id), nil
}

func upsertAccountQuery(account *types.UserAccount) sq.InsertBuilder {
	return psql().
		Insert(accountTableName).
		SetMap(utils.StructToMap(account)).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			account_type = EXCLUDED.account_type,
			donation_count = EXCLUDED.donation_count,
			joined_date = EXCLUDED.joined_date,
			activity_status = EXCLUDED.activity_status`)
}

// Upsert inserts the account or refreshes an existing row with the same id.
func (r *AccountRepository) Upsert(ctx context.Context, account *types.UserAccount) error {
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	query, args, err := upsertAccountQuery(account).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert account query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert account")
}
