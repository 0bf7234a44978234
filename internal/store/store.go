package store

import (
	"context"

	"feedindia/pkg/types"

	sq "github.com/Masterminds/squirrel"
)

// DonationStore holds the donation records of one scope: the global admin
// view, one user's donations, or one donor session.
type DonationStore interface {
	// Submit validates the candidate, stores it most-recent-first and returns
	// the stored record.
	Submit(ctx context.Context, candidate *types.DonationCandidate) (*types.Donation, error)
	List(ctx context.Context) ([]*types.Donation, error)
	Donation(ctx context.Context, id string) (*types.Donation, error)
	UpdateStatus(ctx context.Context, id string, status types.DonationStatus) (*types.Donation, error)
	Events(ctx context.Context, id string) ([]*types.StatusEvent, error)
}

// AccountDirectory resolves read-only user accounts and the donation scope
// mapped to each of them.
type AccountDirectory interface {
	Accounts(ctx context.Context) ([]*types.UserAccount, error)
	Account(ctx context.Context, id string) (*types.UserAccount, error)
	DonationsFor(ctx context.Context, id string) (DonationStore, error)
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func donationNotFound(id string) error {
	return &types.NotFoundError{Entity: types.EntityDonation, ID: id}
}

func accountNotFound(id string) error {
	return &types.NotFoundError{Entity: types.EntityAccount, ID: id}
}

// WithDerivedCounts returns copies of accounts whose DonationCount is the size
// of their donation scope instead of the stored counter.
func WithDerivedCounts(ctx context.Context, dir AccountDirectory, accounts []*types.UserAccount) ([]*types.UserAccount, error) {
	out := make([]*types.UserAccount, 0, len(accounts))
	for _, account := range accounts {
		scope, err := dir.DonationsFor(ctx, account.ID)
		if err != nil {
			return nil, err
		}

		donations, err := scope.List(ctx)
		if err != nil {
			return nil, err
		}

		derived := *account
		derived.DonationCount = len(donations)
		out = append(out, &derived)
	}

	return out, nil
}
