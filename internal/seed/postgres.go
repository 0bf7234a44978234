package seed

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"feedindia/internal/store"
	"feedindia/pkg/types"
)

// seedImport is one Import call: a donation, optionally linked to a user.
type seedImport struct {
	UserID   string
	Donation *types.Donation
}

// importPlan orders the fixture imports so that newest-first listing by
// insertion sequence reproduces fixture display order. Rows only a user owns
// are inserted first, then the global collection in reverse, then the links
// from users to global rows, which insert nothing new.
func importPlan() []seedImport {
	global := Donations()
	inGlobal := make(map[string]bool, len(global))
	for _, d := range global {
		inGlobal[d.ID] = true
	}

	byUser := DonationsByUser()
	userIDs := make([]string, 0, len(byUser))
	for userID := range byUser {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	var plan []seedImport
	for _, userID := range userIDs {
		owned := slices.Clone(byUser[userID])
		slices.Reverse(owned)
		for _, d := range owned {
			if !inGlobal[d.ID] {
				plan = append(plan, seedImport{UserID: userID, Donation: d})
			}
		}
	}

	slices.Reverse(global)
	for _, d := range global {
		plan = append(plan, seedImport{Donation: d})
	}

	for _, userID := range userIDs {
		for _, d := range byUser[userID] {
			if inGlobal[d.ID] {
				plan = append(plan, seedImport{UserID: userID, Donation: d})
			}
		}
	}

	return plan
}

// SeedPostgres upserts the fixture accounts and donations. Donations that
// already exist keep their current status and history.
func SeedPostgres(ctx context.Context, accounts *store.AccountRepository, donations *store.DonationRepository) error {
	for _, account := range Accounts() {
		if err := accounts.Upsert(ctx, account); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.ID, err)
		}
	}
	fmt.Printf("Accounts seeded: %d upserted\n", len(Accounts()))

	plan := importPlan()
	for _, step := range plan {
		repo := donations
		if step.UserID != "" {
			repo = donations.ForUser(step.UserID)
		}

		if err := repo.Import(ctx, step.Donation); err != nil {
			return fmt.Errorf("failed to seed donation %s: %w", step.Donation.ID, err)
		}
	}

	fmt.Printf("Donations seeded: %d imports\n", len(plan))
	return nil
}
