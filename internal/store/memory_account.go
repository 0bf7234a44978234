package store

import (
	"context"
	"sync"

	"feedindia/pkg/types"
)

// MemoryAccountDirectory serves fixture accounts. Every account owns an
// independent donation scope; status changes made there are not reflected in
// any other scope.
type MemoryAccountDirectory struct {
	opts []MemoryOption

	mu       sync.Mutex
	accounts []*types.UserAccount
	scopes   map[string]*MemoryDonationStore
}

func NewMemoryAccountDirectory(accounts []*types.UserAccount, donationsByUser map[string][]*types.Donation, opts ...MemoryOption) *MemoryAccountDirectory {
	d := &MemoryAccountDirectory{
		opts:     opts,
		accounts: make([]*types.UserAccount, 0, len(accounts)),
		scopes:   make(map[string]*MemoryDonationStore, len(donationsByUser)),
	}

	for _, a := range accounts {
		account := *a
		d.accounts = append(d.accounts, &account)
	}

	for userID, donations := range donationsByUser {
		d.scopes[userID] = NewMemoryDonationStore(donations, opts...)
	}

	return d
}

func (d *MemoryAccountDirectory) Accounts(_ context.Context) ([]*types.UserAccount, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*types.UserAccount, 0, len(d.accounts))
	for _, a := range d.accounts {
		account := *a
		out = append(out, &account)
	}
	return out, nil
}

func (d *MemoryAccountDirectory) Account(_ context.Context, id string) (*types.UserAccount, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a := d.find(id)
	if a == nil {
		return nil, accountNotFound(id)
	}

	out := *a
	return &out, nil
}

// DonationsFor returns the account's scope, creating an empty one for
// accounts without any mapped donations.
func (d *MemoryAccountDirectory) DonationsFor(_ context.Context, id string) (DonationStore, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.find(id) == nil {
		return nil, accountNotFound(id)
	}

	scope, ok := d.scopes[id]
	if !ok {
		scope = NewMemoryDonationStore(nil, d.opts...)
		d.scopes[id] = scope
	}

	return scope, nil
}

func (d *MemoryAccountDirectory) find(id string) *types.UserAccount {
	for _, a := range d.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}
