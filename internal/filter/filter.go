// Package filter computes the visible subset of a collection for a set of
// criteria. Every function here is pure: inputs are never mutated and the
// relative order of the input is preserved.
package filter

import (
	"strings"

	"feedindia/pkg/types"
)

// All is the categorical sentinel that disables a filter.
const All = "all"

type Predicate[T any] func(T) bool

// Apply returns the items satisfying every predicate, in input order. The
// result is always a fresh slice.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))

itemloop:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue itemloop
			}
		}
		out = append(out, item)
	}

	return out
}

// MatchText reports whether any field contains query, ignoring case. An empty
// query matches everything.
func MatchText(query string, fields ...string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func inactive(filter string) bool {
	return filter == "" || filter == All
}

// MatchExact is a categorical match with exact equality.
func MatchExact(filter, value string) bool {
	return inactive(filter) || filter == value
}

// MatchFold is a categorical match ignoring case.
func MatchFold(filter, value string) bool {
	return inactive(filter) || strings.EqualFold(filter, value)
}

// DonationCriteria is decoded from the admin query string.
type DonationCriteria struct {
	Query  string `form:"q"`
	Status string `form:"status"`
	Kind   string `form:"type"`
}

// Active reports whether any criterion narrows the collection.
func (c DonationCriteria) Active() bool {
	return c.Query != "" || !inactive(c.Status) || !inactive(c.Kind)
}

func Donations(records []*types.Donation, c DonationCriteria) []*types.Donation {
	return Apply(records,
		func(d *types.Donation) bool {
			return MatchText(c.Query, d.ID, d.DonorName, d.ItemOrAmount)
		},
		func(d *types.Donation) bool {
			return MatchExact(c.Status, string(d.Status))
		},
		func(d *types.Donation) bool {
			return MatchFold(c.Kind, string(d.Kind))
		},
	)
}

type AccountCriteria struct {
	Query       string `form:"q"`
	AccountType string `form:"accountType"`
}

func Accounts(accounts []*types.UserAccount, c AccountCriteria) []*types.UserAccount {
	return Apply(accounts,
		func(a *types.UserAccount) bool {
			return MatchText(c.Query, a.Name, a.Email)
		},
		func(a *types.UserAccount) bool {
			return MatchFold(c.AccountType, string(a.AccountType))
		},
	)
}
