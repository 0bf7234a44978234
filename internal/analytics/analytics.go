package analytics

import (
	"sort"

	"feedindia/internal/payment"
	"feedindia/pkg/types"
)

type KindShare struct {
	Kind    types.DonationKind
	Count   int
	Percent int
}

type StatusCount struct {
	Status  types.DonationStatus
	Display types.StatusDisplay
	Count   int
}

type Summary struct {
	TotalDonations int
	ActiveDonors   int
	Fulfilled      int
	MonetaryPaise  int64
	ByKind         []KindShare
	ByStatus       []StatusCount
	TopDonors      []*types.UserAccount
}

// MonetaryTotal renders the monetary total in lakhs once it is large enough.
func (s Summary) MonetaryTotal() string {
	return payment.FormatLakhs(s.MonetaryPaise)
}

var kindOrder = []types.DonationKind{types.DonationKindFood, types.DonationKindMonetary, types.DonationKindSupplies}

// Summarize aggregates a donation collection and the account list. Amounts
// that cannot be parsed are left out of the monetary total.
func Summarize(donations []*types.Donation, accounts []*types.UserAccount, topN int) Summary {
	s := Summary{TotalDonations: len(donations)}

	kinds := make(map[types.DonationKind]int, len(kindOrder))
	statuses := make(map[types.DonationStatus]int, len(types.DonationStatuses))
	var unknown []types.DonationStatus

	for _, d := range donations {
		kinds[d.Kind]++
		if _, seen := statuses[d.Status]; !seen && !d.Status.Valid() {
			unknown = append(unknown, d.Status)
		}
		statuses[d.Status]++

		switch d.Status {
		case types.DonationStatusDelivered, types.DonationStatusCompleted:
			s.Fulfilled++
		}

		if d.Kind == types.DonationKindMonetary {
			if paise, err := payment.ParseRupees(d.ItemOrAmount); err == nil {
				s.MonetaryPaise += paise
			}
		}
	}

	for _, k := range kindOrder {
		share := KindShare{Kind: k, Count: kinds[k]}
		if len(donations) > 0 {
			share.Percent = kinds[k] * 100 / len(donations)
		}
		s.ByKind = append(s.ByKind, share)
	}

	for _, st := range append(append([]types.DonationStatus{}, types.DonationStatuses...), unknown...) {
		if statuses[st] == 0 {
			continue
		}
		s.ByStatus = append(s.ByStatus, StatusCount{Status: st, Display: types.StatusDisplayFor(st), Count: statuses[st]})
	}

	for _, a := range accounts {
		if a.ActivityStatus == types.ActivityStatusActive {
			s.ActiveDonors++
		}
	}

	s.TopDonors = TopDonors(accounts, topN)

	return s
}

// TopDonors returns the n accounts with the most donations, ties keeping
// input order. The input slice is not reordered.
func TopDonors(accounts []*types.UserAccount, n int) []*types.UserAccount {
	sorted := make([]*types.UserAccount, len(accounts))
	copy(sorted, accounts)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DonationCount > sorted[j].DonationCount
	})

	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
