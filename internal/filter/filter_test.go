package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedindia/pkg/types"
)

func testDonations() []*types.Donation {
	return []*types.Donation{
		{ID: "DON-2024-001", DonorName: "Rajesh Kumar", Kind: types.DonationKindFood, ItemOrAmount: "Rice & Dal", Status: types.DonationStatusDelivered},
		{ID: "DON-2024-003", DonorName: "Amit Sharma", Kind: types.DonationKindMonetary, ItemOrAmount: "₹15,000", Status: types.DonationStatusCompleted},
		{ID: "DON-2024-004", DonorName: "Green Grocers", Kind: types.DonationKindFood, ItemOrAmount: "Fresh Vegetables", Status: types.DonationStatusPending},
		{ID: "DON-2024-009", DonorName: "Blanket Bank", Kind: types.DonationKindSupplies, ItemOrAmount: "Blankets", Status: types.DonationStatusPending},
	}
}

func ids(records []*types.Donation) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestDonations_QueryStatusAndType(t *testing.T) {
	records := testDonations()

	got := Donations(records, DonationCriteria{Query: "veg", Status: All, Kind: "food"})

	require.Len(t, got, 1)
	assert.Equal(t, "DON-2024-004", got[0].ID)
}

func TestDonations_EmptyQueryReturnsEverythingInOrder(t *testing.T) {
	records := testDonations()

	got := Donations(records, DonationCriteria{})

	assert.Equal(t, ids(records), ids(got))
}

func TestDonations_Criteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria DonationCriteria
		want     []string
	}{
		{name: "id substring", criteria: DonationCriteria{Query: "2024-00"}, want: []string{"DON-2024-001", "DON-2024-003", "DON-2024-004", "DON-2024-009"}},
		{name: "donor name ignores case", criteria: DonationCriteria{Query: "AMIT"}, want: []string{"DON-2024-003"}},
		{name: "item field", criteria: DonationCriteria{Query: "blank"}, want: []string{"DON-2024-009"}},
		{name: "status exact", criteria: DonationCriteria{Status: "pending"}, want: []string{"DON-2024-004", "DON-2024-009"}},
		{name: "status is case sensitive", criteria: DonationCriteria{Status: "Pending"}, want: []string{}},
		{name: "type ignores case", criteria: DonationCriteria{Kind: "MONETARY"}, want: []string{"DON-2024-003"}},
		{name: "all filters combine with and", criteria: DonationCriteria{Query: "g", Status: "pending", Kind: "food"}, want: []string{"DON-2024-004"}},
		{name: "no match", criteria: DonationCriteria{Query: "zzz"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Donations(testDonations(), tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestDonations_SubsetAndIdempotent(t *testing.T) {
	records := testDonations()
	before := ids(records)
	criteria := DonationCriteria{Query: "e", Status: All, Kind: All}

	first := Donations(records, criteria)
	second := Donations(records, criteria)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, before, ids(records), "source collection must not change")

	seen := map[string]bool{}
	for _, r := range first {
		assert.False(t, seen[r.ID], "duplicate %s", r.ID)
		seen[r.ID] = true
		assert.Contains(t, records, r)
	}
}

func TestApply_ReturnsFreshSlice(t *testing.T) {
	items := []int{1, 2, 3}

	got := Apply(items)
	got[0] = 42

	assert.Equal(t, []int{1, 2, 3}, items)
}

func TestAccounts(t *testing.T) {
	accounts := []*types.UserAccount{
		{ID: "USR-001", Name: "Rajesh Kumar", Email: "rajesh@email.com", AccountType: types.AccountTypeIndividual},
		{ID: "USR-002", Name: "Priya Foods Ltd", Email: "contact@priyafoods.com", AccountType: types.AccountTypeCorporate},
		{ID: "USR-003", Name: "Hope Foundation", Email: "info@hopefoundation.org", AccountType: types.AccountTypeOrganization},
	}

	got := Accounts(accounts, AccountCriteria{Query: "FOOD"})
	require.Len(t, got, 1)
	assert.Equal(t, "USR-002", got[0].ID)

	got = Accounts(accounts, AccountCriteria{Query: ".org"})
	require.Len(t, got, 1)
	assert.Equal(t, "USR-003", got[0].ID)

	got = Accounts(accounts, AccountCriteria{AccountType: "individual"})
	require.Len(t, got, 1)
	assert.Equal(t, "USR-001", got[0].ID)

	assert.Len(t, Accounts(accounts, AccountCriteria{AccountType: All}), 3)
}

func TestCriteriaActive(t *testing.T) {
	assert.False(t, DonationCriteria{Status: All, Kind: All}.Active())
	assert.True(t, DonationCriteria{Query: "rice"}.Active())
	assert.True(t, DonationCriteria{Kind: "food"}.Active())
}
