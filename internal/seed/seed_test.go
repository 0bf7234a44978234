package seed

import (
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedindia/pkg/types"
)

func TestFixturesUseKnownStatusesAndKinds(t *testing.T) {
	all := Donations()
	for _, donations := range DonationsByUser() {
		all = append(all, donations...)
	}

	for _, d := range all {
		assert.True(t, d.Status.Valid(), "%s has status %q", d.ID, d.Status)
		_, ok := types.ParseDonationKind(string(d.Kind))
		assert.True(t, ok, "%s has kind %q", d.ID, d.Kind)
	}
}

func TestDonationsByUserOnlyReferencesKnownAccounts(t *testing.T) {
	known := map[string]bool{}
	for _, a := range Accounts() {
		known[a.ID] = true
	}

	for userID := range DonationsByUser() {
		assert.True(t, known[userID], userID)
	}
}

func TestFixturesAreFreshCopies(t *testing.T) {
	first := Donations()
	first[0].Status = types.DonationStatusCancelled

	assert.Equal(t, types.DonationStatusDelivered, Donations()[0].Status)
}

// replay applies the plan the way Postgres would: the first insert of an id
// takes the next sequence value, later imports of that id only add links.
func replay(plan []seedImport) (map[string]int, map[string][]string) {
	seq := map[string]int{}
	links := map[string][]string{}
	for _, step := range plan {
		if _, ok := seq[step.Donation.ID]; !ok {
			seq[step.Donation.ID] = len(seq) + 1
		}
		if step.UserID != "" && !slices.Contains(links[step.UserID], step.Donation.ID) {
			links[step.UserID] = append(links[step.UserID], step.Donation.ID)
		}
	}
	return seq, links
}

func newestFirst(ids []string, seq map[string]int) []string {
	out := slices.Clone(ids)
	sort.Slice(out, func(i, j int) bool { return seq[out[i]] > seq[out[j]] })
	return out
}

func donationIDs(donations []*types.Donation) []string {
	ids := make([]string, 0, len(donations))
	for _, d := range donations {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestImportPlanKeepsFixtureOrder(t *testing.T) {
	seq, links := replay(importPlan())

	all := make([]string, 0, len(seq))
	for id := range seq {
		all = append(all, id)
	}

	global := donationIDs(Donations())
	listed := newestFirst(all, seq)
	require.GreaterOrEqual(t, len(listed), len(global))
	assert.Equal(t, global, listed[:len(global)])

	for userID, donations := range DonationsByUser() {
		assert.Equal(t, donationIDs(donations), newestFirst(links[userID], seq), userID)
	}
}

func TestImportPlanCoversEveryFixture(t *testing.T) {
	seq, _ := replay(importPlan())

	for _, d := range Donations() {
		assert.Contains(t, seq, d.ID)
	}
	for _, donations := range DonationsByUser() {
		for _, d := range donations {
			assert.Contains(t, seq, d.ID)
		}
	}
}
