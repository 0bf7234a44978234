package seed

import (
	"feedindia/pkg/types"
)

// Accounts are read-only fixture accounts. DonationCount is the stored
// counter and intentionally not derived from DonationsByUser.
func Accounts() []*types.UserAccount {
	return []*types.UserAccount{
		{ID: "USR-001", Name: "Rajesh Kumar", Email: "rajesh@email.com", AccountType: types.AccountTypeIndividual, DonationCount: 12, JoinedDate: "2023-06-15", ActivityStatus: types.ActivityStatusActive},
		{ID: "USR-002", Name: "Priya Foods Ltd", Email: "contact@priyafoods.com", AccountType: types.AccountTypeCorporate, DonationCount: 45, JoinedDate: "2023-03-20", ActivityStatus: types.ActivityStatusActive},
		{ID: "USR-003", Name: "Hope Foundation", Email: "info@hopefoundation.org", AccountType: types.AccountTypeOrganization, DonationCount: 0, JoinedDate: "2023-08-10", ActivityStatus: types.ActivityStatusActive},
		{ID: "USR-004", Name: "Amit Sharma", Email: "amit.sharma@email.com", AccountType: types.AccountTypeIndividual, DonationCount: 5, JoinedDate: "2023-11-05", ActivityStatus: types.ActivityStatusActive},
		{ID: "USR-005", Name: "Green Grocers", Email: "green@grocers.com", AccountType: types.AccountTypeCorporate, DonationCount: 28, JoinedDate: "2023-04-12", ActivityStatus: types.ActivityStatusActive},
		{ID: "USR-006", Name: "Meera Patel", Email: "meera.p@email.com", AccountType: types.AccountTypeIndividual, DonationCount: 3, JoinedDate: "2024-01-02", ActivityStatus: types.ActivityStatusPending},
	}
}
