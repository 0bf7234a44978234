package types

import "time"

type AccountType string

const (
	AccountTypeIndividual   AccountType = "individual"
	AccountTypeOrganization AccountType = "organization"
	AccountTypeCorporate    AccountType = "corporate"
)

type ActivityStatus string

const (
	ActivityStatusActive  ActivityStatus = "active"
	ActivityStatusPending ActivityStatus = "pending"
)

type UserAccount struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Email          string         `db:"email"`
	AccountType    AccountType    `db:"account_type"`
	DonationCount  int            `db:"donation_count"`
	JoinedDate     string         `db:"joined_date"`
	ActivityStatus ActivityStatus `db:"activity_status"`
	CreatedAt      time.Time      `db:"created_at"`
}
