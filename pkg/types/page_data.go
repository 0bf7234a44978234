package types

type NavbarData struct {
	IsAuthenticated bool
	AuthEnabled     bool
	UserID          string
	UserEmail       string
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Notice string
	Error  string
	Navbar NavbarData
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

type HomePageData struct {
	BasePageData
	Stats []StatData
	Steps []StepData
}

type DonatePageData struct {
	BasePageData
	Categories []FoodCategory
	Tiers      []DonationTier
}

type DashboardPageData struct {
	BasePageData
	Form           *DonationCandidate
	MissingFields  map[string]bool
	Donations      []*Donation
	DonationTypes  []Option
	PaymentMethods []Option
	Purposes       []Option
	Windows        []Option
}

type LoginPageData struct {
	BasePageData
	Email string
}

// NotFoundPageData renders a missing entity with a single recovery link.
type NotFoundPageData struct {
	BasePageData
	Heading   string
	Message   string
	BackHref  string
	BackLabel string
}
