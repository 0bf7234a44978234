package types

// Option is a value/label pair rendered into a select element.
type Option struct {
	Value string
	Label string
}

var DonationTypeOptions = []Option{
	{Value: "food", Label: "Food Items"},
	{Value: "monetary", Label: "Monetary"},
	{Value: "supplies", Label: "Supplies & Essentials"},
}

var PaymentMethodOptions = []Option{
	{Value: "upi", Label: "UPI"},
	{Value: "bank", Label: "Bank Transfer"},
	{Value: "card", Label: "Credit/Debit Card"},
	{Value: "cash", Label: "Cash"},
}

var PurposeOptions = []Option{
	{Value: "general", Label: "General Fund"},
	{Value: "meals", Label: "Daily Meals Program"},
	{Value: "fleet", Label: "Distribution Fleet"},
	{Value: "training", Label: "Volunteer Training"},
	{Value: "awareness", Label: "Awareness Campaign"},
}

// OptionLabel returns the label for value, or value itself when unknown.
func OptionLabel(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

type FoodCategory struct {
	Title string
	Icon  string
	Items []string
}

type DonationTier struct {
	AmountRupees int64
	Title        string
	Description  string
	Icon         string
	Impact       string
	Purpose      string
	Featured     bool
}

type StatData struct {
	Label  string
	Value  string
	Icon   string
	Change string
}

type StepData struct {
	Number      int
	Title       string
	Description string
}

var WindowOptions = []Option{
	{Value: "2", Label: "Within 2 hours"},
	{Value: "4", Label: "Within 4 hours"},
	{Value: "6", Label: "Within 6 hours"},
	{Value: "8", Label: "Within 8 hours"},
	{Value: "24", Label: "Within 24 hours"},
}
