package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDisplayFor_KnownStatuses(t *testing.T) {
	for _, s := range DonationStatuses {
		d := StatusDisplayFor(s)
		assert.NotEmpty(t, d.Label, s)
		assert.NotEqual(t, "Unknown", d.Label, s)
	}
	assert.Equal(t, "Pickup Scheduled", StatusDisplayFor(DonationStatusPickupScheduled).Label)
	assert.Equal(t, "destructive", StatusDisplayFor(DonationStatusCancelled).Variant)
}

func TestStatusDisplayFor_Fallback(t *testing.T) {
	assert.NotPanics(t, func() { StatusDisplayFor("on-hold") })

	d := StatusDisplayFor("on-hold")
	assert.Equal(t, "on-hold", d.Label)
	assert.Equal(t, DefaultStatusDisplay.Icon, d.Icon)
	assert.Equal(t, DefaultStatusDisplay.Variant, d.Variant)

	assert.Equal(t, DefaultStatusDisplay, StatusDisplayFor(""))
}

func TestAccountTypeDisplayFor(t *testing.T) {
	assert.Equal(t, "building", AccountTypeDisplayFor(AccountTypeOrganization).Icon)
	assert.Equal(t, DefaultAccountTypeDisplay, AccountTypeDisplayFor("government"))
}

func TestKindDisplayFor(t *testing.T) {
	assert.Equal(t, "secondary", KindDisplayFor(DonationKindMonetary).Variant)
	assert.Equal(t, KindDisplay{Label: "Books", Variant: "outline"}, KindDisplayFor("Books"))
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "UPI", OptionLabel(PaymentMethodOptions, "upi"))
	assert.Equal(t, "crypto", OptionLabel(PaymentMethodOptions, "crypto"))
}
