package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRupees(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1500", 150000},
		{"₹15,000", 1500000},
		{" Rs. 250.50 ", 25050},
		{"INR 99.5", 9950},
		{"₹1,00,000", 10000000},
		{"92233720368547757.99", 9223372036854775799},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRupees(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRupees_Invalid(t *testing.T) {
	for _, in := range []string{
		"", "₹", "abc", "-5", "0", "10.123", "10.",
		"-0.50", "₹-0.99", "+100", "10.-5", "10.+5",
		"92233720368547758", "184467440737095517",
	} {
		_, err := ParseRupees(in)
		assert.Error(t, err, in)
	}
}

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		paise int64
		want  string
	}{
		{0, "₹0"},
		{150000, "₹1,500"},
		{1500000, "₹15,000"},
		{10000000, "₹1,00,000"},
		{123456700, "₹12,34,567"},
		{25050, "₹250.50"},
		{-150000, "-₹1,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupees(tt.paise))
	}
}

func TestFormatLakhs(t *testing.T) {
	assert.Equal(t, "₹12.5L", FormatLakhs(125000000))
	assert.Equal(t, "₹2L", FormatLakhs(20000000))
	assert.Equal(t, "₹96,500", FormatLakhs(9650000))
}
