package payment

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxRupees keeps whole*100 plus two paise digits inside int64.
const maxRupees = (math.MaxInt64 - 99) / 100

// ParseRupees turns donor input such as "1500", "₹15,000" or "Rs. 250.50"
// into paise.
func ParseRupees(v string) (int64, error) {
	s := strings.TrimSpace(v)
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "Rs."), "Rs")
	s = strings.TrimPrefix(s, "INR")
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	rupees, paise, hasFraction := strings.Cut(s, ".")
	if !digitsOnly(rupees) || (hasFraction && !digitsOnly(paise)) {
		return 0, fmt.Errorf("invalid amount %q", v)
	}

	whole, err := strconv.ParseInt(rupees, 10, 64)
	if err != nil || whole > maxRupees {
		return 0, fmt.Errorf("invalid amount %q", v)
	}

	var fraction int64
	if hasFraction {
		if len(paise) == 0 || len(paise) > 2 {
			return 0, fmt.Errorf("invalid amount %q", v)
		}
		if len(paise) == 1 {
			paise += "0"
		}
		fraction, err = strconv.ParseInt(paise, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", v)
		}
	}

	total := whole*100 + fraction
	if total <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	return total, nil
}

// digitsOnly rejects signs, which strconv would otherwise accept.
func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatRupees renders paise with the rupee sign and Indian digit grouping
// (₹12,34,567). Paise are only shown when non-zero.
func FormatRupees(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}

	out := sign + "₹" + groupIndian(strconv.FormatInt(paise/100, 10))
	if rem := paise % 100; rem != 0 {
		out += fmt.Sprintf(".%02d", rem)
	}
	return out
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}

	return strings.Join(parts, ",") + "," + tail
}

// FormatLakhs abbreviates large totals the way the admin headline does
// (₹12.5L). Amounts below one lakh use FormatRupees.
func FormatLakhs(paise int64) string {
	rupees := paise / 100
	if rupees < 100000 {
		return FormatRupees(paise)
	}
	lakhs := float64(rupees) / 100000
	return "₹" + strings.TrimSuffix(strconv.FormatFloat(lakhs, 'f', 1, 64), ".0") + "L"
}
