// Package cli implements the budgetctl command tree and its terminal rendering.
package cli

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// FormatMoney formats an amount in rupees with Indian digit grouping.
// e.g., 1234567.5 -> "₹12,34,567.50"
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + "₹" + groupIndian(whole) + "." + frac
}

// groupIndian groups the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// FormatPercent formats a percentage with one decimal place.
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// FormatDays formats a day count as "1 day" / "N days".
func FormatDays(n int) string {
	if n == 1 || n == -1 {
		return strconv.Itoa(n) + " day"
	}
	return strconv.Itoa(n) + " days"
}
