package util

import (
	"fmt"
	"math"
	"strings"
)

// StatKiloThreshold is the smallest value rendered in "k" notation. It is
// the largest magnitude the career data tracks (lines of code).
const StatKiloThreshold = 100000

// FormatStatValue renders a counter value for display. Values at or above
// StatKiloThreshold render as "<value/1000>k" with zero decimal places;
// everything else uses digit grouping with thousands separators.
//
// The function is pure so the formatting rule can be tested independently
// of any rendering. It applies to raw numbers only, never to its own output.
func FormatStatValue(n int) string {
	if n >= StatKiloThreshold {
		return fmt.Sprintf("%.0fk", math.Round(float64(n)/1000))
	}
	return FormatGrouped(n)
}

// FormatGrouped formats an integer with thousands separators ("1,234,567").
func FormatGrouped(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return sign + digits
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ",")
}
