// Package format holds the display formatters shared by every response
// shape: currency, percentages, abbreviated large numbers, dates.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Currency renders a USD amount with thousands separators, e.g.
// "$1,234.56". NaN and infinities render as the zero amount.
func Currency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "$0.00"
	}
	if value < 0 {
		return "-$" + withCommas(-value, 2)
	}
	return "$" + withCommas(value, 2)
}

// Number renders a plain number with thousands separators.
func Number(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}
	if value < 0 {
		return "-" + withCommas(-value, decimals)
	}
	return withCommas(value, decimals)
}

// Percent renders a fraction as a percentage: 0.05 -> "5.00%".
func Percent(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", value*100)
}

// PercentChange is Percent with an explicit sign on non-negative values.
func PercentChange(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0.00%"
	}
	sign := ""
	if value >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value*100)
}

// LargeNumber abbreviates with K/M/B/T suffixes: 1532000000 -> "1.53B".
func LargeNumber(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}

	abs := math.Abs(value)
	sign := ""
	if value < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%s%.2fT", sign, abs/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%s%.2fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s%.2fM", sign, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s%.2fK", sign, abs/1e3)
	}
	return fmt.Sprintf("%s%.2f", sign, abs)
}

// Date renders "Jan 2, 2006"; the zero time renders as "N/A".
func Date(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}

// DateTime renders "Jan 2, 2006 3:04 PM"; the zero time renders as "N/A".
func DateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}

func withCommas(value float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, value)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + fracPart
}
