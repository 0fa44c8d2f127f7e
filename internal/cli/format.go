// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"valvelet/internal/forecast"
)

// FormatMoney formats a currency amount with comma separators and no
// decimals, e.g. 1234567.8 -> "1,234,568".
func FormatMoney(v float64) string {
	return FormatNumber(int64(math.Round(v)))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCompact formats a value with a K/M suffix for axis labels.
// e.g., 1500 -> "1.5K", 2000000 -> "2M"
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		if v == math.Trunc(v/1_000_000)*1_000_000 {
			return fmt.Sprintf("%.0fM", v/1_000_000)
		}
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		if v == math.Trunc(v/1_000)*1_000 {
			return fmt.Sprintf("%.0fK", v/1_000)
		}
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// FormatDeathInfo renders a depletion date relative to the start date:
// "2024-03-01  (60 days / 2.0 months)", or "Survives" when the
// scenario never depletes within the horizon.
func FormatDeathInfo(deathDay *time.Time, start time.Time) string {
	if deathDay == nil {
		return "Survives"
	}
	daysLeft := DaysBetween(start, *deathDay)
	monthsLeft := float64(daysLeft) / forecast.DaysPerMonth
	return fmt.Sprintf("%s  (%d days / %.1f months)", deathDay.Format("2006-01-02"), daysLeft, monthsLeft)
}

// DaysBetween returns the whole number of days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
