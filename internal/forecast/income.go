// Package forecast implements the runway projection engine: daily
// income accrual, scenario cost models, the day-by-day balance
// simulation, and the multi-scenario comparison that feeds every
// presentation surface.
package forecast

import (
	"time"

	"valvelet/internal/model"
)

// Calendar approximations used throughout the engine. Burn-rate and
// proration figures are defined in terms of these constants, so they
// stay fixed rather than calendar-accurate.
const (
	DaysPerMonth = 30.0
	DaysPerWeek  = 7.0
)

// MaxDaysDefault caps a single projection at roughly 100 years. It is
// a safety bound for scenarios that never deplete.
const MaxDaysDefault = 36500

// ChartFallbackDays is the display length used when no scenario
// depletes within the horizon (~10 years). It sizes charts only and is
// independent of the simulation cap.
const ChartFallbackDays = 3650

// DailyIncome returns the total income accrued on day d across all
// entries. Periodic entries are prorated: weekly amounts over 7 days,
// monthly amounts over 30. One-shot entries pay out only on their
// start date. Entries with an unknown frequency contribute zero.
func DailyIncome(entries []model.IncomeEntry, d time.Time) float64 {
	total := 0.0
	for _, inc := range entries {
		if d.Before(inc.Start) {
			continue
		}
		if inc.End != nil && d.After(*inc.End) {
			continue
		}
		switch inc.Frequency {
		case model.FrequencyDaily:
			total += inc.Amount
		case model.FrequencyWeekly:
			total += inc.Amount / DaysPerWeek
		case model.FrequencyMonthly:
			total += inc.Amount / DaysPerMonth
		case model.FrequencyOnce:
			if d.Equal(inc.Start) {
				total += inc.Amount
			}
		}
	}
	return total
}
