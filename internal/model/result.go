package model

import "time"

// SimResult holds the full time series and summary figures for one
// scenario projection. Dates and Balances are parallel slices; the
// balance at index i is the balance at the start of Dates[i], before
// that day's flows. A nil DeathDay means the scenario survived the
// whole simulated horizon.
type SimResult struct {
	Name           string
	Dates          []time.Time
	Balances       []float64
	DeathDay       *time.Time
	DailyBurn      float64
	MonthlyBurn    float64
	DailyIncomeAvg float64
}

// Truncated returns a copy with Dates and Balances sliced to at most
// length entries. Scalar fields are carried over untouched; truncation
// never recomputes anything.
func (r SimResult) Truncated(length int) SimResult {
	if length > len(r.Dates) {
		length = len(r.Dates)
	}
	if length < 0 {
		length = 0
	}
	return SimResult{
		Name:           r.Name,
		Dates:          r.Dates[:length],
		Balances:       r.Balances[:length],
		DeathDay:       r.DeathDay,
		DailyBurn:      r.DailyBurn,
		MonthlyBurn:    r.MonthlyBurn,
		DailyIncomeAvg: r.DailyIncomeAvg,
	}
}

// Days returns the number of simulated days in the series.
func (r SimResult) Days() int {
	return len(r.Dates)
}
