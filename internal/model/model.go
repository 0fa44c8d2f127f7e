// Package model defines the input and result types shared by the
// forecast engine, the loaders, and the presentation layers.
package model

import "time"

// Frequency describes how often an income entry accrues.
type Frequency int

const (
	// FrequencyUnknown covers unrecognized frequency strings from the
	// data files. Unknown entries contribute zero income rather than
	// failing the run.
	FrequencyUnknown Frequency = iota
	FrequencyDaily
	FrequencyWeekly
	FrequencyMonthly
	FrequencyOnce
)

// ParseFrequency maps a frequency string from the data files to its
// typed value. Anything unrecognized becomes FrequencyUnknown.
func ParseFrequency(s string) Frequency {
	switch s {
	case "daily":
		return FrequencyDaily
	case "weekly":
		return FrequencyWeekly
	case "monthly":
		return FrequencyMonthly
	case "once":
		return FrequencyOnce
	default:
		return FrequencyUnknown
	}
}

// String returns the data-file spelling of the frequency.
func (f Frequency) String() string {
	switch f {
	case FrequencyDaily:
		return "daily"
	case FrequencyWeekly:
		return "weekly"
	case FrequencyMonthly:
		return "monthly"
	case FrequencyOnce:
		return "once"
	default:
		return "unknown"
	}
}

// IncomeEntry is one income stream. Start is inclusive; a nil End means
// the stream is open-ended. Entries are immutable once loaded.
type IncomeEntry struct {
	Source    string
	Amount    float64
	Frequency Frequency
	Start     time.Time
	End       *time.Time
}

// Activity is one recurring discretionary spend inside a scenario.
// DaysPerWeek may be fractional to express an average (e.g. 0.5 for
// every other week).
type Activity struct {
	Name        string
	Cost        float64
	DaysPerWeek float64
}

// Scenario is a named bundle of activities whose combined cost is
// compared against the shared income / fixed-cost baseline.
type Scenario struct {
	Name       string
	Activities []Activity
}

// Snapshot is the starting point of every projection: the current
// balance and the date it was observed.
type Snapshot struct {
	Balance float64
	AsOf    time.Time
}
