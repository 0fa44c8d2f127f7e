package forecast

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"valvelet/internal/model"
)

// Compare runs every scenario against the shared balance, income, and
// fixed-cost inputs and returns display-ready results: all series
// truncated to a common chart length and ordered by death day
// (earliest first, survivors last in input order). Pass maxDays <= 0
// for the default horizon.
//
// Scenario runs only read shared inputs, so they execute on a bounded
// worker pool; output is identical to running them sequentially.
func Compare(balance float64, start time.Time, incomes []model.IncomeEntry, fixedMonthly float64, scenarios []model.Scenario, maxDays int) []model.SimResult {
	results := make([]model.SimResult, len(scenarios))

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(scenarios) {
		numWorkers = len(scenarios)
	}

	if numWorkers > 0 {
		work := make(chan int, len(scenarios))
		for i := range scenarios {
			work <- i
		}
		close(work)

		var wg sync.WaitGroup
		wg.Add(numWorkers)
		for w := 0; w < numWorkers; w++ {
			go func() {
				defer wg.Done()
				for idx := range work {
					results[idx] = Simulate(balance, start, incomes, fixedMonthly, scenarios[idx], maxDays)
				}
			}()
		}
		wg.Wait()
	}

	chartLen := ChartLength(results)
	for i, r := range results {
		results[i] = r.Truncated(chartLen)
	}

	// Earliest death first; survivors keep their input order at the end.
	sort.SliceStable(results, func(i, j int) bool {
		di, dj := results[i].DeathDay, results[j].DeathDay
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})

	return results
}

// ChartLength derives the common display length for a set of results:
// the longest series among scenarios that deplete, or ChartFallbackDays
// when nothing depletes within the horizon.
func ChartLength(results []model.SimResult) int {
	chartLen := 0
	for _, r := range results {
		if r.DeathDay != nil && r.Days() > chartLen {
			chartLen = r.Days()
		}
	}
	if chartLen == 0 {
		return ChartFallbackDays
	}
	return chartLen
}
