package forecast

import "valvelet/internal/model"

// DailyScenarioCost returns the expected daily cost of a scenario:
// each activity's per-occurrence cost prorated by how many days a week
// it happens. An empty scenario costs nothing.
func DailyScenarioCost(scn model.Scenario) float64 {
	total := 0.0
	for _, act := range scn.Activities {
		total += act.Cost * act.DaysPerWeek / DaysPerWeek
	}
	return total
}
