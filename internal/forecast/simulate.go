package forecast

import (
	"time"

	"valvelet/internal/model"
)

// Simulate projects a balance forward one day at a time until it
// depletes or maxDays is reached. Each day records the balance before
// that day's flows, so the series shows balance-at-start-of-day. The
// first day whose recorded balance is <= 0 becomes the death day and
// ends the run; a run that reaches maxDays is treated as surviving the
// horizon. Pass maxDays <= 0 to use MaxDaysDefault.
//
// The stored balance is clamped at zero: once the money is gone there
// is nothing left to go further negative.
func Simulate(balance float64, start time.Time, incomes []model.IncomeEntry, fixedMonthly float64, scn model.Scenario, maxDays int) model.SimResult {
	if maxDays <= 0 {
		maxDays = MaxDaysDefault
	}

	dailyFixed := fixedMonthly / DaysPerMonth
	dailyVar := DailyScenarioCost(scn)
	cash := balance

	dates := make([]time.Time, 0, 64)
	balances := make([]float64, 0, 64)
	var deathDay *time.Time
	totalIncome := 0.0

	for i := 0; i < maxDays; i++ {
		d := start.AddDate(0, 0, i)
		dates = append(dates, d)
		balances = append(balances, cash)

		if cash <= 0 && deathDay == nil {
			deathDay = &d
			break
		}

		inc := DailyIncome(incomes, d)
		totalIncome += inc
		cash += inc - dailyFixed - dailyVar
		if cash < 0 {
			cash = 0
		}
	}

	avgIncome := 0.0
	if len(dates) > 0 {
		avgIncome = totalIncome / float64(len(dates))
	}

	return model.SimResult{
		Name:           scn.Name,
		Dates:          dates,
		Balances:       balances,
		DeathDay:       deathDay,
		DailyBurn:      dailyFixed + dailyVar,
		MonthlyBurn:    (dailyFixed + dailyVar) * DaysPerMonth,
		DailyIncomeAvg: avgIncome,
	}
}
