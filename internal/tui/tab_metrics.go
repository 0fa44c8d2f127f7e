package tui

import (
	"fmt"
	"strings"

	"valvelet/internal/cli"
	"valvelet/internal/forecast"
	"valvelet/internal/tui/components"
)

// renderMetricsTab shows burn and income rates per scenario.
func (a App) renderMetricsTab(cw int) string {
	var b strings.Builder

	// Shared inputs up top
	top := []struct{ Label, Value, Detail string }{
		{"Balance", cli.FormatMoney(a.inputs.Snapshot.Balance) + " " + a.currency,
			"as of " + a.inputs.Snapshot.AsOf.Format("2006-01-02")},
		{"Fixed Costs", cli.FormatMoney(a.inputs.FixedMonthly) + "/mo",
			cli.FormatMoney(a.inputs.FixedMonthly/forecast.DaysPerMonth) + "/day"},
		{"Scenarios", fmt.Sprintf("%d", len(a.results)), ""},
	}
	b.WriteString(components.MetricCardRow(top, cw))
	b.WriteString("\n")

	if len(a.results) == 0 {
		b.WriteString(components.ContentCard("SCENARIOS",
			"No scenarios defined. Add some to scenarios.xml and press r.", cw))
		return b.String()
	}

	// Two scenario cards per row
	widths := components.LayoutRow(cw, 2)
	for i := 0; i < len(a.results); i += 2 {
		var cards []string
		for j := i; j < i+2 && j < len(a.results); j++ {
			r := a.results[j]
			netDaily := r.DailyIncomeAvg - r.DailyBurn

			var body strings.Builder
			fmt.Fprintf(&body, "%-14s %12s\n", "Burn/day", cli.FormatMoney(r.DailyBurn))
			fmt.Fprintf(&body, "%-14s %12s\n", "Burn/month", cli.FormatMoney(r.MonthlyBurn))
			fmt.Fprintf(&body, "%-14s %12s\n", "Income/day", cli.FormatMoney(r.DailyIncomeAvg))
			fmt.Fprintf(&body, "%-14s %12s\n", "Net/day", cli.FormatMoney(netDaily))
			fmt.Fprintf(&body, "%-14s %12s\n", "Net/month", cli.FormatMoney(netDaily*forecast.DaysPerMonth))
			fmt.Fprintf(&body, "%-14s %s", "Runs out", cli.FormatDeathInfo(r.DeathDay, a.inputs.Snapshot.AsOf))

			cards = append(cards, components.ContentCard(r.Name, body.String(), widths[len(cards)]))
		}
		b.WriteString(components.CardRow(cards))
		b.WriteString("\n")
	}

	return b.String()
}
