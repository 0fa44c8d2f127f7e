package tui

import (
	"fmt"
	"strings"

	"valvelet/internal/cli"
	"valvelet/internal/forecast"
	"valvelet/internal/tui/components"
)

// renderDeathTab shows when each scenario runs out of money. Results
// arrive sorted with the earliest death first.
func (a App) renderDeathTab(cw int) string {
	if len(a.results) == 0 {
		return components.ContentCard("DEATH DAY",
			"No scenarios defined. Add some to scenarios.xml and press r.", cw)
	}

	start := a.inputs.Snapshot.AsOf

	var b strings.Builder

	// Headline: the scenario that dies first
	first := a.results[0]
	if first.DeathDay != nil {
		b.WriteString(components.ContentCard("FIRST TO RUN OUT",
			fmt.Sprintf("%s  —  %s", first.Name, cli.FormatDeathInfo(first.DeathDay, start)), cw))
	} else {
		b.WriteString(components.ContentCard("FIRST TO RUN OUT",
			"Every scenario survives the projection horizon.", cw))
	}
	b.WriteString("\n")

	// One card per scenario, three to a row
	cards := make([]struct{ Label, Value, Detail string }, 0, len(a.results))
	for _, r := range a.results {
		value := "Survives"
		detail := ""
		if r.DeathDay != nil {
			value = r.DeathDay.Format("2006-01-02")
			days := cli.DaysBetween(start, *r.DeathDay)
			detail = fmt.Sprintf("%d days / %.1f months", days, float64(days)/forecast.DaysPerMonth)
		}
		cards = append(cards, struct{ Label, Value, Detail string }{r.Name, value, detail})
	}

	for i := 0; i < len(cards); i += 3 {
		end := i + 3
		if end > len(cards) {
			end = len(cards)
		}
		b.WriteString(components.MetricCardRow(cards[i:end], cw))
		b.WriteString("\n")
	}

	return b.String()
}
