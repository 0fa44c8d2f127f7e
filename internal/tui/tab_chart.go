package tui

import (
	"time"

	"valvelet/internal/cli"
	"valvelet/internal/model"
	"valvelet/internal/tui/components"
)

// renderChartTab draws every scenario's balance projection on one
// shared date axis, with death-day markers.
func (a App) renderChartTab(cw, contentH int) string {
	if len(a.results) == 0 {
		return components.ContentCard("BALANCE PROJECTION",
			"No scenarios defined. Add some to scenarios.xml and press r.", cw)
	}

	axis := chartAxis(a.results)
	if len(axis) < 2 {
		return components.ContentCard("BALANCE PROJECTION", "Not enough data to chart.", cw)
	}

	series := make([]components.Series, 0, len(a.results))
	captions := make([]string, 0, len(a.results))
	for i, r := range a.results {
		deathIdx := -1
		if r.DeathDay != nil {
			deathIdx = cli.DaysBetween(axis[0], *r.DeathDay)
			if deathIdx >= len(axis) {
				deathIdx = len(axis) - 1
			}
		}
		series = append(series, components.Series{
			Name:     r.Name,
			Values:   r.Balances,
			Color:    components.ScenarioColors(i),
			DeathIdx: deathIdx,
		})
		captions = append(captions, cli.FormatDeathInfo(r.DeathDay, axis[0]))
	}

	inner := components.CardInnerWidth(cw)
	chartH := contentH - 7 // card frame, title, legend, x-axis rows
	if chartH < 6 {
		chartH = 6
	}

	body := components.Legend(series, captions) + "\n\n" +
		components.LineChart(series, axis, inner, chartH)

	return components.ContentCard("BALANCE PROJECTION", body, cw)
}

// chartAxis returns the longest date series among the results. All
// series share a common truncated length, but a scenario that died on
// day one can be shorter.
func chartAxis(results []model.SimResult) []time.Time {
	var axis []time.Time
	for _, r := range results {
		if len(r.Dates) > len(axis) {
			axis = r.Dates
		}
	}
	return axis
}
