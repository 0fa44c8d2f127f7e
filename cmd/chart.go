package cmd

import (
	"fmt"
	"time"

	"valvelet/internal/cli"
	"valvelet/internal/model"
	"valvelet/internal/tui/components"
	"valvelet/internal/tui/theme"

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Balance projection chart",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

const (
	chartWidth  = 80
	chartHeight = 18
)

func runChart(_ *cobra.Command, _ []string) error {
	in, cfg, err := loadData()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	results := runScenarios(in, cfg)
	if len(results) == 0 {
		fmt.Println("\n  No scenarios defined. Add some to scenarios.xml.")
		return nil
	}

	axis := longestAxis(results)
	if len(axis) < 2 {
		fmt.Println("\n  Not enough data to chart.")
		return nil
	}

	series := make([]components.Series, 0, len(results))
	captions := make([]string, 0, len(results))
	for i, r := range results {
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
		captions = append(captions, cli.FormatDeathInfo(r.DeathDay, in.Snapshot.AsOf))
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BALANCE PROJECTION"))
	fmt.Println()
	fmt.Println(" " + components.Legend(series, captions))
	fmt.Println()
	fmt.Println(components.LineChart(series, axis, chartWidth, chartHeight))
	fmt.Println()

	return nil
}

// longestAxis returns the longest date series among the results. All
// series share a common truncated length, but a scenario that died on
// day one can be shorter.
func longestAxis(results []model.SimResult) []time.Time {
	var axis []time.Time
	for _, r := range results {
		if len(r.Dates) > len(axis) {
			axis = r.Dates
		}
	}
	return axis
}
