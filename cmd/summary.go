package cmd

import (
	"fmt"

	"valvelet/internal/cli"
	"valvelet/internal/forecast"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Burn rate and runway per scenario",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	in, cfg, err := loadData()
	if err != nil {
		return err
	}

	results := runScenarios(in, cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CASH RUNWAY  as of %s", in.Snapshot.AsOf.Format("2006-01-02"))))
	fmt.Println()
	fmt.Printf("  Balance: %s %s\n", cli.FormatMoney(in.Snapshot.Balance), cfg.General.Currency)
	fmt.Printf("  Fixed costs: %s %s/month\n", cli.FormatMoney(in.FixedMonthly), cfg.General.Currency)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("  No scenarios defined. Add some to scenarios.xml.")
		return nil
	}

	// One metric block per scenario, separated like the config sections
	rows := make([][]string, 0, len(results)*9)
	for i, r := range results {
		netDaily := r.DailyIncomeAvg - r.DailyBurn
		rows = append(rows,
			[]string{"Scenario", r.Name},
			[]string{"Burn/day", cli.FormatMoney(r.DailyBurn)},
			[]string{"Burn/month", cli.FormatMoney(r.MonthlyBurn)},
			[]string{"Income/day (avg)", cli.FormatMoney(r.DailyIncomeAvg)},
			[]string{"Income/month", cli.FormatMoney(r.DailyIncomeAvg * forecast.DaysPerMonth)},
			[]string{"Net/day", cli.FormatMoney(netDaily)},
			[]string{"Net/month", cli.FormatMoney(netDaily * forecast.DaysPerMonth)},
			[]string{"Runs out", cli.FormatDeathInfo(r.DeathDay, in.Snapshot.AsOf)},
		)
		if i < len(results)-1 {
			rows = append(rows, []string{"---"})
		}
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	return nil
}
