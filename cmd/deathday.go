package cmd

import (
	"fmt"

	"valvelet/internal/cli"

	"github.com/spf13/cobra"
)

var deathdayCmd = &cobra.Command{
	Use:   "deathday",
	Short: "Date the balance hits zero, per scenario",
	RunE:  runDeathday,
}

func init() {
	rootCmd.AddCommand(deathdayCmd)
}

func runDeathday(_ *cobra.Command, _ []string) error {
	in, cfg, err := loadData()
	if err != nil {
		return err
	}

	results := runScenarios(in, cfg)
	if len(results) == 0 {
		fmt.Println("\n  No scenarios defined. Add some to scenarios.xml.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEATH DAY"))
	fmt.Println()

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Name, cli.FormatDeathInfo(r.DeathDay, in.Snapshot.AsOf)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Death Day"},
		Rows:    rows,
	}))

	return nil
}
