package cmd

import (
	"fmt"

	"valvelet/internal/cli"
	"valvelet/internal/config"
	"valvelet/internal/store"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Recorded balance snapshots over time",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	h, err := store.Open(config.HistoryDBPath())
	if err != nil {
		return err
	}
	defer h.Close()

	snaps, err := h.List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("\n  No snapshots recorded yet. Run `valvelet` once to record one.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BALANCE HISTORY"))
	fmt.Println()

	rows := make([][]string, 0, len(snaps))
	for i, s := range snaps {
		delta := ""
		if i > 0 {
			d := s.Balance - snaps[i-1].Balance
			sign := "+"
			if d < 0 {
				sign = ""
			}
			delta = sign + cli.FormatMoney(d)
		}
		rows = append(rows, []string{
			s.AsOf.Format("2006-01-02"),
			cli.FormatMoney(s.Balance),
			delta,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"As Of", "Balance", "Change"},
		Rows:    rows,
	}))

	balances := make([]float64, len(snaps))
	for i, s := range snaps {
		balances[i] = s.Balance
	}
	fmt.Printf("\n  Trend: %s\n\n", cli.RenderSparkline(balances))

	return nil
}
