// Package cmd implements the valvelet CLI commands.
package cmd

import (
	"fmt"

	"valvelet/internal/config"
	"valvelet/internal/forecast"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", resolveDataDir(cfg))
	fmt.Printf("    Currency:       %s\n", cfg.General.Currency)
	if cfg.General.MaxDays > 0 {
		fmt.Printf("    Max days:       %d\n", cfg.General.MaxDays)
	} else {
		fmt.Printf("    Max days:       %d (default)\n", forecast.MaxDaysDefault)
	}
	fmt.Printf("    Record history: %v\n", cfg.General.RecordHistory)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  History database: %s\n", config.HistoryDBPath())
	fmt.Println()

	fmt.Println("  Run `valvelet setup` to reconfigure.")
	return nil
}
