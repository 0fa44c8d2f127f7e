package cmd

import (
	"fmt"
	"os"

	"valvelet/internal/config"
	"valvelet/internal/forecast"
	"valvelet/internal/model"
	"valvelet/internal/source"
	"valvelet/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir   string
	flagMaxDays   int
	flagQuiet     bool
	flagNoHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "valvelet",
	Short: "Cash runway projection CLI",
	Long:  "Project how long your balance lasts under fixed costs, income, and spending scenarios.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory with the XML data files")
	rootCmd.PersistentFlags().IntVarP(&flagMaxDays, "max-days", "n", 0, "Projection horizon in days (0 = default)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Skip recording the balance snapshot")
}

// loadConfigOrDefault loads config, returning defaults on error so
// every command can run even with a corrupted config file.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// resolveDataDir picks the data directory: flag, then config, then the
// XDG default.
func resolveDataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	return config.DataDir()
}

// resolveMaxDays picks the projection horizon: flag, then config.
// Zero means the engine default.
func resolveMaxDays(cfg config.Config) int {
	if flagMaxDays > 0 {
		return flagMaxDays
	}
	return cfg.General.MaxDays
}

// loadData is the shared loading path used by all commands. It reads
// the four XML files and records the balance snapshot in the history
// ledger unless disabled.
func loadData() (*source.Inputs, config.Config, error) {
	cfg := loadConfigOrDefault()
	dir := resolveDataDir(cfg)

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Reading data from %s\n", dir)
	}

	inputs, err := source.LoadAll(dir)
	if err != nil {
		return nil, cfg, err
	}

	if !flagNoHistory && cfg.General.RecordHistory {
		if err := recordSnapshot(inputs.Snapshot); err != nil && !flagQuiet {
			fmt.Fprintf(os.Stderr, "  history not recorded: %v\n", err)
		}
	}

	return inputs, cfg, nil
}

func recordSnapshot(snap model.Snapshot) error {
	h, err := store.Open(config.HistoryDBPath())
	if err != nil {
		return err
	}
	defer h.Close()
	return h.Record(snap)
}

// runScenarios projects every scenario from the loaded inputs.
func runScenarios(in *source.Inputs, cfg config.Config) []model.SimResult {
	return forecast.Compare(
		in.Snapshot.Balance,
		in.Snapshot.AsOf,
		in.Incomes,
		in.FixedMonthly,
		in.Scenarios,
		resolveMaxDays(cfg),
	)
}
