package cmd

import (
	"fmt"
	"strings"

	"valvelet/internal/config"
	"valvelet/internal/source"
	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	dataDir := resolveDataDir(cfg)
	currency := cfg.General.Currency
	themeName := cfg.Appearance.Theme
	recordHistory := cfg.General.RecordHistory

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to valvelet!").
				Description("A few questions before the first projection."),

			huh.NewInput().
				Title("Data directory").
				Description("Where balance.xml, fixed_costs.xml, income.xml and scenarios.xml live.").
				Value(&dataDir),

			huh.NewInput().
				Title("Currency label").
				Description("Display only, no conversion happens anywhere.").
				Value(&currency),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),

			huh.NewConfirm().
				Title("Record balance snapshots to a history ledger?").
				Value(&recordHistory),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if dataDir != config.DataDir() {
		cfg.General.DataDir = strings.TrimSpace(dataDir)
	}
	if c := strings.TrimSpace(currency); c != "" {
		cfg.General.Currency = strings.ToUpper(c)
	}
	cfg.Appearance.Theme = themeName
	cfg.General.RecordHistory = recordHistory

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Offer starter files when the data files are missing or broken
	dir := resolveDataDir(cfg)
	if _, err := source.LoadAll(dir); err != nil {
		writeStarter := true
		confirm := huh.NewConfirm().
			Title("Write starter data files?").
			Description(fmt.Sprintf("Creates any missing XML files in %s", dir)).
			Value(&writeStarter)
		if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
			return err
		}
		if writeStarter {
			written, err := source.WriteSamples(dir)
			if err != nil {
				return err
			}
			for _, name := range written {
				fmt.Printf("  wrote %s\n", name)
			}
		}
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `valvelet setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
