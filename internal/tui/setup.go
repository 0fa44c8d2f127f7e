package tui

import (
	"fmt"
	"strings"

	"valvelet/internal/config"
	"valvelet/internal/source"
	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	currency      string
	themeName     string
	recordHistory bool
	writeStarter  bool
}

// newSetupForm builds the first-run wizard shown when no config file
// exists yet.
func newSetupForm(dataDir string, vals *setupValues) *huh.Form {
	defaults := config.DefaultConfig()
	vals.currency = defaults.General.Currency
	vals.themeName = defaults.Appearance.Theme
	vals.recordHistory = defaults.General.RecordHistory
	vals.writeStarter = true

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to valvelet!").
				Description("A few questions before the first projection."),

			huh.NewInput().
				Title("Currency label").
				Description("Display only, no conversion happens anywhere.").
				Value(&vals.currency),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.themeName),

			huh.NewConfirm().
				Title("Record balance snapshots to a history ledger?").
				Value(&vals.recordHistory),

			huh.NewConfirm().
				Title("Write starter data files?").
				Description(fmt.Sprintf("Creates any missing XML files in %s", dataDir)).
				Value(&vals.writeStarter),
		),
	)
}

// applySetup persists the form answers and applies them to the running
// app. Save errors are not fatal; the answers still apply this session.
func (a *App) applySetup() {
	cfg, _ := config.Load()

	if c := strings.TrimSpace(a.setupVals.currency); c != "" {
		cfg.General.Currency = strings.ToUpper(c)
	}
	cfg.Appearance.Theme = a.setupVals.themeName
	cfg.General.RecordHistory = a.setupVals.recordHistory

	_ = config.Save(cfg)

	theme.SetActive(cfg.Appearance.Theme)
	a.currency = cfg.General.Currency
	a.noHistory = a.noHistory || !cfg.General.RecordHistory

	if a.setupVals.writeStarter {
		_, _ = source.WriteSamples(a.dataDir)
	}
}
