package source

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"valvelet/internal/model"
)

// LoadAll reads and validates all four data files from dataDir.
func LoadAll(dataDir string) (*Inputs, error) {
	snap, err := LoadBalance(filepath.Join(dataDir, BalanceFile))
	if err != nil {
		return nil, err
	}
	fixed, err := LoadFixedCosts(filepath.Join(dataDir, FixedCostsFile))
	if err != nil {
		return nil, err
	}
	incomes, err := LoadIncome(filepath.Join(dataDir, IncomeFile))
	if err != nil {
		return nil, err
	}
	scenarios, err := LoadScenarios(filepath.Join(dataDir, ScenariosFile))
	if err != nil {
		return nil, err
	}

	return &Inputs{
		Snapshot:     snap,
		FixedMonthly: fixed,
		Incomes:      incomes,
		Scenarios:    scenarios,
	}, nil
}

// LoadBalance reads the current balance and its as-of date.
func LoadBalance(path string) (model.Snapshot, error) {
	var doc balanceDoc
	if err := decodeFile(path, &doc); err != nil {
		return model.Snapshot{}, err
	}
	if doc.Current.AsOf.IsZero() {
		return model.Snapshot{}, fmt.Errorf("%s: missing as-of date on <current>", filepath.Base(path))
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(doc.Current.Amount), 64)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("%s: invalid balance amount %q", filepath.Base(path), strings.TrimSpace(doc.Current.Amount))
	}
	return model.Snapshot{
		Balance: amount,
		AsOf:    doc.Current.AsOf.Time,
	}, nil
}

// LoadFixedCosts reads the recurring cost list and returns the total
// monthly fixed cost.
func LoadFixedCosts(path string) (float64, error) {
	var doc costsDoc
	if err := decodeFile(path, &doc); err != nil {
		return 0, err
	}
	total := 0.0
	for _, c := range doc.Costs {
		if c.Amount < 0 {
			return 0, fmt.Errorf("%s: cost %q has negative amount", filepath.Base(path), c.Name)
		}
		total += c.Amount
	}
	return total, nil
}

// LoadIncome reads all income entries. Amounts must be positive and a
// <to> date may not precede <from>. Frequency strings are passed
// through as-is: the engine treats unrecognized ones as zero income.
func LoadIncome(path string) ([]model.IncomeEntry, error) {
	var doc incomeDoc
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}

	entries := make([]model.IncomeEntry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		if e.Amount <= 0 {
			return nil, fmt.Errorf("%s: entry %q has non-positive amount %v", filepath.Base(path), e.Source, e.Amount)
		}
		if e.From.IsZero() {
			return nil, fmt.Errorf("%s: entry %q is missing <from>", filepath.Base(path), e.Source)
		}

		entry := model.IncomeEntry{
			Source:    e.Source,
			Amount:    e.Amount,
			Frequency: model.ParseFrequency(e.Frequency),
			Start:     e.From.Time,
		}
		if e.To != nil {
			if e.To.Before(e.From.Time) {
				return nil, fmt.Errorf("%s: entry %q ends %s before it starts %s",
					filepath.Base(path), e.Source,
					e.To.Format("2006-01-02"), e.From.Format("2006-01-02"))
			}
			end := e.To.Time
			entry.End = &end
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LoadScenarios reads all scenario definitions. days-per-week must lie
// in [0, 7].
func LoadScenarios(path string) ([]model.Scenario, error) {
	var doc scenariosDoc
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}

	scenarios := make([]model.Scenario, 0, len(doc.Scenarios))
	for _, s := range doc.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("%s: scenario with empty name", filepath.Base(path))
		}
		scn := model.Scenario{Name: s.Name}
		for _, a := range s.Activities {
			if a.DaysPerWeek < 0 || a.DaysPerWeek > 7 {
				return nil, fmt.Errorf("%s: activity %q in scenario %q has days-per-week %v, want 0-7",
					filepath.Base(path), a.Name, s.Name, a.DaysPerWeek)
			}
			if a.Cost < 0 {
				return nil, fmt.Errorf("%s: activity %q in scenario %q has negative cost",
					filepath.Base(path), a.Name, s.Name)
			}
			scn.Activities = append(scn.Activities, model.Activity{
				Name:        a.Name,
				Cost:        a.Cost,
				DaysPerWeek: a.DaysPerWeek,
			})
		}
		scenarios = append(scenarios, scn)
	}
	return scenarios, nil
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
