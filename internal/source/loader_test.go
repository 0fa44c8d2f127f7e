package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"valvelet/internal/model"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBalance(t *testing.T) {
	path := writeFile(t, "balance.xml", `<?xml version="1.0"?>
<balance>
  <current as-of="2024-01-01">300000</current>
</balance>`)

	snap, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Balance != 300000 {
		t.Errorf("Balance = %v, want 300000", snap.Balance)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !snap.AsOf.Equal(want) {
		t.Errorf("AsOf = %v, want %v", snap.AsOf, want)
	}
}

func TestLoadBalance_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing as-of", `<balance><current>300000</current></balance>`},
		{"bad amount", `<balance><current as-of="2024-01-01">lots</current></balance>`},
		{"bad date", `<balance><current as-of="01/01/2024">300000</current></balance>`},
		{"not xml", `{"balance": 300000}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "balance.xml", tt.content)
			if _, err := LoadBalance(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadBalance_MissingFile(t *testing.T) {
	if _, err := LoadBalance(filepath.Join(t.TempDir(), "balance.xml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadFixedCosts_SumsAmounts(t *testing.T) {
	path := writeFile(t, "fixed_costs.xml", `<costs>
  <cost><name>rent</name><amount>90000</amount></cost>
  <cost><name>utilities</name><amount>15000</amount></cost>
  <cost><name>phone</name><amount>5000</amount></cost>
</costs>`)

	total, err := LoadFixedCosts(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 110000 {
		t.Errorf("total = %v, want 110000", total)
	}
}

func TestLoadFixedCosts_Empty(t *testing.T) {
	path := writeFile(t, "fixed_costs.xml", `<costs></costs>`)
	total, err := LoadFixedCosts(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Errorf("total = %v, want 0", total)
	}
}

func TestLoadIncome(t *testing.T) {
	path := writeFile(t, "income.xml", `<income>
  <entry frequency="monthly">
    <source>salary</source>
    <amount>280000</amount>
    <from>2024-01-25</from>
  </entry>
  <entry frequency="once">
    <source>tax refund</source>
    <amount>40000</amount>
    <from>2024-02-15</from>
    <to>2024-02-15</to>
  </entry>
  <entry frequency="quarterly">
    <source>dividends</source>
    <amount>12000</amount>
    <from>2024-03-01</from>
  </entry>
</income>`)

	entries, err := LoadIncome(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	if entries[0].Frequency != model.FrequencyMonthly {
		t.Errorf("entries[0].Frequency = %s, want monthly", entries[0].Frequency)
	}
	if entries[0].End != nil {
		t.Error("entries[0].End should be nil for open-ended entry")
	}

	if entries[1].End == nil || !entries[1].End.Equal(entries[1].Start) {
		t.Error("entries[1] should end on its start date")
	}

	// Unrecognized frequency loads fine and maps to unknown (the
	// engine treats it as zero income rather than failing).
	if entries[2].Frequency != model.FrequencyUnknown {
		t.Errorf("entries[2].Frequency = %s, want unknown", entries[2].Frequency)
	}
}

func TestLoadIncome_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{
			"zero amount",
			`<income><entry frequency="daily"><source>x</source><amount>0</amount><from>2024-01-01</from></entry></income>`,
			"non-positive amount",
		},
		{
			"end before start",
			`<income><entry frequency="daily"><source>x</source><amount>100</amount><from>2024-06-01</from><to>2024-01-01</to></entry></income>`,
			"before it starts",
		},
		{
			"missing from",
			`<income><entry frequency="daily"><source>x</source><amount>100</amount></entry></income>`,
			"missing <from>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "income.xml", tt.content)
			_, err := LoadIncome(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoadScenarios(t *testing.T) {
	path := writeFile(t, "scenarios.xml", `<scenarios>
  <scenario>
    <name>hermit</name>
  </scenario>
  <scenario>
    <name>social</name>
    <activity><name>izakaya</name><cost>4500</cost><days-per-week>1.5</days-per-week></activity>
    <activity><name>gym</name><cost>1200</cost><days-per-week>3</days-per-week></activity>
  </scenario>
</scenarios>`)

	scenarios, err := LoadScenarios(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(scenarios))
	}
	if scenarios[0].Name != "hermit" || len(scenarios[0].Activities) != 0 {
		t.Errorf("scenarios[0] = %+v, want empty hermit", scenarios[0])
	}
	if len(scenarios[1].Activities) != 2 {
		t.Fatalf("social has %d activities, want 2", len(scenarios[1].Activities))
	}
	if scenarios[1].Activities[0].DaysPerWeek != 1.5 {
		t.Errorf("DaysPerWeek = %v, want 1.5", scenarios[1].Activities[0].DaysPerWeek)
	}
}

func TestLoadScenarios_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"days per week over 7",
			`<scenarios><scenario><name>x</name><activity><name>a</name><cost>100</cost><days-per-week>8</days-per-week></activity></scenario></scenarios>`,
		},
		{
			"negative cost",
			`<scenarios><scenario><name>x</name><activity><name>a</name><cost>-5</cost><days-per-week>1</days-per-week></activity></scenario></scenarios>`,
		},
		{
			"empty scenario name",
			`<scenarios><scenario><name></name></scenario></scenarios>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "scenarios.xml", tt.content)
			if _, err := LoadScenarios(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		BalanceFile:    `<balance><current as-of="2024-01-01">300000</current></balance>`,
		FixedCostsFile: `<costs><cost><name>rent</name><amount>150000</amount></cost></costs>`,
		IncomeFile:     `<income><entry frequency="monthly"><source>salary</source><amount>150000</amount><from>2024-01-01</from></entry></income>`,
		ScenariosFile:  `<scenarios><scenario><name>baseline</name></scenario></scenarios>`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	inputs, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inputs.Snapshot.Balance != 300000 {
		t.Errorf("Balance = %v, want 300000", inputs.Snapshot.Balance)
	}
	if inputs.FixedMonthly != 150000 {
		t.Errorf("FixedMonthly = %v, want 150000", inputs.FixedMonthly)
	}
	if len(inputs.Incomes) != 1 || len(inputs.Scenarios) != 1 {
		t.Errorf("got %d incomes and %d scenarios, want 1 each", len(inputs.Incomes), len(inputs.Scenarios))
	}
}

func TestLoadAll_MissingFile(t *testing.T) {
	dir := t.TempDir()
	// Only balance present; the first missing file fails the load.
	if err := os.WriteFile(filepath.Join(dir, BalanceFile),
		[]byte(`<balance><current as-of="2024-01-01">300000</current></balance>`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAll(dir); err == nil {
		t.Error("expected error for incomplete data dir, got nil")
	}
}
