package source

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Starter file contents written by the setup wizard. Kept small enough
// to edit by hand on first run.
const (
	sampleFixedCosts = `<costs>
  <cost>
    <name>rent</name>
    <amount>80000</amount>
  </cost>
  <cost>
    <name>utilities</name>
    <amount>15000</amount>
  </cost>
</costs>
`

	sampleIncome = `<income>
</income>
`

	sampleScenarios = `<scenarios>
  <scenario>
    <name>baseline</name>
  </scenario>
  <scenario>
    <name>eating out</name>
    <activity>
      <name>restaurant</name>
      <cost>2500</cost>
      <days-per-week>3</days-per-week>
    </activity>
  </scenario>
</scenarios>
`
)

// WriteSamples creates the data directory and writes starter versions
// of any data file that does not exist yet. The balance file is dated
// today. Returns the names of files written.
func WriteSamples(dataDir string) ([]string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	sampleBalance := fmt.Sprintf("<balance>\n  <current as-of=%q>300000</current>\n</balance>\n",
		time.Now().Format("2006-01-02"))

	samples := []struct {
		name    string
		content string
	}{
		{BalanceFile, sampleBalance},
		{FixedCostsFile, sampleFixedCosts},
		{IncomeFile, sampleIncome},
		{ScenariosFile, sampleScenarios},
	}

	var written []string
	for _, s := range samples {
		path := filepath.Join(dataDir, s.name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(s.content), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", s.name, err)
		}
		written = append(written, s.name)
	}
	return written, nil
}
