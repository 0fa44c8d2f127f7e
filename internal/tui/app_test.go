package tui

import (
	"testing"
	"time"

	"valvelet/internal/model"
	"valvelet/internal/source"
	"valvelet/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func loadedApp() App {
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	death := asOf.AddDate(0, 0, 60)

	dates := make([]time.Time, 61)
	balances := make([]float64, 61)
	for i := range dates {
		dates[i] = asOf.AddDate(0, 0, i)
		balances[i] = 300000 - float64(i)*5000
	}

	return App{
		loaded:   true,
		width:    100,
		height:   30,
		currency: "JPY",
		inputs: &source.Inputs{
			Snapshot:     model.Snapshot{Balance: 300000, AsOf: asOf},
			FixedMonthly: 150000,
		},
		results: []model.SimResult{{
			Name:     "baseline",
			Dates:    dates,
			Balances: balances,
			DeathDay: &death,
			DailyBurn: 5000, MonthlyBurn: 150000,
		}},
	}
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTabKeysSwitchTabs(t *testing.T) {
	a := loadedApp()

	for _, tc := range []struct {
		key  rune
		want int
	}{
		{'d', 1},
		{'m', 2},
		{'c', 0},
	} {
		updated, _ := a.Update(keyMsg(tc.key))
		a = updated.(App)
		if a.activeTab != tc.want {
			t.Errorf("key %q: activeTab = %d, want %d", tc.key, a.activeTab, tc.want)
		}
	}
}

func TestArrowKeysWrapTabs(t *testing.T) {
	a := loadedApp()

	updated, _ := a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	a = updated.(App)
	if a.activeTab != len(components.Tabs)-1 {
		t.Errorf("left from tab 0 = %d, want %d", a.activeTab, len(components.Tabs)-1)
	}

	updated, _ = a.Update(tea.KeyMsg{Type: tea.KeyRight})
	a = updated.(App)
	if a.activeTab != 0 {
		t.Errorf("right wraps to %d, want 0", a.activeTab)
	}
}

func TestHelpToggleAndDismiss(t *testing.T) {
	a := loadedApp()

	updated, _ := a.Update(keyMsg('?'))
	a = updated.(App)
	if !a.showHelp {
		t.Fatal("? did not open help")
	}

	// Any key dismisses
	updated, _ = a.Update(keyMsg('x'))
	a = updated.(App)
	if a.showHelp {
		t.Fatal("key press did not dismiss help")
	}
}

func TestQuitKey(t *testing.T) {
	a := loadedApp()

	_, cmd := a.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q produced %T, want tea.QuitMsg", cmd())
	}
}

func TestDataLoadedMsgPopulatesApp(t *testing.T) {
	a := App{needSetup: false}
	src := loadedApp()

	updated, _ := a.Update(DataLoadedMsg{
		Inputs:   src.inputs,
		Results:  src.results,
		LoadTime: time.Second,
	})
	a = updated.(App)

	if !a.loaded {
		t.Fatal("app not marked loaded")
	}
	if len(a.results) != 1 || a.results[0].Name != "baseline" {
		t.Fatalf("results not stored: %+v", a.results)
	}
}

func TestLoadErrorKeepsAppUsable(t *testing.T) {
	a := App{needSetup: false, width: 100, height: 30}

	updated, _ := a.Update(DataLoadedMsg{Err: errTest})
	a = updated.(App)

	if a.loaded {
		t.Fatal("app marked loaded despite error")
	}
	if a.View() == "" {
		t.Fatal("error view is empty")
	}

	// r retries
	_, cmd := a.Update(keyMsg('r'))
	if cmd == nil {
		t.Fatal("r did not trigger a reload")
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

var errTest = testErr("balance.xml: missing as-of date on <current>")

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos += 2 // separator
			}
		}
	}
}

func TestViewRendersAllTabs(t *testing.T) {
	a := loadedApp()
	for tab := 0; tab < len(components.Tabs); tab++ {
		a.activeTab = tab
		if a.View() == "" {
			t.Errorf("tab %d renders empty view", tab)
		}
	}
}
