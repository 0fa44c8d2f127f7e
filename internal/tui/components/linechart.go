package components

import (
	"fmt"
	"math"
	"strings"
	"time"

	"valvelet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Series is one balance projection plotted on the shared date axis.
type Series struct {
	Name     string
	Values   []float64
	Color    lipgloss.Color
	DeathIdx int // index into the date axis where the balance hits zero, -1 if it survives
}

// ScenarioColors returns the plot color for the i-th scenario,
// cycling through the palette of the active theme.
func ScenarioColors(i int) lipgloss.Color {
	t := theme.Active
	palette := []lipgloss.Color{t.Yellow, t.Magenta, t.Green, t.Red}
	return palette[i%len(palette)]
}

// LineChart renders multiple series as a braille-free line chart with
// a y-axis in round thousands and cyan vertical markers on each death
// day. All series share the dates axis; shorter series simply stop.
func LineChart(series []Series, dates []time.Time, width, height int) string {
	if len(series) == 0 || len(dates) < 2 || width < 20 || height < 4 {
		return ""
	}
	t := theme.Active

	yMax := 0.0
	for _, s := range series {
		for _, v := range s.Values {
			if v > yMax {
				yMax = v
			}
		}
	}
	if yMax <= 0 {
		yMax = 1
	}

	// Ticks land on round thousands so the axis reads like a bank
	// statement, never 1234.5.
	step := math.Floor(yMax/5/1000) * 1000
	if step < 1000 {
		step = 1000
	}
	ceiling := math.Ceil(yMax/step) * step

	yLabelW := len(axisLabel(ceiling)) + 1
	if yLabelW < 5 {
		yLabelW = 5
	}
	plotW := width - yLabelW - 1
	if plotW < 10 {
		plotW = 10
	}
	plotH := height

	type cell struct {
		ch    rune
		color lipgloss.Color
	}
	grid := make([][]cell, plotH)
	for r := range grid {
		grid[r] = make([]cell, plotW)
		for c := range grid[r] {
			grid[r][c] = cell{ch: ' '}
		}
	}

	n := len(dates)
	colFor := func(idx int) int {
		return idx * (plotW - 1) / (n - 1)
	}

	// Death markers go in first so the curves draw over them.
	deathCount := 0
	for _, s := range series {
		if s.DeathIdx < 0 || s.DeathIdx >= n {
			continue
		}
		col := colFor(s.DeathIdx)
		for r := 0; r < plotH; r++ {
			grid[r][col] = cell{ch: '│', color: t.Cyan}
		}

		// Stagger labels so adjacent death days stay readable.
		label := fmt.Sprintf(" %s %s", s.Name, dates[s.DeathIdx].Format("01-02"))
		row := deathCount % 3
		start := col + 1
		if start+len(label) > plotW {
			start = col - len(label)
			if start < 0 {
				start = 0
			}
		}
		for i, ch := range label {
			if start+i < plotW {
				grid[row][start+i] = cell{ch: ch, color: t.Cyan}
			}
		}
		deathCount++
	}

	// Plot each series, later ones on top.
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		for col := 0; col < plotW; col++ {
			idx := col * (n - 1) / (plotW - 1)
			if idx >= len(s.Values) {
				break
			}
			v := s.Values[idx]
			row := plotH - 1 - int(v/ceiling*float64(plotH-1))
			if row < 0 {
				row = 0
			}
			if row >= plotH {
				row = plotH - 1
			}
			grid[row][col] = cell{ch: '•', color: s.Color}
		}
	}

	// Tick labels by row
	tickLabels := make(map[int]string)
	for v := step; v <= ceiling; v += step {
		row := plotH - 1 - int(v/ceiling*float64(plotH-1))
		if row >= 0 && row < plotH {
			tickLabels[row] = axisLabel(v)
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	bgStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for r := 0; r < plotH; r++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[r])))
		b.WriteString(axisStyle.Render("│"))

		// Group runs of same-colored cells to limit ANSI churn
		col := 0
		for col < plotW {
			c := grid[r][col]
			run := col + 1
			for run < plotW && grid[r][run].color == c.color {
				run++
			}
			var sb strings.Builder
			for i := col; i < run; i++ {
				sb.WriteRune(grid[r][i].ch)
			}
			if c.color == "" {
				b.WriteString(bgStyle.Render(sb.String()))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(c.color).Background(t.Surface).Render(sb.String()))
			}
			col = run
		}
		b.WriteString("\n")
	}

	// X-axis with start / middle / end dates
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", plotW)))
	b.WriteString("\n")

	first := dates[0].Format("2006-01-02")
	last := dates[n-1].Format("2006-01-02")
	mid := dates[(n-1)/2].Format("2006-01-02")
	axis := make([]byte, plotW)
	for i := range axis {
		axis[i] = ' '
	}
	copy(axis, first)
	if pos := plotW/2 - len(mid)/2; pos > len(first)+1 && pos+len(mid) < plotW-len(last)-1 {
		copy(axis[pos:], mid)
	}
	if pos := plotW - len(last); pos > 0 {
		copy(axis[pos:], last)
	}
	b.WriteString(bgStyle.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(string(axis)))

	return b.String()
}

// Legend renders one colored bullet per series with its caption.
func Legend(series []Series, captions []string) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var parts []string
	for i, s := range series {
		bullet := lipgloss.NewStyle().Foreground(s.Color).Background(t.Surface).Render("●")
		caption := s.Name
		if i < len(captions) && captions[i] != "" {
			caption += "  " + captions[i]
		}
		parts = append(parts, bullet+" "+dimStyle.Render(caption))
	}
	return strings.Join(parts, dimStyle.Render("   "))
}

func axisLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.0fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
