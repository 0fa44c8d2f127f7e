package cli

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney_Rounds(t *testing.T) {
	if got := FormatMoney(1234567.8); got != "1,234,568" {
		t.Errorf("FormatMoney = %q, want 1,234,568", got)
	}
	if got := FormatMoney(4999.4); got != "4,999" {
		t.Errorf("FormatMoney = %q, want 4,999", got)
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{500, "500"},
		{1000, "1K"},
		{1500, "1.5K"},
		{300000, "300K"},
		{2000000, "2M"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDeathInfo(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := FormatDeathInfo(nil, start); got != "Survives" {
		t.Errorf("nil death day = %q, want Survives", got)
	}

	death := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	want := "2024-03-01  (60 days / 2.0 months)"
	if got := FormatDeathInfo(&death, start); got != want {
		t.Errorf("FormatDeathInfo = %q, want %q", got, want)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty input = %q, want empty string", got)
	}

	got := RenderSparkline([]float64{0, 50, 100})
	runes := []rune(got)
	if len(runes) != 3 {
		t.Fatalf("got %d runes, want 3", len(runes))
	}
	if runes[0] != '▁' || runes[2] != '█' {
		t.Errorf("sparkline = %q, want low first and full last", got)
	}
}
