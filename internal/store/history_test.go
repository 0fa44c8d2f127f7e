package store

import (
	"path/filepath"
	"testing"
	"time"

	"valvelet/internal/model"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRecordAndList(t *testing.T) {
	h := openTestHistory(t)

	snaps := []model.Snapshot{
		{Balance: 320000, AsOf: day(t, "2024-02-01")},
		{Balance: 350000, AsOf: day(t, "2024-01-01")},
		{Balance: 295000, AsOf: day(t, "2024-03-01")},
	}
	for _, s := range snaps {
		if err := h.Record(s); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := h.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d snapshots, want 3", len(got))
	}
	// Ordered by as-of ascending regardless of insertion order.
	wantDates := []string{"2024-01-01", "2024-02-01", "2024-03-01"}
	for i, want := range wantDates {
		if got[i].AsOf.Format("2006-01-02") != want {
			t.Errorf("got[%d].AsOf = %s, want %s", i, got[i].AsOf.Format("2006-01-02"), want)
		}
	}
}

func TestRecord_ReplacesSameAsOf(t *testing.T) {
	h := openTestHistory(t)

	if err := h.Record(model.Snapshot{Balance: 100000, AsOf: day(t, "2024-01-01")}); err != nil {
		t.Fatal(err)
	}
	if err := h.Record(model.Snapshot{Balance: 98000, AsOf: day(t, "2024-01-01")}); err != nil {
		t.Fatal(err)
	}

	got, err := h.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d snapshots, want 1 (replace on same as-of)", len(got))
	}
	if got[0].Balance != 98000 {
		t.Errorf("Balance = %v, want 98000 (last write wins)", got[0].Balance)
	}

	count, err := h.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}

func TestList_Empty(t *testing.T) {
	h := openTestHistory(t)
	got, err := h.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d snapshots from empty db, want 0", len(got))
	}
}
