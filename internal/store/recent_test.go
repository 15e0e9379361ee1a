package store

import (
	"os"
	"path/filepath"
	"testing"

	"quotewiz/internal/quote"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

func TestRecordResultCapsAtMaxRecent(t *testing.T) {
	s := testStore(t)

	for i := 0; i < MaxRecent+3; i++ {
		spec := quote.QuoteSpec{Title: string(rune('A' + i))}
		if _, err := s.RecordResult(Result{Spec: spec}); err != nil {
			t.Fatalf("RecordResult: %v", err)
		}
	}

	recent := s.LoadRecent()
	if len(recent) != MaxRecent {
		t.Fatalf("len(recent) = %d, want %d", len(recent), MaxRecent)
	}
	// Newest first.
	if recent[0].Spec.Title != string(rune('A'+MaxRecent+2)) {
		t.Errorf("newest entry title = %q", recent[0].Spec.Title)
	}
	if recent[0].ID == "" {
		t.Error("recorded result should have an ID assigned")
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("recorded result should have a timestamp")
	}
}

func TestLoadRecentMissingFile(t *testing.T) {
	s := testStore(t)
	if got := s.LoadRecent(); len(got) != 0 {
		t.Errorf("LoadRecent on empty store = %v, want empty", got)
	}
}

func TestLoadRecentCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "recent.json"), []byte("{corrupt"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := s.LoadRecent(); len(got) != 0 {
		t.Errorf("LoadRecent on corrupt file = %v, want empty", got)
	}

	// A corrupt cache must not block recording a new result.
	if _, err := s.RecordResult(Result{Spec: quote.QuoteSpec{Title: "Fresh"}}); err != nil {
		t.Fatalf("RecordResult after corruption: %v", err)
	}
	recent := s.LoadRecent()
	if len(recent) != 1 || recent[0].Spec.Title != "Fresh" {
		t.Errorf("recent after recovery = %+v", recent)
	}
}

func TestProfileOverrideRoundTrip(t *testing.T) {
	s := testStore(t)

	if got := s.LoadProfileOverride(); got != "" {
		t.Errorf("LoadProfileOverride before save = %q, want empty", got)
	}
	if err := s.SaveProfileOverride("quality"); err != nil {
		t.Fatalf("SaveProfileOverride: %v", err)
	}
	if got := s.LoadProfileOverride(); got != "quality" {
		t.Errorf("LoadProfileOverride = %q, want %q", got, "quality")
	}
}

func TestReset(t *testing.T) {
	s := testStore(t)
	if _, err := s.RecordResult(Result{Spec: quote.QuoteSpec{Title: "X"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := s.LoadRecent(); len(got) != 0 {
		t.Errorf("recent after reset = %v, want empty", got)
	}
}
