package storage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Theme != ThemeDark {
		t.Errorf("Expected dark theme, got %v", prefs.Theme)
	}
	if !prefs.SoundEnabled {
		t.Errorf("Expected sound enabled by default")
	}
	if !prefs.ShowCoordinates {
		t.Errorf("Expected coordinates shown by default")
	}
	if prefs.Flipped {
		t.Errorf("Expected unflipped board by default")
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTest(t)

	got, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences on empty store: %v", err)
	}
	ignoreTime := cmpopts.IgnoreFields(UserPreferences{}, "LastPlayed")
	if diff := cmp.Diff(DefaultPreferences(), got, ignoreTime); diff != "" {
		t.Errorf("empty store preferences mismatch (-want +got):\n%s", diff)
	}

	want := &UserPreferences{Theme: ThemeLight, Flipped: true}
	if err := s.SavePreferences(want); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	if want.LastPlayed.IsZero() {
		t.Error("SavePreferences did not stamp LastPlayed")
	}

	got, err = s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if diff := cmp.Diff(want, got, ignoreTime); diff != "" {
		t.Errorf("preferences mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstLaunch(t *testing.T) {
	s := openTest(t)

	first, err := s.IsFirstLaunch()
	if err != nil || !first {
		t.Fatalf("IsFirstLaunch() = %v, %v; want true", first, err)
	}
	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete: %v", err)
	}
	first, err = s.IsFirstLaunch()
	if err != nil || first {
		t.Errorf("IsFirstLaunch() after mark = %v, %v; want false", first, err)
	}
}

func TestRecordResult(t *testing.T) {
	s := openTest(t)

	for _, o := range []Outcome{WhiteWins, BlackWins, WhiteWins, Stalemate} {
		if _, err := s.RecordResult(o); err != nil {
			t.Fatalf("RecordResult(%v): %v", o, err)
		}
	}

	got, err := s.LoadTally()
	if err != nil {
		t.Fatalf("LoadTally: %v", err)
	}
	want := &Tally{GamesPlayed: 4, WhiteWins: 2, BlackWins: 1, Stalemates: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tally mismatch (-want +got):\n%s", diff)
	}
}
