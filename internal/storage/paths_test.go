//go:build !js

package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open(%q): %v", dir, err)
	}
	if _, err := s.RecordResult(BlackWins); err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	tally, err := s.LoadTally()
	if err != nil {
		t.Fatalf("LoadTally: %v", err)
	}
	if tally.BlackWins != 1 || tally.GamesPlayed != 1 {
		t.Errorf("tally after reopen = %+v", tally)
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("DataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	t.Logf("Data directory: %s", dataDir)
}
