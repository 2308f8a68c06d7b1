package ui

import (
	"testing"

	"github.com/hailam/hotseat/internal/storage"
)

func TestTallyText(t *testing.T) {
	tests := []struct {
		name  string
		tally *storage.Tally
		want  string
	}{
		{"nil", nil, "No games finished yet."},
		{"empty", &storage.Tally{}, "No games finished yet."},
		{
			"some games",
			&storage.Tally{GamesPlayed: 5, WhiteWins: 2, BlackWins: 2, Stalemates: 1},
			"Games finished: 5\nWhite wins 2 · Black wins 2 · Stalemates 1",
		},
	}
	for _, tc := range tests {
		if got := tallyText(tc.tally); got != tc.want {
			t.Errorf("%s: tallyText = %q, want %q", tc.name, got, tc.want)
		}
	}
}
