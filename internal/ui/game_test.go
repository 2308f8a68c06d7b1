package ui

import (
	"testing"

	"github.com/hailam/hotseat/internal/board"
	"github.com/hailam/hotseat/internal/game"
	"github.com/hailam/hotseat/internal/storage"
)

func TestTallyOutcome(t *testing.T) {
	tests := []struct {
		result game.Result
		want   storage.Outcome
		ok     bool
	}{
		{game.InProgress, 0, false},
		{game.Result{State: game.PieceSelected, Winner: board.NoColor}, 0, false},
		{game.Result{State: game.Checkmate, Winner: board.White}, storage.WhiteWins, true},
		{game.Result{State: game.Checkmate, Winner: board.Black}, storage.BlackWins, true},
		{game.Result{State: game.Stalemate, Winner: board.NoColor}, storage.Stalemate, true},
	}

	for _, tt := range tests {
		t.Run(tt.result.String(), func(t *testing.T) {
			got, ok := tallyOutcome(tt.result)
			if ok != tt.ok || got != tt.want {
				t.Errorf("tallyOutcome(%v) = %v, %v; want %v, %v", tt.result, got, ok, tt.want, tt.ok)
			}
		})
	}
}
