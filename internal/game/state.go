package game

import "github.com/hailam/hotseat/internal/board"

// State is the phase of the selection state machine.
type State int

const (
	AwaitingSelection State = iota
	PieceSelected
	Checkmate
	Stalemate
)

func (s State) String() string {
	switch s {
	case AwaitingSelection:
		return "awaiting-selection"
	case PieceSelected:
		return "piece-selected"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (s State) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// Result is the outcome of the game so far. Winner is NoColor unless the
// game ended in checkmate.
type Result struct {
	State  State
	Winner board.Color
}

// InProgress is the result of a game that has not ended.
var InProgress = Result{State: AwaitingSelection, Winner: board.NoColor}

// Over reports whether the game has ended.
func (r Result) Over() bool {
	return r.State.Terminal()
}

func (r Result) String() string {
	switch r.State {
	case Checkmate:
		return r.Winner.String() + " wins"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}

// Outcome tells the caller what a Select call did.
type Outcome int

const (
	// Ignored means the input was dropped (game over or off-board square).
	Ignored Outcome = iota
	// Selected means a piece was selected or reselected.
	Selected
	// Cleared means an existing selection was dropped.
	Cleared
	// Moved means the selected piece moved to the chosen square.
	Moved
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Cleared:
		return "cleared"
	case Moved:
		return "moved"
	default:
		return "ignored"
	}
}
