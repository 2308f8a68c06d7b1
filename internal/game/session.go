// Package game holds the two-player session: whose turn it is, the current
// selection, the move history and the result. It is driven one input at a
// time and is not safe for concurrent use.
package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hailam/hotseat/internal/board"
)

// Session is one game between two players sharing a device.
type Session struct {
	board    *board.Board
	side     board.Color
	state    State
	winner   board.Color
	selected board.Square
	targets  board.SquareSet
	history  []board.MoveRecord
	inCheck  bool

	log logrus.FieldLogger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for move and result events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// NewSession returns a session at the starting position with White to move.
func NewSession(opts ...Option) *Session {
	s := &Session{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// NewSessionFromFEN returns a session at the given position. The result is
// evaluated immediately, so a mated or stalemated position starts terminal.
func NewSessionFromFEN(fen string, opts ...Option) (*Session, error) {
	b, side, err := board.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	s := NewSession(opts...)
	s.board = b
	s.side = side
	s.evaluate()
	return s, nil
}

// Reset restores the starting position, clears the history and gives White
// the move. It is the only way out of a terminal state.
func (s *Session) Reset() {
	s.board = board.NewBoard()
	s.side = board.White
	s.state = AwaitingSelection
	s.winner = board.NoColor
	s.history = nil
	s.inCheck = false
	s.clearSelection()
	s.log.Debug("game reset")
}

// Select handles a click (or keyboard activation) on sq.
//
// Selecting an own piece with legal moves selects it, replacing any earlier
// selection. With a piece selected, selecting one of its targets plays the
// move; any other square clears the selection. Terminal states ignore input.
func (s *Session) Select(sq board.Square) Outcome {
	if s.state.Terminal() || !sq.IsValid() {
		return Ignored
	}

	if s.state == PieceSelected && s.targets.Has(sq) {
		s.apply(board.NewMove(s.selected, sq))
		return Moved
	}

	if s.board.PieceAt(sq).Is(s.side) {
		if targets := s.board.LegalMovesFrom(sq, s.side); !targets.Empty() {
			s.selected = sq
			s.targets = targets
			s.state = PieceSelected
			return Selected
		}
	}

	if s.state == PieceSelected {
		s.clearSelection()
		return Cleared
	}
	return Ignored
}

// Move plays from-to for the side to move, bypassing the selection. The
// selection is cleared whether or not the move is accepted.
func (s *Session) Move(from, to board.Square) (board.MoveRecord, error) {
	if s.state.Terminal() {
		return board.MoveRecord{}, ErrGameOver
	}

	p := s.board.PieceAt(from)
	if p == board.NoPiece {
		s.clearSelection()
		return board.MoveRecord{}, fmt.Errorf("move %v-%v: %w", from, to, ErrNoPiece)
	}
	if !p.Is(s.side) {
		s.clearSelection()
		return board.MoveRecord{}, fmt.Errorf("move %v-%v: %w", from, to, ErrWrongSide)
	}
	if !s.board.LegalMovesFrom(from, s.side).Has(to) {
		s.clearSelection()
		return board.MoveRecord{}, fmt.Errorf("move %v-%v: %w", from, to, ErrIllegalMove)
	}

	return s.apply(board.NewMove(from, to)), nil
}

// apply plays a move already known to be legal, flips the turn and
// re-evaluates the result for the new side to move.
func (s *Session) apply(m board.Move) board.MoveRecord {
	rec := s.board.ApplyMove(m)
	s.history = append(s.history, rec)
	s.side = s.side.Other()
	s.clearSelection()

	s.log.WithFields(logrus.Fields{
		"from":     rec.From,
		"to":       rec.To,
		"side":     rec.Piece.Color(),
		"capture":  rec.IsCapture(),
		"promoted": rec.Promoted,
	}).Debug("move applied")

	s.evaluate()
	return rec
}

// evaluate sets the state from the position of the side to move.
func (s *Session) evaluate() {
	s.inCheck = s.board.IsKingInCheck(s.side)
	if s.board.AnyLegalMove(s.side) {
		s.state = AwaitingSelection
		return
	}

	if s.inCheck {
		s.state = Checkmate
		s.winner = s.side.Other()
	} else {
		s.state = Stalemate
	}
	s.log.WithFields(logrus.Fields{
		"result": s.Result(),
		"moves":  len(s.history),
	}).Info("game over")
}

func (s *Session) clearSelection() {
	s.selected = board.NoSquare
	s.targets = 0
	if !s.state.Terminal() {
		s.state = AwaitingSelection
	}
}

// Board returns a copy of the current board.
func (s *Session) Board() *board.Board {
	return s.board.Copy()
}

// SideToMove returns the color whose turn it is.
func (s *Session) SideToMove() board.Color {
	return s.side
}

// State returns the current state machine phase.
func (s *Session) State() State {
	return s.state
}

// Result returns the game result.
func (s *Session) Result() Result {
	if !s.state.Terminal() {
		return InProgress
	}
	return Result{State: s.state, Winner: s.winner}
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	return s.inCheck
}

// Selected returns the selected square, or NoSquare.
func (s *Session) Selected() board.Square {
	return s.selected
}

// Targets returns the legal destinations of the selected piece.
func (s *Session) Targets() board.SquareSet {
	return s.targets
}

// History returns a copy of the applied moves, oldest first.
func (s *Session) History() []board.MoveRecord {
	out := make([]board.MoveRecord, len(s.history))
	copy(out, s.history)
	return out
}

// LastMove returns the most recent move and false if none was played.
func (s *Session) LastMove() (board.MoveRecord, bool) {
	if len(s.history) == 0 {
		return board.MoveRecord{}, false
	}
	return s.history[len(s.history)-1], true
}

// Status returns the one-line status shown to the players.
func (s *Session) Status() string {
	switch s.state {
	case Checkmate:
		return fmt.Sprintf("Checkmate. %s wins. Press Reset.", s.winner)
	case Stalemate:
		return "Stalemate. Press Reset."
	}
	status := s.side.String() + " to move"
	if s.inCheck {
		status += " · in check"
	}
	return status
}
