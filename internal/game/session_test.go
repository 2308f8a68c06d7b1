package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/hailam/hotseat/internal/board"
)

func quietSession(t *testing.T) *Session {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return NewSession(WithLogger(logger))
}

func sq(t *testing.T, name string) board.Square {
	t.Helper()
	s, err := board.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return s
}

// play clicks through a list of coordinate moves, failing on any click that
// does not have the expected effect.
func play(t *testing.T, s *Session, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		m, err := board.ParseMove(mv)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", mv, err)
		}
		if got := s.Select(m.From); got != Selected {
			t.Fatalf("%s: Select(%v) = %v, want selected", mv, m.From, got)
		}
		if got := s.Select(m.To); got != Moved {
			t.Fatalf("%s: Select(%v) = %v, want moved", mv, m.To, got)
		}
	}
}

func logLines(s *Session) []string {
	var lines []string
	for _, r := range s.History() {
		lines = append(lines, r.LogLine())
	}
	return lines
}

func TestNewSession(t *testing.T) {
	s := quietSession(t)

	if s.State() != AwaitingSelection {
		t.Errorf("State() = %v, want awaiting-selection", s.State())
	}
	if s.SideToMove() != board.White {
		t.Errorf("SideToMove() = %v, want White", s.SideToMove())
	}
	if s.Selected() != board.NoSquare {
		t.Errorf("Selected() = %v, want none", s.Selected())
	}
	if got := s.Status(); got != "White to move" {
		t.Errorf("Status() = %q", got)
	}
	if s.Result() != InProgress {
		t.Errorf("Result() = %v, want in progress", s.Result())
	}
	if *s.Board() != *board.NewBoard() {
		t.Error("Board() is not the starting position")
	}
}

func TestSelectShowsTargets(t *testing.T) {
	s := quietSession(t)

	if got := s.Select(sq(t, "e2")); got != Selected {
		t.Fatalf("Select(e2) = %v, want selected", got)
	}
	if s.State() != PieceSelected {
		t.Errorf("State() = %v, want piece-selected", s.State())
	}
	want := []board.Square{sq(t, "e4"), sq(t, "e3")}
	if diff := cmp.Diff(want, s.Targets().Squares()); diff != "" {
		t.Errorf("Targets() mismatch (-want +got):\n%s", diff)
	}
}

func TestPawnMovesAlternate(t *testing.T) {
	s := quietSession(t)
	play(t, s, "e2e4")

	b := s.Board()
	if b.PieceAt(sq(t, "e4")) != board.WhitePawn || !b.IsEmpty(sq(t, "e2")) {
		t.Errorf("e2-e4 not applied:\n%s", b)
	}
	if s.SideToMove() != board.Black {
		t.Errorf("SideToMove() = %v, want Black", s.SideToMove())
	}
	if got := s.Status(); got != "Black to move" {
		t.Errorf("Status() = %q", got)
	}

	play(t, s, "e7e5")
	if s.SideToMove() != board.White {
		t.Errorf("SideToMove() = %v, want White", s.SideToMove())
	}

	want := []string{"W: Pe2-e4", "B: Pe7-e5"}
	if diff := cmp.Diff(want, logLines(s)); diff != "" {
		t.Errorf("move log mismatch (-want +got):\n%s", diff)
	}
	if last, ok := s.LastMove(); !ok || last.Move().String() != "e7e5" {
		t.Errorf("LastMove() = %v, %v", last, ok)
	}
}

func TestSelectIgnoresOpponentAndImmobilePieces(t *testing.T) {
	s := quietSession(t)

	tests := []struct {
		name string
		sq   string
	}{
		{"opponent pawn", "e7"},
		{"empty square", "e4"},
		{"rook with no moves", "a1"},
		{"king with no moves", "e1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Select(sq(t, tc.sq)); got != Ignored {
				t.Errorf("Select(%s) = %v, want ignored", tc.sq, got)
			}
			if s.Selected() != board.NoSquare || s.State() != AwaitingSelection {
				t.Errorf("selection changed: %v in %v", s.Selected(), s.State())
			}
		})
	}
}

func TestReselection(t *testing.T) {
	s := quietSession(t)
	s.Select(sq(t, "e2"))

	if got := s.Select(sq(t, "g1")); got != Selected {
		t.Fatalf("Select(g1) = %v, want selected", got)
	}
	if s.Selected() != sq(t, "g1") {
		t.Errorf("Selected() = %v, want g1", s.Selected())
	}
	want := []board.Square{sq(t, "f3"), sq(t, "h3")}
	if diff := cmp.Diff(want, s.Targets().Squares()); diff != "" {
		t.Errorf("Targets() mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidTargetClearsSelection(t *testing.T) {
	for _, target := range []string{"e5", "e7", "a1"} {
		s := quietSession(t)
		s.Select(sq(t, "e2"))

		if got := s.Select(sq(t, target)); got != Cleared {
			t.Errorf("Select(%s) = %v, want cleared", target, got)
		}
		if s.Selected() != board.NoSquare || !s.Targets().Empty() {
			t.Errorf("%s: selection not cleared", target)
		}
		if s.State() != AwaitingSelection || s.SideToMove() != board.White {
			t.Errorf("%s: state %v, side %v", target, s.State(), s.SideToMove())
		}
		if len(s.History()) != 0 {
			t.Errorf("%s: a move was recorded", target)
		}
	}
}

func TestFoolsMate(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s := NewSession(WithLogger(logger))

	play(t, s, "f2f3", "e7e5", "g2g4", "d8h4")

	if s.State() != Checkmate {
		t.Fatalf("State() = %v, want checkmate", s.State())
	}
	if got := s.Result(); got.Winner != board.Black || !got.Over() {
		t.Errorf("Result() = %+v, want Black wins", got)
	}
	if got := s.Status(); got != "Checkmate. Black wins. Press Reset." {
		t.Errorf("Status() = %q", got)
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Message != "game over" || entry.Level != logrus.InfoLevel {
		t.Fatalf("last log entry = %+v, want game over at info", entry)
	}
	if entry.Data["moves"] != 4 {
		t.Errorf("logged moves = %v, want 4", entry.Data["moves"])
	}
}

func TestTerminalStateIgnoresInput(t *testing.T) {
	s := quietSession(t)
	play(t, s, "f2f3", "e7e5", "g2g4", "d8h4")
	before := *s.Board()

	for _, name := range []string{"a2", "e1", "h4", "e8"} {
		if got := s.Select(sq(t, name)); got != Ignored {
			t.Errorf("Select(%s) after mate = %v, want ignored", name, got)
		}
	}
	if _, err := s.Move(sq(t, "a2"), sq(t, "a3")); !errors.Is(err, ErrGameOver) {
		t.Errorf("Move after mate: err = %v, want ErrGameOver", err)
	}
	if *s.Board() != before || len(s.History()) != 4 {
		t.Error("terminal session was modified")
	}

	s.Reset()
	if s.State() != AwaitingSelection || s.SideToMove() != board.White {
		t.Errorf("after Reset: state %v, side %v", s.State(), s.SideToMove())
	}
	if len(s.History()) != 0 || *s.Board() != *board.NewBoard() {
		t.Error("Reset did not restore the starting position")
	}
	if s.Result() != InProgress {
		t.Errorf("Result() after Reset = %v", s.Result())
	}
}

func TestStalemate(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s, err := NewSessionFromFEN("k7/8/1Q6/8/8/8/8/7K w - - 0 1", WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Move(sq(t, "b6"), sq(t, "c7")); err != nil {
		t.Fatalf("Move(b6, c7): %v", err)
	}
	if s.State() != Stalemate {
		t.Fatalf("State() = %v, want stalemate", s.State())
	}
	if got := s.Result(); got.Winner != board.NoColor {
		t.Errorf("Result().Winner = %v, want none", got.Winner)
	}
	if got := s.Status(); got != "Stalemate. Press Reset." {
		t.Errorf("Status() = %q", got)
	}
}

func TestCheckStatus(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s, err := NewSessionFromFEN("4k3/8/8/8/8/8/8/4K2R w - - 0 1", WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Move(sq(t, "h1"), sq(t, "h8")); err != nil {
		t.Fatalf("Move(h1, h8): %v", err)
	}
	if !s.InCheck() || s.State() != AwaitingSelection {
		t.Fatalf("InCheck() = %v, State() = %v", s.InCheck(), s.State())
	}
	if got := s.Status(); got != "Black to move · in check" {
		t.Errorf("Status() = %q", got)
	}

	// The king cannot step along the checking rank behind itself.
	s.Select(sq(t, "e8"))
	if s.Targets().Has(sq(t, "d8")) || s.Targets().Has(sq(t, "f8")) {
		t.Errorf("king targets %v include a rank-8 square", s.Targets())
	}
}

func TestMoveErrors(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     error
	}{
		{"empty origin", "e4", "e5", ErrNoPiece},
		{"opponent piece", "e7", "e5", ErrWrongSide},
		{"illegal destination", "e2", "e5", ErrIllegalMove},
		{"own piece on destination", "a1", "a2", ErrIllegalMove},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := quietSession(t)
			s.Select(sq(t, "g1"))

			_, err := s.Move(sq(t, tc.from), sq(t, tc.to))
			if !errors.Is(err, tc.want) {
				t.Errorf("Move(%s, %s) err = %v, want %v", tc.from, tc.to, err, tc.want)
			}
			if s.Selected() != board.NoSquare {
				t.Error("rejected move left a selection")
			}
			if len(s.History()) != 0 || s.SideToMove() != board.White {
				t.Error("rejected move changed the game")
			}
		})
	}
}

func TestPromotionThroughSession(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s, err := NewSessionFromFEN("8/4P3/8/8/8/8/k7/4K3 w - - 0 1", WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}

	play(t, s, "e7e8")

	if got := s.Board().PieceAt(sq(t, "e8")); got != board.WhiteQueen {
		t.Errorf("e8 = %v, want white queen", got)
	}
	if diff := cmp.Diff([]string{"W: Pe7-e8=Q"}, logLines(s)); diff != "" {
		t.Errorf("move log mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSessionFromFEN(t *testing.T) {
	logger, _ := test.NewNullLogger()

	s, err := NewSessionFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3", WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != Checkmate || s.Result().Winner != board.Black {
		t.Errorf("mated position: state %v, result %v", s.State(), s.Result())
	}

	if _, err := NewSessionFromFEN("not a fen", WithLogger(logger)); !errors.Is(err, board.ErrInvalidFEN) {
		t.Errorf("invalid FEN err = %v, want ErrInvalidFEN", err)
	}
}

func TestHistoryIsACopy(t *testing.T) {
	s := quietSession(t)
	play(t, s, "d2d4")

	h := s.History()
	h[0].To = board.A1
	if got := s.History()[0].To; got != sq(t, "d4") {
		t.Errorf("History() shares storage: To = %v", got)
	}

	b := s.Board()
	b.Put(sq(t, "d4"), board.NoPiece)
	if s.Board().IsEmpty(sq(t, "d4")) {
		t.Error("Board() shares storage with the session")
	}
}
