package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/hailam/hotseat/internal/board"
)

// hotseat moves
func Moves() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves [square]",
		Short: "List the legal moves of a position",
		Long: heredoc.Doc(`moves prints every legal move for the side to move in the
			given position, one per line in from-to form (e2-e4).

			With a square argument only the moves of the piece on that
			square are listed.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fen, _ := cmd.Flags().GetString("fen")
			b, side, err := board.ParseFEN(fen)
			if err != nil {
				return err
			}

			var moves []board.Move
			if len(args) == 1 {
				sq, err := board.ParseSquare(args[0])
				if err != nil {
					return err
				}
				b.LegalMovesFrom(sq, side).ForEach(func(to board.Square) {
					moves = append(moves, board.NewMove(sq, to))
				})
			} else {
				moves = b.LegalMoves(side)
			}

			out := cmd.OutOrStdout()
			for _, m := range moves {
				fmt.Fprintf(out, "%v-%v\n", m.From, m.To)
			}
			return nil
		},
	}

	cmd.Flags().String("fen", board.StartFEN, "Position to list moves for")
	return cmd
}
