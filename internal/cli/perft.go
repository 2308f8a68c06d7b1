package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hailam/hotseat/internal/board"
)

// spinner character set used while counting
const spin = 11

// hotseat perft
func Perft() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Count the positions reachable in a number of moves",
		Long: heredoc.Doc(`perft walks the move tree of a position to the given depth
			and prints the number of leaf positions. Counts follow the
			simplified rules, so they differ from standard perft tables
			wherever castling, en passant or under-promotion would apply.

			--divide prints the count below each first move as well.
			--profile writes a CPU profile into the given directory.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fen, _ := cmd.Flags().GetString("fen")
			depth, _ := cmd.Flags().GetInt("depth")
			divide, _ := cmd.Flags().GetBool("divide")
			dir, _ := cmd.Flags().GetString("profile")

			if depth < 1 {
				return fmt.Errorf("perft: depth must be at least 1, got %d", depth)
			}

			b, side, err := board.ParseFEN(fen)
			if err != nil {
				return err
			}

			if dir != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
			}

			s := spinner.New(spinner.CharSets[spin], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			s.Suffix = fmt.Sprintf(" counting to depth %d", depth)
			s.Start() // Start the ~working~ spinner.

			start := time.Now()
			var nodes int64
			var split map[board.Move]int64
			if divide {
				split = board.Divide(b, side, depth)
				for _, n := range split {
					nodes += n
				}
			} else {
				nodes = board.Perft(b, side, depth)
			}
			elapsed := time.Since(start)

			s.Stop() // Stop the ~working~ spinner.

			logrus.WithFields(logrus.Fields{
				"depth":   depth,
				"nodes":   nodes,
				"elapsed": elapsed,
			}).Debug("perft finished")

			out := cmd.OutOrStdout()
			if divide {
				for _, m := range b.LegalMoves(side) {
					fmt.Fprintf(out, "%v-%v: %d\n", m.From, m.To, split[m])
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, nodes)
			return nil
		},
	}

	cmd.Flags().String("fen", board.StartFEN, "Position to count from")
	cmd.Flags().IntP("depth", "d", 3, "Number of plies to search")
	cmd.Flags().Bool("divide", false, "Show the count below each first move")
	cmd.Flags().String("profile", "", "Write a CPU profile into this directory")
	return cmd
}
