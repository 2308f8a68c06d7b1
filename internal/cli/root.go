// Package cli holds the hotseat command tree: the root command opens the
// game window, the subcommands inspect positions from the terminal.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hailam/hotseat/internal/ui"
)

// Root returns the hotseat command.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "hotseat",
		Short: "Two-player chess on one screen",
		Long: heredoc.Doc(`hotseat opens a chess board for two people sharing one
			computer. White and Black take turns with the mouse or the
			keyboard; the game ends on checkmate or stalemate.

			The rules are simplified: there is no castling and no en
			passant, and a pawn reaching the last rank always becomes a
			queen.

			Preferences chosen in the settings window are remembered.
			The flags below override them for this run only.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(gameOptions(cmd))
		},
	}

	// global flags
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.Flags().String("data-dir", "", "Directory for preferences and results")
	root.Flags().Bool("flip", false, "Draw Black at the bottom of the board")
	root.Flags().Bool("light", false, "Use the light theme")
	root.Flags().Bool("mute", false, "Turn sound effects off")

	root.AddCommand(Moves())
	root.AddCommand(Perft())

	return root
}

// gameOptions collects the flags the user actually set; the rest fall back
// to stored preferences.
func gameOptions(cmd *cobra.Command) ui.Options {
	opts := ui.Options{Logger: logrus.StandardLogger()}
	opts.DataDir, _ = cmd.Flags().GetString("data-dir")
	opts.Flip = changedBool(cmd, "flip")
	opts.Light = changedBool(cmd, "light")
	opts.Mute = changedBool(cmd, "mute")
	return opts
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func play(opts ui.Options) error {
	game := ui.NewGame(opts)
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Hotseat")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(game)
}
