package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/hailam/hotseat/internal/board"
	"github.com/hailam/hotseat/internal/game"
	"github.com/hailam/hotseat/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640 // Match board height to eliminate unused space
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// Options override stored preferences for one run. Nil fields keep the
// stored value.
type Options struct {
	DataDir string // "" means the default data directory
	Flip    *bool
	Light   *bool
	Mute    *bool
	Logger  logrus.FieldLogger
}

// Game implements ebiten.Game interface.
type Game struct {
	log     logrus.FieldLogger
	session *game.Session

	// Board interaction
	dragging   bool
	dragSquare board.Square
	focus      board.Square
	showFocus  bool
	recorded   bool // result of the finished game already counted

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences
	tally   *storage.Tally

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	// Modals
	settingsModal *SettingsModal
	menu          *StartMenu

	// HiDPI scaling
	scale float64
}

// NewGame creates a new hot-seat game.
func NewGame(opts Options) *Game {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	g := &Game{
		log:        log,
		session:    game.NewSession(game.WithLogger(log)),
		dragSquare: board.NoSquare,
		focus:      board.NewSquare(6, 4),
		renderer:   NewRenderer(BoardSize, SquareSize),
		input:      NewInputHandler(),
		feedback:   NewFeedbackManager(),
		scale:      1.0,
	}

	var err error
	g.storage, err = storage.Open(opts.DataDir)
	if err != nil {
		log.WithError(err).Warn("storage unavailable, settings will not be saved")
	}

	g.loadPreferences()
	if opts.Flip != nil {
		g.prefs.Flipped = *opts.Flip
	}
	if opts.Light != nil {
		g.prefs.Theme = storage.ThemeDark
		if *opts.Light {
			g.prefs.Theme = storage.ThemeLight
		}
	}
	if opts.Mute != nil {
		g.prefs.SoundEnabled = !*opts.Mute
	}
	g.applyPreferences()

	g.panel = NewPanel(g)
	g.settingsModal = NewSettingsModal()
	g.menu = NewStartMenu()

	g.checkFirstLaunch()

	return g
}

// loadPreferences loads user preferences and the results tally from storage.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	g.tally = &storage.Tally{}
	if g.storage == nil {
		return
	}

	prefs, err := g.storage.LoadPreferences()
	if err != nil {
		g.log.WithError(err).Warn("failed to load preferences")
	} else {
		g.prefs = prefs
	}

	tally, err := g.storage.LoadTally()
	if err != nil {
		g.log.WithError(err).Warn("failed to load results tally")
	} else {
		g.tally = tally
	}
}

// applyPreferences pushes the current preferences into the UI components.
func (g *Game) applyPreferences() {
	theme = ThemeFor(g.prefs.Theme)
	g.renderer.SetFlipped(g.prefs.Flipped)
	g.renderer.SetShowCoordinates(g.prefs.ShowCoordinates)
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
}

// savePreferences stores the current preferences.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		g.log.WithError(err).Warn("failed to save preferences")
	}
}

// checkFirstLaunch opens the start menu, on the instructions the first time.
func (g *Game) checkFirstLaunch() {
	section := sectionAbout
	if g.storage != nil {
		isFirst, err := g.storage.IsFirstLaunch()
		if err != nil {
			g.log.WithError(err).Warn("failed to check first launch")
		}
		if isFirst {
			section = sectionInstructions
		}
	}

	g.menu.Show(section, g.tally, func() {
		if g.storage == nil {
			return
		}
		if err := g.storage.MarkFirstLaunchComplete(); err != nil {
			g.log.WithError(err).Warn("failed to mark first launch complete")
		}
	})
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	// Modals block other input
	if g.menu.Update(g.input) || g.settingsModal.Update(g.input) {
		g.cancelDrag()
		g.updateCursor()
		return nil
	}

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	if IsKeyJustPressed(ebiten.KeyR) {
		g.ResetAction()
	}

	g.handleKeyboardInput()
	g.handleBoardInput()
	g.updateCursor()

	return nil
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	var anyHovered bool
	switch {
	case g.menu.IsVisible():
		anyHovered = g.menu.AnyButtonHovered()
	case g.settingsModal.IsVisible():
		anyHovered = g.settingsModal.AnyButtonHovered()
	default:
		anyHovered = g.panel.AnyButtonHovered() || g.hoveringMovablePiece()
	}

	if anyHovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// hoveringMovablePiece reports whether the mouse is over a piece or target
// the current player can click.
func (g *Game) hoveringMovablePiece() bool {
	mx, my := g.input.MousePosition()
	sq := g.renderer.ScreenToSquare(mx, my)
	if sq == board.NoSquare || g.session.State().Terminal() {
		return false
	}
	return g.session.Board().PieceAt(sq).Is(g.session.SideToMove()) || g.session.Targets().Has(sq)
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(theme.Background)

	b := g.session.Board()
	g.renderer.DrawBoard(screen)

	if ksq := b.KingSquare(g.session.SideToMove()); g.session.InCheck() && ksq != board.NoSquare {
		g.renderer.DrawCheck(screen, ksq)
	}

	var last *board.MoveRecord
	if rec, ok := g.session.LastMove(); ok {
		last = &rec
	}
	g.renderer.DrawHighlights(screen, b, g.session.Selected(), g.session.Targets(), last)

	if g.showFocus {
		g.renderer.DrawFocus(screen, g.focus)
	}

	dragSquare := board.NoSquare
	if g.dragging {
		dragSquare = g.dragSquare
	}
	g.renderer.DrawPiecesWithAnimations(screen, b, dragSquare, g.feedback.Animations())

	if g.dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, b.PieceAt(g.dragSquare), mx, my)
	}

	g.feedback.Draw(screen, g.renderer)
	g.panel.Draw(screen)

	g.settingsModal.Draw(screen)
	g.menu.Draw(screen)
}

// Layout returns the game's screen dimensions.
// Width is dynamic based on panel collapsed state.
// Uses device scale factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	if g.panel != nil && g.panel.Collapsed() {
		return scaleI(BoardSize + CollapsedWidth), scaleI(ScreenHeight)
	}
	return scaleI(ScreenWidth), scaleI(ScreenHeight)
}

// handleKeyboardInput moves the focus cursor with the arrow keys and treats
// Enter or Space as a click on the focused square.
func (g *Game) handleKeyboardInput() {
	key := g.input.Key()
	if key == KeyNone || g.session.State().Terminal() {
		return
	}

	if !g.showFocus {
		g.showFocus = true
		if key != KeyActivate {
			return
		}
	}

	switch key {
	case KeyUp:
		g.focus = g.renderer.Step(g.focus, 0, -1)
	case KeyDown:
		g.focus = g.renderer.Step(g.focus, 0, 1)
	case KeyLeft:
		g.focus = g.renderer.Step(g.focus, -1, 0)
	case KeyRight:
		g.focus = g.renderer.Step(g.focus, 1, 0)
	case KeyActivate:
		g.selectSquare(g.focus)
	}
}

// handleBoardInput processes mouse interactions with the board.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()

	if g.input.IsLeftJustPressed() {
		sq := g.renderer.ScreenToSquare(mx, my)
		if sq == board.NoSquare {
			return
		}
		g.showFocus = false
		g.focus = sq

		if g.selectSquare(sq) == game.Selected {
			g.dragging = true
			g.dragSquare = sq
		}
		return
	}

	if g.dragging && g.input.IsLeftJustReleased() {
		from := g.dragSquare
		g.cancelDrag()

		to := g.renderer.ScreenToSquare(mx, my)
		if to == board.NoSquare || to == from {
			// Dropped back in place: the click-to-select stands.
			return
		}
		g.selectSquare(to)
	}
}

// selectSquare forwards a click on sq to the session and reacts to what it
// did: sound and toasts for moves, a shake for rejected ones.
func (g *Game) selectSquare(sq board.Square) game.Outcome {
	before := g.session.Board()
	side := g.session.SideToMove()
	from := g.session.Selected()

	outcome := g.session.Select(sq)
	switch outcome {
	case game.Moved:
		rec, _ := g.session.LastMove()
		g.feedback.OnMoveMade(rec, g.session)
		g.recordResult()
	case game.Cleared:
		if before.PieceAt(sq).Is(side) {
			g.feedback.OnInvalidMove(sq, board.NoSquare, ReasonNoLegalMoves)
		} else {
			g.feedback.OnInvalidMove(from, sq, invalidMoveReason(before, side, from, sq))
		}
	case game.Ignored:
		if !g.session.State().Terminal() && before.PieceAt(sq).Is(side) {
			g.feedback.OnInvalidMove(sq, board.NoSquare, ReasonNoLegalMoves)
		}
	}
	return outcome
}

func (g *Game) cancelDrag() {
	g.dragging = false
	g.dragSquare = board.NoSquare
}

// recordResult adds a finished game to the stored tally, once per game.
func (g *Game) recordResult() {
	outcome, ok := tallyOutcome(g.session.Result())
	if !ok || g.recorded {
		return
	}
	g.recorded = true

	if g.storage == nil {
		g.tally.Add(outcome)
		return
	}
	tally, err := g.storage.RecordResult(outcome)
	if err != nil {
		g.log.WithError(err).Warn("failed to record result")
		g.tally.Add(outcome)
		return
	}
	g.tally = tally
}

// tallyOutcome maps a finished game's result to its tally bucket.
func tallyOutcome(r game.Result) (storage.Outcome, bool) {
	switch {
	case r.State == game.Stalemate:
		return storage.Stalemate, true
	case r.State == game.Checkmate && r.Winner == board.White:
		return storage.WhiteWins, true
	case r.State == game.Checkmate && r.Winner == board.Black:
		return storage.BlackWins, true
	}
	return 0, false
}

// ResetAction starts a new game from the initial position.
func (g *Game) ResetAction() {
	g.session.Reset()
	g.cancelDrag()
	g.recorded = false
	g.focus = board.NewSquare(6, 4)
	if g.prefs.Flipped {
		g.focus = board.NewSquare(1, 4)
	}
	g.feedback.Reset()
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.settingsModal.Show(g.prefs, func(prefs *storage.UserPreferences) {
		g.prefs = prefs
		g.applyPreferences()
		g.savePreferences()
	})
}

// ShowMenu opens the start menu on the About section.
func (g *Game) ShowMenu() {
	g.menu.Show(sectionAbout, g.tally, nil)
}

// ToggleFlip turns the board around and stores the choice.
func (g *Game) ToggleFlip() {
	g.prefs.Flipped = !g.prefs.Flipped
	g.applyPreferences()
	g.savePreferences()
}

// ToggleTheme switches between the dark and light themes.
func (g *Game) ToggleTheme() {
	if g.prefs.Theme == storage.ThemeLight {
		g.prefs.Theme = storage.ThemeDark
	} else {
		g.prefs.Theme = storage.ThemeLight
	}
	g.applyPreferences()
	g.savePreferences()
}

// IsLightTheme reports whether the light theme is active.
func (g *Game) IsLightTheme() bool {
	return g.prefs.Theme == storage.ThemeLight
}

// Session returns the game being played.
func (g *Game) Session() *game.Session {
	return g.session
}

// Close saves the preferences, stamping the last-played time, and
// releases storage.
func (g *Game) Close() {
	if g.storage == nil {
		return
	}
	g.savePreferences()
	if err := g.storage.Close(); err != nil {
		g.log.WithError(err).Warn("failed to close storage")
	}
}
