package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/hotseat/internal/board"
)

// Renderer handles all drawing operations on the board.
type Renderer struct {
	sprites   *SpriteManager
	geo       geometry
	boardSize int
	showCoord bool
	scale     float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:   NewSpriteManager(squareSize),
		geo:       geometry{squareSize: squareSize},
		boardSize: boardSize,
		showCoord: true,
		scale:     1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// SetFlipped turns the board so Black is at the bottom.
func (r *Renderer) SetFlipped(flipped bool) {
	r.geo.flipped = flipped
}

// Flipped reports whether Black is drawn at the bottom.
func (r *Renderer) Flipped() bool {
	return r.geo.flipped
}

// SetShowCoordinates toggles the file and rank labels.
func (r *Renderer) SetShowCoordinates(show bool) {
	r.showCoord = show
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the squares and, if enabled, the coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := r.s(r.geo.squareSize)
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		x, y := r.geo.squareOrigin(sq)
		c := theme.LightSquare
		if (sq.Row()+sq.File())%2 == 1 {
			c = theme.DarkSquare
		}
		vector.DrawFilledRect(screen, r.s(x), r.s(y), size, size, c, false)
	}

	if r.showCoord {
		r.drawCoordinates(screen)
	}
}

// drawCoordinates labels files along the bottom edge and ranks along the
// left edge, in the contrasting square color.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	f := GetFaceWithSize(coordFontSize)
	ss := r.geo.squareSize
	for i := 0; i < 8; i++ {
		fileSq := r.geo.squareAt(i*ss+1, r.boardSize-1)
		rankSq := r.geo.squareAt(1, i*ss+1)

		drawText(screen, string(rune('a'+fileSq.File())), f,
			i*ss+ss-10, r.boardSize-16, r.labelColor(fileSq))
		drawText(screen, string(rune('0'+rankSq.Rank())), f,
			3, i*ss+2, r.labelColor(rankSq))
	}
}

func (r *Renderer) labelColor(sq board.Square) color.RGBA {
	if (sq.Row()+sq.File())%2 == 1 {
		return theme.LightSquare
	}
	return theme.DarkSquare
}

// DrawHighlights draws the last move, the selection and its targets. Quiet
// targets get a dot; targets holding an enemy piece get a ring.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, b *board.Board, selected board.Square, targets board.SquareSet, last *board.MoveRecord) {
	if last != nil {
		r.highlightSquare(screen, last.From, theme.LastMoveColor)
		r.highlightSquare(screen, last.To, theme.LastMoveColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, theme.SelectedSquare)
	}

	targets.ForEach(func(sq board.Square) {
		if b.IsEmpty(sq) {
			r.drawTargetDot(screen, sq)
		} else {
			r.drawCaptureRing(screen, sq)
		}
	})
}

// DrawCheck highlights the king's square if in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square) {
	if kingSq != board.NoSquare {
		r.highlightSquare(screen, kingSq, theme.CheckColor)
	}
}

// DrawFocus outlines the keyboard cursor square.
func (r *Renderer) DrawFocus(screen *ebiten.Image, sq board.Square) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.geo.squareOrigin(sq)
	inset := 2
	size := r.geo.squareSize - inset*2
	vector.StrokeRect(screen, r.s(x+inset), r.s(y+inset), r.s(size), r.s(size), r.sf(3), theme.FocusColor, false)
}

func (r *Renderer) sf(v float32) float32 {
	return v * float32(r.scale)
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.geo.squareOrigin(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.geo.squareSize), r.s(r.geo.squareSize), c, false)
}

func (r *Renderer) squareCenter(sq board.Square) (float32, float32) {
	x, y := r.geo.squareOrigin(sq)
	half := r.geo.squareSize / 2
	return r.s(x + half), r.s(y + half)
}

func (r *Renderer) drawTargetDot(screen *ebiten.Image, sq board.Square) {
	cx, cy := r.squareCenter(sq)
	radius := r.s(r.geo.squareSize) * 0.15
	vector.DrawFilledCircle(screen, cx, cy, radius, theme.TargetColor, true)
}

func (r *Renderer) drawCaptureRing(screen *ebiten.Image, sq board.Square) {
	cx, cy := r.squareCenter(sq)
	width := r.s(r.geo.squareSize) * 0.08
	radius := r.s(r.geo.squareSize)/2 - width/2
	vector.StrokeCircle(screen, cx, cy, radius, width, theme.TargetColor, true)
}

// DrawPiecesWithAnimations draws all pieces with optional shake animations,
// skipping the square being dragged.
func (r *Renderer) DrawPiecesWithAnimations(screen *ebiten.Image, b *board.Board, dragSquare board.Square, anims *AnimationManager) {
	for sq := board.Square(0); sq < board.NoSquare; sq++ {
		if sq == dragSquare {
			continue
		}

		piece := b.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}

		x, y := r.geo.squareOrigin(sq)

		if anims != nil {
			offsetX, offsetY := anims.GetShakeOffset(sq)
			x += int(offsetX)
			y += int(offsetY)
		}

		r.sprites.DrawPieceAt(screen, piece, int(r.s(x)), int(r.s(y)))
	}
}

// DrawDraggedPiece draws the piece being dragged at the mouse position.
// mouseX, mouseY are in logical coordinates (will be scaled for drawing).
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, piece board.Piece, mouseX, mouseY int) {
	if piece == board.NoPiece {
		return
	}

	halfSize := int(r.s(r.geo.squareSize)) / 2
	x := int(r.s(mouseX)) - halfSize
	y := int(r.s(mouseY)) - halfSize

	r.sprites.DrawPieceAt(screen, piece, x, y)
}

// SquareToScreen converts a board square to logical screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	return r.geo.squareOrigin(sq)
}

// ScreenToSquare converts logical screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	return r.geo.squareAt(x, y)
}

// Step moves a keyboard cursor one cell in screen directions.
func (r *Renderer) Step(sq board.Square, dx, dy int) board.Square {
	return r.geo.step(sq, dx, dy)
}

// SquareSize returns the size of one square in logical pixels.
func (r *Renderer) SquareSize() int {
	return r.geo.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return theme
}
