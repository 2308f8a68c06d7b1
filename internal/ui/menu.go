package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/hotseat/internal/storage"
)

// Start menu dimensions
const (
	MenuWidth  = 440
	MenuHeight = 470
	MenuPadX   = 28
	MenuPadY   = 24
)

// Menu sections
const (
	sectionAbout = iota
	sectionInstructions
)

const aboutText = `Hotseat is chess for two players
sharing one screen. Take turns
moving; the board enforces the rules.

This version plays a reduced game:
no castling, no en passant, and a
pawn reaching the last rank always
becomes a queen.`

const instructionsText = `Click one of your pieces to select it.
Dots mark the squares it can move to;
rings mark pieces it can capture.
Click a marked square to move, or drag.

Keyboard: arrow keys move the cursor,
Enter or Space acts as a click.

The game ends on checkmate or
stalemate. Press Reset to start over.`

// StartMenu is shown at launch with Play, About and Instructions.
type StartMenu struct {
	visible bool

	x, y int

	tabs    *ButtonGroup
	playBtn *ModalButton

	tally *storage.Tally

	onPlay func()
}

// NewStartMenu creates a new start menu.
func NewStartMenu() *StartMenu {
	m := &StartMenu{
		x: (ScreenWidth - MenuWidth) / 2,
		y: (ScreenHeight - MenuHeight) / 2,
	}

	contentX := m.x + MenuPadX
	contentW := MenuWidth - MenuPadX*2
	m.tabs = NewButtonGroup(contentX, m.y+96, []string{"About", "Instructions"}, sectionAbout, contentW/2, 32)

	btnW, btnH := 160, 44
	m.playBtn = NewModalButton(m.x+(MenuWidth-btnW)/2, m.y+MenuHeight-MenuPadY-btnH, btnW, btnH, "Play", true, m.handlePlay)
	return m
}

// Show opens the menu on the given section. The tally, if non-nil, is
// listed under About.
func (m *StartMenu) Show(section int, tally *storage.Tally, onPlay func()) {
	m.visible = true
	m.tabs.Selected = section
	m.tally = tally
	m.onPlay = onPlay
}

// Hide closes the menu.
func (m *StartMenu) Hide() {
	m.visible = false
}

// IsVisible returns true if the menu is visible.
func (m *StartMenu) IsVisible() bool {
	return m.visible
}

func (m *StartMenu) handlePlay() {
	m.Hide()
	if m.onPlay != nil {
		m.onPlay()
	}
}

// Update handles input for the menu, which consumes all input while visible.
func (m *StartMenu) Update(input *InputHandler) bool {
	if !m.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEnter) {
		m.handlePlay()
		return true
	}

	m.tabs.Update(input)
	m.playBtn.Update(input)
	return true
}

// AnyButtonHovered returns true if any button in the menu is hovered.
func (m *StartMenu) AnyButtonHovered() bool {
	if !m.visible {
		return false
	}
	return m.playBtn.IsHovered() || m.tabs.hovered >= 0
}

// Draw renders the menu.
func (m *StartMenu) Draw(screen *ebiten.Image) {
	if !m.visible {
		return
	}

	drawModalFrame(screen, m.x, m.y, MenuWidth, MenuHeight, "HOTSEAT CHESS")
	drawTextCentered(screen, "Two players, one board", GetRegularFace(), m.x+MenuWidth/2, m.y+66, theme.TextSecondary)

	m.tabs.Draw(screen)

	body := instructionsText
	if m.tabs.Selected == sectionAbout {
		body = aboutText + "\n\n" + tallyText(m.tally)
	}
	drawText(screen, body, GetRegularFace(), m.x+MenuPadX, m.tabs.Y+m.tabs.ButtonH+18, theme.TextPrimary)

	m.playBtn.Draw(screen)
}

// tallyText formats the results of completed games on this device.
func tallyText(t *storage.Tally) string {
	if t == nil || t.GamesPlayed == 0 {
		return "No games finished yet."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games finished: %d\n", t.GamesPlayed)
	fmt.Fprintf(&sb, "White wins %d · Black wins %d · Stalemates %d", t.WhiteWins, t.BlackWins, t.Stalemates)
	return sb.String()
}
