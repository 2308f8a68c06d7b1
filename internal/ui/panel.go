package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/hotseat/internal/game"
)

// Panel dimensions
const (
	PanelPadding    = 20
	SectionSpacing  = 24
	ButtonHeight    = 40
	SmallButtonH    = 34
	CollapsedWidth  = 20
	CollapseButtonW = 16
	CollapseButtonH = 48
	SectionLabelH   = 20
	MoveRowHeight   = 22
	StatusBarHeight = 70
)

// Panel is the side panel with controls, the status line and the move log.
type Panel struct {
	game      *Game
	collapsed bool

	collapseBtn *ModalButton
	resetBtn    *ModalButton
	settingsBtn *ModalButton
	menuBtn     *ModalButton
	flipBtn     *ModalButton
	themeBtn    *ModalButton

	// Move log scroll
	scrollY    int
	maxScrollY int
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

func (p *Panel) buttons() []*ModalButton {
	return []*ModalButton{p.resetBtn, p.settingsBtn, p.menuBtn, p.flipBtn, p.themeBtn}
}

// createButtons lays out the panel controls.
func (p *Panel) createButtons() {
	tabY := (ScreenHeight - CollapseButtonH) / 2
	collapseX := BoardSize
	if p.collapsed {
		collapseX = BoardSize + 2
	}
	p.collapseBtn = NewModalButton(collapseX, tabY, CollapseButtonW, CollapseButtonH, "", false, p.toggleCollapse)

	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2
	halfW := (contentW - 8) / 2

	y := PanelPadding + 8
	p.resetBtn = NewModalButton(contentX, y, contentW, ButtonHeight, "Reset", true, p.game.ResetAction)

	y += ButtonHeight + 8
	p.settingsBtn = NewModalButton(contentX, y, halfW, SmallButtonH, "Settings", false, p.game.ShowSettings)
	p.menuBtn = NewModalButton(contentX+halfW+8, y, halfW, SmallButtonH, "Menu", false, p.game.ShowMenu)

	y += SmallButtonH + 8
	p.flipBtn = NewModalButton(contentX, y, halfW, SmallButtonH, "Flip board", false, p.game.ToggleFlip)
	p.themeBtn = NewModalButton(contentX+halfW+8, y, halfW, SmallButtonH, "", false, p.game.ToggleTheme)
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	if p.collapseBtn.Update(input) {
		return true
	}
	if p.collapsed {
		return false
	}

	mx, my := input.MousePosition()
	if wheel := input.WheelY(); wheel != 0 && mx >= BoardSize && my >= p.historyStartY() && my < ScreenHeight-StatusBarHeight {
		p.scrollY -= int(wheel * 30)
		p.clampScroll()
	}

	for _, btn := range p.buttons() {
		if btn.Update(input) {
			return true
		}
	}
	return false
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	if p.collapseBtn.IsHovered() {
		return true
	}
	if p.collapsed {
		return false
	}
	for _, btn := range p.buttons() {
		if btn.IsHovered() {
			return true
		}
	}
	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.collapsed {
		fillRect(screen, BoardSize, 0, CollapsedWidth, ScreenHeight, theme.PanelBg)
		p.drawCollapseButton(screen, true)
		return
	}

	fillRect(screen, BoardSize, 0, PanelWidth, ScreenHeight, theme.PanelBg)
	p.drawCollapseButton(screen, false)

	if p.game.IsLightTheme() {
		p.themeBtn.Label = "Dark mode"
	} else {
		p.themeBtn.Label = "Light mode"
	}
	for _, btn := range p.buttons() {
		btn.Draw(screen)
	}

	historyY := p.historyStartY()
	DrawSectionHeader(screen, "Moves", BoardSize+PanelPadding, historyY)
	p.drawMoveLog(screen, historyY+SectionLabelH+4)

	p.drawStatusBar(screen)
}

func (p *Panel) historyStartY() int {
	return p.flipBtn.Y + p.flipBtn.H + SectionSpacing
}

func (p *Panel) drawCollapseButton(screen *ebiten.Image, expand bool) {
	btn := p.collapseBtn

	bg := theme.PanelBg
	fg := theme.TextMuted
	if btn.IsHovered() {
		bg, fg = theme.SectionBg, theme.TextPrimary
	}
	fillRect(screen, btn.X, btn.Y, btn.W, btn.H, bg)

	arrow := "‹"
	if expand {
		arrow = "›"
	}
	drawTextCentered(screen, arrow, GetRegularFace(), btn.X+btn.W/2, btn.Y+btn.H/2, fg)
}

func (p *Panel) clampScroll() {
	if p.scrollY > p.maxScrollY {
		p.scrollY = p.maxScrollY
	}
	if p.scrollY < 0 {
		p.scrollY = 0
	}
}

// drawMoveLog lists the moves one per line, "W: Pe2-e4" style, scrolled so
// the newest move stays visible unless the user scrolled up.
func (p *Panel) drawMoveLog(screen *ebiten.Image, startY int) {
	history := p.game.Session().History()
	x := BoardSize + PanelPadding
	f := GetRegularFace()

	if len(history) == 0 {
		drawText(screen, "No moves yet", f, x, startY+5, theme.TextMuted)
		p.scrollY, p.maxScrollY = 0, 0
		return
	}

	maxY := ScreenHeight - StatusBarHeight - 10
	visibleHeight := maxY - startY
	contentHeight := len(history) * MoveRowHeight

	atBottom := p.scrollY >= p.maxScrollY
	p.maxScrollY = max(contentHeight-visibleHeight, 0)
	if atBottom {
		p.scrollY = p.maxScrollY
	}
	p.clampScroll()

	first := p.scrollY / MoveRowHeight
	y := startY - p.scrollY%MoveRowHeight
	for i := first; i < len(history) && y <= maxY-MoveRowHeight; i++ {
		if y >= startY {
			if i%2 == 1 {
				fillRect(screen, x-4, y-2, PanelWidth-PanelPadding*2+8, MoveRowHeight, theme.RowAlt)
			}
			drawText(screen, history[i].LogLine(), f, x, y, theme.TextPrimary)
		}
		y += MoveRowHeight
	}

	if p.maxScrollY > 0 {
		pct := float64(p.scrollY) / float64(p.maxScrollY)
		indicatorH := max(visibleHeight*visibleHeight/contentHeight, 20)
		indicatorY := startY + int(pct*float64(visibleHeight-indicatorH))
		fillRect(screen, BoardSize+PanelWidth-8, indicatorY, 4, indicatorH, theme.TextMuted)
	}
}

// drawStatusBar shows whose turn it is, check, or the result.
func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - StatusBarHeight
	x := BoardSize + PanelPadding

	DrawDivider(screen, x, statusY-10, PanelWidth-PanelPadding*2)
	DrawSectionHeader(screen, "Status", x, statusY)

	s := p.game.Session()
	c := theme.TextPrimary
	switch {
	case s.State().Terminal():
		c = theme.StatusGameOver
	case s.InCheck():
		c = theme.StatusCheck
	}
	if s.State() == game.PieceSelected {
		c = theme.Accent
	}
	drawText(screen, s.Status(), GetRegularFace(), x, statusY+22, c)
}

// Collapsed returns whether the panel is collapsed.
func (p *Panel) Collapsed() bool {
	return p.collapsed
}

// toggleCollapse toggles the panel and resizes the window to match.
func (p *Panel) toggleCollapse() {
	p.collapsed = !p.collapsed
	p.createButtons()

	if p.collapsed {
		ebiten.SetWindowSize(BoardSize+CollapsedWidth, ScreenHeight)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	}
}
