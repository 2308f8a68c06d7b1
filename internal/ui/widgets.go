package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widgets lay out in logical pixels and scale when drawn.

func fillRect(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	vector.DrawFilledRect(screen, scaleF(x), scaleF(y), scaleF(w), scaleF(h), c, false)
}

func strokeRect(screen *ebiten.Image, x, y, w, h int, width float32, c color.RGBA) {
	vector.StrokeRect(screen, scaleF(x), scaleF(y), scaleF(w), scaleF(h), width*float32(UIScale), c, false)
}

// RadioOption represents a single radio button option.
type RadioOption struct {
	Label string
	Value int
}

// RadioGroup is a group of mutually exclusive radio buttons.
type RadioGroup struct {
	X, Y     int
	W        int
	Options  []RadioOption
	Selected int
	ItemH    int
	hovered  int
}

// NewRadioGroup creates a new radio group.
func NewRadioGroup(x, y, w int, options []RadioOption, selected int) *RadioGroup {
	return &RadioGroup{
		X:        x,
		Y:        y,
		W:        w,
		Options:  options,
		Selected: selected,
		ItemH:    30,
		hovered:  -1,
	}
}

// Value returns the value of the selected option.
func (rg *RadioGroup) Value() int {
	return rg.Options[rg.Selected].Value
}

// Select selects the option with the given value, if present.
func (rg *RadioGroup) Select(value int) {
	for i, opt := range rg.Options {
		if opt.Value == value {
			rg.Selected = i
		}
	}
}

// Update handles radio group input.
func (rg *RadioGroup) Update(input *InputHandler) bool {
	rg.hovered = -1
	for i := range rg.Options {
		if input.IsInBounds(rg.X, rg.Y+i*rg.ItemH, rg.W, rg.ItemH) {
			rg.hovered = i
			if input.IsLeftJustPressed() {
				rg.Selected = i
				return true
			}
		}
	}
	return false
}

// Draw renders the radio group.
func (rg *RadioGroup) Draw(screen *ebiten.Image) {
	f := GetRegularFace()
	for i, opt := range rg.Options {
		itemY := rg.Y + i*rg.ItemH
		isSelected := i == rg.Selected
		isHovered := i == rg.hovered

		if isHovered && !isSelected {
			fillRect(screen, rg.X-4, itemY, rg.W, rg.ItemH, theme.ButtonHover)
		}

		cx := scaleF(rg.X + 10)
		cy := scaleF(itemY + rg.ItemH/2)
		radius := scaleF(8)

		circleColor := theme.ButtonBorder
		if isSelected || isHovered {
			circleColor = theme.Accent
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, circleColor, true)
		if isSelected {
			vector.DrawFilledCircle(screen, cx, cy, radius-scaleF(4), theme.TextOnAccent, true)
		}

		textColor := theme.TextSecondary
		if isSelected || isHovered {
			textColor = theme.TextPrimary
		}
		_, h := MeasureText(opt.Label, f)
		drawText(screen, opt.Label, f, rg.X+30, itemY+rg.ItemH/2-int(h/2/UIScale), textColor)
	}
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{X: x, Y: y, Label: label, Checked: checked}
}

// Update handles checkbox input.
func (cb *Checkbox) Update(input *InputHandler) bool {
	cb.hovered = input.IsInBounds(cb.X, cb.Y, 220, 24)
	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	const box = 20

	bg := theme.SectionBg
	if cb.hovered {
		bg = theme.ButtonHover
	}
	fillRect(screen, cb.X, cb.Y, box, box, bg)

	border := theme.ButtonBorder
	if cb.hovered || cb.Checked {
		border = theme.Accent
	}
	strokeRect(screen, cb.X, cb.Y, box, box, 2, border)

	if cb.Checked {
		x, y := scaleF(cb.X), scaleF(cb.Y)
		w := float32(2 * UIScale)
		vector.StrokeLine(screen, x+scaleF(4), y+scaleF(10), x+scaleF(8), y+scaleF(14), w, theme.Accent, true)
		vector.StrokeLine(screen, x+scaleF(8), y+scaleF(14), x+scaleF(16), y+scaleF(6), w, theme.Accent, true)
	}

	textColor := theme.TextSecondary
	if cb.Checked || cb.hovered {
		textColor = theme.TextPrimary
	}
	f := GetRegularFace()
	_, h := MeasureText(cb.Label, f)
	drawText(screen, cb.Label, f, cb.X+30, cb.Y+box/2-int(h/2/UIScale), textColor)
}

// ButtonGroup is a horizontal group of toggle buttons.
type ButtonGroup struct {
	X, Y     int
	Options  []string
	Selected int
	ButtonW  int
	ButtonH  int
	hovered  int
	pressed  int
}

// NewButtonGroup creates a new button group.
func NewButtonGroup(x, y int, options []string, selected int, buttonW, buttonH int) *ButtonGroup {
	return &ButtonGroup{
		X:        x,
		Y:        y,
		Options:  options,
		Selected: selected,
		ButtonW:  buttonW,
		ButtonH:  buttonH,
		hovered:  -1,
		pressed:  -1,
	}
}

// Update handles button group input.
func (bg *ButtonGroup) Update(input *InputHandler) bool {
	bg.hovered = -1
	bg.pressed = -1
	for i := range bg.Options {
		if input.IsInBounds(bg.X+i*bg.ButtonW, bg.Y, bg.ButtonW, bg.ButtonH) {
			bg.hovered = i
			if input.IsLeftPressed() {
				bg.pressed = i
			}
			if input.IsLeftJustPressed() {
				bg.Selected = i
				return true
			}
		}
	}
	return false
}

// Draw renders the button group.
func (bg *ButtonGroup) Draw(screen *ebiten.Image) {
	f := GetRegularFace()
	for i, label := range bg.Options {
		btnX := bg.X + i*bg.ButtonW
		isSelected := i == bg.Selected

		fill := theme.ButtonBg
		switch {
		case isSelected:
			fill = theme.Accent
		case i == bg.pressed:
			fill = theme.ButtonPressed
		case i == bg.hovered:
			fill = theme.ButtonHover
		}
		fillRect(screen, btnX, bg.Y, bg.ButtonW, bg.ButtonH, fill)

		border := theme.ButtonBorder
		if isSelected || i == bg.hovered {
			border = theme.Accent
		}
		strokeRect(screen, btnX, bg.Y, bg.ButtonW, bg.ButtonH, 1, border)

		textColor := theme.TextSecondary
		if isSelected {
			textColor = theme.TextOnAccent
		}
		drawTextCentered(screen, label, f, btnX+bg.ButtonW/2, bg.Y+bg.ButtonH/2, textColor)
	}
}

// ModalButton is a push button used by the panel and the modals.
type ModalButton struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewModalButton creates a new modal button.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// IsHovered returns true if the button is hovered.
func (mb *ModalButton) IsHovered() bool {
	return mb.hovered
}

// Update handles button input and reports whether it was clicked.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mb.hovered = input.IsInBounds(mb.X, mb.Y, mb.W, mb.H)
	mb.pressed = input.IsLeftPressed() && mb.hovered

	if input.IsLeftJustPressed() && mb.hovered && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the button.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	fill, border, label := theme.ButtonBg, theme.ButtonBorder, theme.TextSecondary
	if mb.Primary {
		fill, border, label = theme.Accent, theme.AccentPressed, theme.TextOnAccent
		if mb.pressed {
			fill = theme.AccentPressed
		} else if mb.hovered {
			fill = theme.AccentHover
		}
	} else {
		if mb.pressed {
			fill = theme.ButtonPressed
		} else if mb.hovered {
			fill, border, label = theme.ButtonHover, theme.Accent, theme.TextPrimary
		}
	}

	fillRect(screen, mb.X, mb.Y, mb.W, mb.H, fill)
	strokeRect(screen, mb.X, mb.Y, mb.W, mb.H, 1, border)
	drawTextCentered(screen, mb.Label, GetRegularFace(), mb.X+mb.W/2, mb.Y+mb.H/2, label)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	fillRect(screen, x, y, w, 1, theme.Divider)
}

// DrawSectionHeader draws a muted section label.
func DrawSectionHeader(screen *ebiten.Image, label string, x, y int) {
	drawText(screen, label, GetRegularFace(), x, y, theme.TextMuted)
}
