package ui

import (
	"image/color"

	"github.com/hailam/hotseat/internal/storage"
)

// Theme defines the colors of the board and of the panel and modals around it.
type Theme struct {
	// Board
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	TargetColor    color.RGBA // dots and capture rings
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	FocusColor     color.RGBA // keyboard cursor

	// Chrome
	Background     color.RGBA
	PanelBg        color.RGBA
	SectionBg      color.RGBA
	ButtonBg       color.RGBA
	ButtonHover    color.RGBA
	ButtonPressed  color.RGBA
	ButtonBorder   color.RGBA
	Accent         color.RGBA
	AccentHover    color.RGBA
	AccentPressed  color.RGBA
	TextPrimary    color.RGBA
	TextSecondary  color.RGBA
	TextMuted      color.RGBA
	TextOnAccent   color.RGBA
	Divider        color.RGBA
	RowAlt         color.RGBA
	StatusCheck    color.RGBA
	StatusGameOver color.RGBA
	Overlay        color.RGBA
	ModalBg        color.RGBA
	ModalHeader    color.RGBA
	ModalBorder    color.RGBA
}

// DarkTheme returns the default color theme.
func DarkTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180},
		TargetColor:    color.RGBA{60, 90, 60, 140},
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180},
		FocusColor:     color.RGBA{80, 160, 255, 255},

		Background:     color.RGBA{40, 44, 52, 255},
		PanelBg:        color.RGBA{38, 40, 45, 255},
		SectionBg:      color.RGBA{48, 52, 58, 255},
		ButtonBg:       color.RGBA{50, 54, 60, 255},
		ButtonHover:    color.RGBA{65, 70, 78, 255},
		ButtonPressed:  color.RGBA{40, 44, 50, 255},
		ButtonBorder:   color.RGBA{70, 75, 82, 255},
		Accent:         color.RGBA{76, 175, 120, 255},
		AccentHover:    color.RGBA{96, 195, 140, 255},
		AccentPressed:  color.RGBA{56, 155, 100, 255},
		TextPrimary:    color.RGBA{240, 240, 245, 255},
		TextSecondary:  color.RGBA{160, 165, 175, 255},
		TextMuted:      color.RGBA{120, 125, 135, 255},
		TextOnAccent:   color.RGBA{240, 240, 245, 255},
		Divider:        color.RGBA{60, 65, 72, 255},
		RowAlt:         color.RGBA{44, 48, 54, 255},
		StatusCheck:    color.RGBA{255, 120, 110, 255},
		StatusGameOver: color.RGBA{255, 200, 80, 255},
		Overlay:        color.RGBA{0, 0, 0, 180},
		ModalBg:        color.RGBA{38, 40, 45, 255},
		ModalHeader:    color.RGBA{48, 52, 58, 255},
		ModalBorder:    color.RGBA{58, 62, 68, 255},
	}
}

// LightTheme returns the light color theme.
func LightTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{238, 238, 210, 255},
		DarkSquare:     color.RGBA{118, 150, 86, 255},
		SelectedSquare: color.RGBA{246, 246, 130, 190},
		TargetColor:    color.RGBA{40, 60, 40, 110},
		LastMoveColor:  color.RGBA{205, 210, 106, 110},
		CheckColor:     color.RGBA{235, 80, 80, 170},
		FocusColor:     color.RGBA{30, 110, 220, 255},

		Background:     color.RGBA{246, 246, 242, 255},
		PanelBg:        color.RGBA{236, 237, 232, 255},
		SectionBg:      color.RGBA{226, 228, 222, 255},
		ButtonBg:       color.RGBA{222, 224, 218, 255},
		ButtonHover:    color.RGBA{208, 211, 204, 255},
		ButtonPressed:  color.RGBA{196, 199, 192, 255},
		ButtonBorder:   color.RGBA{186, 190, 182, 255},
		Accent:         color.RGBA{70, 140, 90, 255},
		AccentHover:    color.RGBA{86, 158, 106, 255},
		AccentPressed:  color.RGBA{56, 120, 74, 255},
		TextPrimary:    color.RGBA{30, 32, 36, 255},
		TextSecondary:  color.RGBA{80, 84, 92, 255},
		TextMuted:      color.RGBA{128, 132, 140, 255},
		TextOnAccent:   color.RGBA{250, 250, 250, 255},
		Divider:        color.RGBA{204, 207, 200, 255},
		RowAlt:         color.RGBA{228, 230, 224, 255},
		StatusCheck:    color.RGBA{200, 50, 40, 255},
		StatusGameOver: color.RGBA{180, 110, 0, 255},
		Overlay:        color.RGBA{40, 40, 40, 120},
		ModalBg:        color.RGBA{246, 246, 242, 255},
		ModalHeader:    color.RGBA{226, 228, 222, 255},
		ModalBorder:    color.RGBA{186, 190, 182, 255},
	}
}

// ThemeFor returns the theme for a stored preference.
func ThemeFor(t storage.Theme) *Theme {
	if t == storage.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// theme is the active theme; widgets and modals read it at draw time.
var theme = DarkTheme()
