package ui

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
	coordFontSize   = 11.0
)

func init() {
	initFonts()
}

func initFonts() {
	var err error
	regularSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logrus.WithError(err).Warn("failed to load regular font")
	}
	boldSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		logrus.WithError(err).Warn("failed to load bold font")
	}
}

// face returns a face of the given logical size, scaled for the display.
// It is nil if the font failed to load.
func face(src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	if src == nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size * UIScale}
}

// GetRegularFace returns the regular font face.
func GetRegularFace() *text.GoTextFace {
	return face(regularSource, defaultFontSize)
}

// GetBoldFace returns the bold font face.
func GetBoldFace() *text.GoTextFace {
	return face(boldSource, titleFontSize)
}

// GetFaceWithSize returns a regular face with a custom logical size.
func GetFaceWithSize(size float64) *text.GoTextFace {
	return face(regularSource, size)
}

// MeasureText returns the width and height of the given text in screen pixels.
func MeasureText(s string, f *text.GoTextFace) (width, height float64) {
	if f == nil {
		return 0, 0
	}
	return text.Measure(s, f, f.Size*1.3)
}

// drawText draws s with its top-left corner at logical (x, y).
func drawText(screen *ebiten.Image, s string, f *text.GoTextFace, x, y int, c color.Color) {
	if f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x), scaleD(y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = f.Size * 1.3
	text.Draw(screen, s, f, op)
}

// drawTextCentered draws s centered on logical (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, f *text.GoTextFace, cx, cy int, c color.Color) {
	if f == nil {
		return
	}
	w, h := MeasureText(s, f)
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(cx)-w/2, scaleD(cy)-h/2)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = f.Size * 1.3
	text.Draw(screen, s, f, op)
}
