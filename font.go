package duitkit

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Font names a font by its logical name and pixel size. Resolving it to font
// data is up to a FontSource and the draw sink.
type Font struct {
	Name string
	Size int
}

// FontSource resolves fonts for measuring text.
type FontSource interface {
	Face(f Font) font.Face
}

// BasicFonts resolves every font to the fixed 7x13 face of
// golang.org/x/image/font/basicfont.
type BasicFonts struct{}

func (BasicFonts) Face(f Font) font.Face {
	return basicfont.Face7x13
}

// TextSize returns the width of s and the line height of the face.
func TextSize(face font.Face, s string) image.Point {
	m := face.Metrics()
	return image.Pt(font.MeasureString(face, s).Ceil(), (m.Ascent + m.Descent).Ceil())
}
