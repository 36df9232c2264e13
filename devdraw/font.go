package devdraw

import (
	"image"
	"log"

	"9fans.net/go/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/mjl-/duitkit"
)

// Fonts opens devdraw fonts by name, and measures text with them so layout
// matches what is drawn. A font with an empty name, or one that cannot be
// opened, is the display's default font.
type Fonts struct {
	Display *draw.Display

	fonts map[string]*draw.Font
}

var _ duitkit.FontSource = &Fonts{}

func (f *Fonts) Font(df duitkit.Font) *draw.Font {
	if df.Name == "" {
		return f.Display.DefaultFont
	}
	if ff, ok := f.fonts[df.Name]; ok {
		return ff
	}
	if f.fonts == nil {
		f.fonts = map[string]*draw.Font{}
	}
	ff, err := f.Display.OpenFont(df.Name)
	if err != nil {
		log.Printf("devdraw: open font %s: %s, using default font\n", df.Name, err)
		ff = f.Display.DefaultFont
	}
	f.fonts[df.Name] = ff
	return ff
}

func (f *Fonts) Face(df duitkit.Font) font.Face {
	return face{f.Font(df)}
}

// face measures with a devdraw font. It has no glyph images, devdraw draws
// the text itself.
type face struct {
	f *draw.Font
}

var _ font.Face = face{}

func (face) Close() error {
	return nil
}

func (x face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	return image.Rectangle{}, nil, image.Point{}, 0, false
}

func (x face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	advance, ok = x.GlyphAdvance(r)
	m := x.Metrics()
	bounds = fixed.Rectangle26_6{Min: fixed.Point26_6{Y: -m.Ascent}, Max: fixed.Point26_6{X: advance, Y: m.Descent}}
	return
}

func (x face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return fixed.I(x.f.StringWidth(string(r))), true
}

func (face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

func (x face) Metrics() font.Metrics {
	return font.Metrics{
		Height:  fixed.I(x.f.Height),
		Ascent:  fixed.I(x.f.Ascent),
		Descent: fixed.I(x.f.Height - x.f.Ascent),
	}
}
