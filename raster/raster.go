// Package raster is a duitkit draw sink rendering into an *image.RGBA, for
// headless use, screenshots and tests.
package raster

import (
	"image"
	"log"

	"9fans.net/go/draw"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/mjl-/duitkit"
)

// Images resolves image names for DrawImage.
type Images interface {
	Image(name string) (image.Image, error)
}

// Sink draws into Dst. Images are scaled to the rectangle they are drawn in.
type Sink struct {
	Dst    *image.RGBA
	Fonts  duitkit.FontSource // Nil means duitkit.BasicFonts.
	Images Images             // Nil draws nothing for images.
	Scaler xdraw.Scaler       // Nil means xdraw.ApproxBiLinear.

	failed map[string]bool // Image names already logged as failing.
}

var _ duitkit.DrawSink = &Sink{}

// New returns a sink on a new transparent image of size.
func New(size image.Point) *Sink {
	return &Sink{Dst: image.NewRGBA(image.Rectangle{Max: size})}
}

// Image returns the image drawn into.
func (s *Sink) Image() *image.RGBA {
	return s.Dst
}

// sub returns the part of Dst within r and clip, nil if empty.
func (s *Sink) sub(r, clip image.Rectangle) *image.RGBA {
	r = r.Intersect(clip).Intersect(s.Dst.Bounds())
	if r.Empty() {
		return nil
	}
	return s.Dst.SubImage(r).(*image.RGBA)
}

func (s *Sink) DrawRectangle(r image.Rectangle, c draw.Color, clip image.Rectangle) {
	dst := s.sub(r, clip)
	if dst == nil {
		return
	}
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(duitkit.RGBA(c)), image.Point{}, xdraw.Over)
}

// DrawText draws text on a single line, its top at r.Min.Y.
func (s *Sink) DrawText(r image.Rectangle, text string, f duitkit.Font, c draw.Color, clip image.Rectangle) {
	dst := s.sub(r, clip)
	if dst == nil {
		return
	}
	fonts := s.Fonts
	if fonts == nil {
		fonts = duitkit.BasicFonts{}
	}
	face := fonts.Face(f)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(duitkit.RGBA(c)),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(r.Min.X), Y: fixed.I(r.Min.Y) + face.Metrics().Ascent},
	}
	d.DrawString(text)
}

func (s *Sink) DrawImage(r image.Rectangle, name string, clip image.Rectangle) {
	if s.Images == nil {
		return
	}
	dst := s.sub(r, clip)
	if dst == nil {
		return
	}
	img, err := s.Images.Image(name)
	if err != nil {
		if !s.failed[name] {
			if s.failed == nil {
				s.failed = map[string]bool{}
			}
			s.failed[name] = true
			log.Printf("raster: image %q: %v\n", name, err)
		}
		return
	}
	scaler := s.Scaler
	if scaler == nil {
		scaler = xdraw.ApproxBiLinear
	}
	// The destination rectangle is the full r; dst clips it.
	scaler.Scale(dst, r, img, img.Bounds(), xdraw.Over, nil)
}
