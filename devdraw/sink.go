// Package devdraw runs duitkit widgets in a devdraw window, using the plan9
// draw library.
package devdraw

import (
	"image"
	"log"

	"9fans.net/go/draw"

	"github.com/mjl-/duitkit"
	"github.com/mjl-/duitkit/raster"
)

// Sink draws into a devdraw image, typically the screen image of the display.
// Colors, fonts and images are allocated on first use and kept.
type Sink struct {
	Display *draw.Display
	Dst     *draw.Image
	Fonts   *Fonts
	Images  raster.Images // Resolves names for DrawImage. Nil draws nothing.

	colors map[draw.Color]*draw.Image
	images map[imageKey]*draw.Image
	failed map[string]bool
}

type imageKey struct {
	name string
	size image.Point
}

var _ duitkit.DrawSink = &Sink{}

// NewSink returns a sink drawing on the screen image of display.
func NewSink(display *draw.Display, images raster.Images) *Sink {
	return &Sink{
		Display: display,
		Dst:     display.ScreenImage,
		Fonts:   &Fonts{Display: display},
		Images:  images,
		colors:  map[draw.Color]*draw.Image{},
		images:  map[imageKey]*draw.Image{},
	}
}

func (s *Sink) color(c draw.Color) *draw.Image {
	if img, ok := s.colors[c]; ok {
		return img
	}
	img, err := s.Display.AllocImage(image.Rect(0, 0, 1, 1), draw.ARGB32, true, c)
	check(err, "allocimage")
	s.colors[c] = img
	return img
}

// clipped runs fn with the clip rectangle of Dst set to clip.
func (s *Sink) clipped(clip image.Rectangle, fn func()) {
	orig := s.Dst.Clipr
	s.Dst.ReplClipr(s.Dst.Repl, clip.Intersect(orig))
	fn()
	s.Dst.ReplClipr(s.Dst.Repl, orig)
}

func (s *Sink) DrawRectangle(r image.Rectangle, c draw.Color, clip image.Rectangle) {
	r = r.Intersect(clip)
	if r.Empty() {
		return
	}
	s.Dst.Draw(r, s.color(c), nil, image.ZP)
}

func (s *Sink) DrawText(r image.Rectangle, text string, f duitkit.Font, c draw.Color, clip image.Rectangle) {
	clip = clip.Intersect(r)
	if clip.Empty() {
		return
	}
	font := s.Fonts.Font(f)
	src := s.color(c)
	s.clipped(clip, func() {
		s.Dst.String(r.Min, src, image.ZP, font, text)
	})
}

func (s *Sink) DrawImage(r image.Rectangle, name string, clip image.Rectangle) {
	clip = clip.Intersect(r)
	if clip.Empty() {
		return
	}
	img := s.image(name, r.Size())
	if img == nil {
		return
	}
	s.clipped(clip, func() {
		s.Dst.Draw(r, img, nil, image.ZP)
	})
}

// image returns name loaded on the display at size, nil if it cannot be
// loaded. Failures are logged once per name.
func (s *Sink) image(name string, size image.Point) *draw.Image {
	if s.Images == nil {
		return nil
	}
	k := imageKey{name, size}
	if img, ok := s.images[k]; ok {
		return img
	}
	src, err := s.Images.Image(name)
	var img *draw.Image
	if err == nil {
		img, err = LoadImage(s.Display, scaleImage(src, size))
	}
	if err != nil {
		if !s.failed[name] {
			if s.failed == nil {
				s.failed = map[string]bool{}
			}
			s.failed[name] = true
			log.Printf("devdraw: image %q: %s\n", name, err)
		}
		return nil
	}
	s.images[k] = img
	return img
}

// Clear fills all of Dst with c.
func (s *Sink) Clear(c draw.Color) {
	s.Dst.Draw(s.Dst.R, s.color(c), nil, image.ZP)
}

// Free releases the images allocated on the display.
func (s *Sink) Free() {
	for _, img := range s.colors {
		img.Free()
	}
	for _, img := range s.images {
		img.Free()
	}
	s.colors = map[draw.Color]*draw.Image{}
	s.images = map[imageKey]*draw.Image{}
}
