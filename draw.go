package duitkit

import (
	"image"

	"9fans.net/go/draw"
)

// DrawSink is the graphics backend. Rectangles are in window coordinates and
// already translated; clip is the area drawing must stay within.
type DrawSink interface {
	DrawRectangle(r image.Rectangle, c draw.Color, clip image.Rectangle)
	DrawText(r image.Rectangle, text string, font Font, c draw.Color, clip image.Rectangle)
	DrawImage(r image.Rectangle, name string, clip image.Rectangle)
}

// Canvas is handed to Widget.Draw. It translates widget coordinates to window
// coordinates and clips to the widget and its ancestors.
type Canvas struct {
	sink  DrawSink
	fonts FontSource
	orig  image.Point     // Window position of the widget's (0,0).
	clip  image.Rectangle // In window coordinates.
}

// NewCanvas returns a canvas drawing to sink with its origin at orig, clipped
// to clip (window coordinates). A nil fonts means BasicFonts.
func NewCanvas(sink DrawSink, fonts FontSource, orig image.Point, clip image.Rectangle) *Canvas {
	if fonts == nil {
		fonts = BasicFonts{}
	}
	return &Canvas{sink: sink, fonts: fonts, orig: orig, clip: clip}
}

func (c *Canvas) Rect(r image.Rectangle, color draw.Color) {
	r = r.Add(c.orig)
	if !r.Overlaps(c.clip) {
		return
	}
	c.sink.DrawRectangle(r, color, c.clip)
}

// Border draws a border of width w on the inside of r.
func (c *Canvas) Border(r image.Rectangle, w int, color draw.Color) {
	if w <= 0 || r.Empty() {
		return
	}
	c.Rect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), color)
	c.Rect(image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), color)
	c.Rect(image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y), color)
	c.Rect(image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y), color)
}

func (c *Canvas) Text(r image.Rectangle, text string, font Font, color draw.Color) {
	r = r.Add(c.orig)
	if !r.Overlaps(c.clip) {
		return
	}
	c.sink.DrawText(r, text, font, color, c.clip)
}

func (c *Canvas) Image(r image.Rectangle, name string) {
	r = r.Add(c.orig)
	if !r.Overlaps(c.clip) {
		return
	}
	c.sink.DrawImage(r, name, c.clip)
}

// Sub returns a canvas for a sub-widget placed at r, in c's coordinates.
func (c *Canvas) Sub(r image.Rectangle) *Canvas {
	nc := *c
	abs := r.Add(c.orig)
	nc.orig = abs.Min
	nc.clip = c.clip.Intersect(abs)
	return &nc
}

// Fonts returns the font source, for measuring text.
func (c *Canvas) Fonts() FontSource {
	return c.fonts
}

// Clip returns the clip rectangle in widget coordinates.
func (c *Canvas) Clip() image.Rectangle {
	return c.clip.Sub(c.orig)
}
