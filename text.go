package duitkit

import (
	"image"
)

// Justify is the horizontal placement of text in its widget.
type Justify int

const (
	JustifyLeft = Justify(iota)
	JustifyCenter
	JustifyRight
)

// TextWidget draws a single line of text in TextColor, vertically centered.
// The background is only painted when MainColor is set.
type TextWidget struct {
	Base

	text    string
	font    Font
	justify Justify
}

var _ Widget = &TextWidget{}

func NewText(font Font, text string, justify Justify) *TextWidget {
	return &TextWidget{text: text, font: font, justify: justify}
}

func (ui *TextWidget) Text() string {
	return ui.text
}

// SetText replaces the text and invalidates the widget.
func (ui *TextWidget) SetText(s string) {
	ui.text = s
	Invalidate(ui)
}

func (ui *TextWidget) Font() Font {
	return ui.font
}

func (ui *TextWidget) SetFont(f Font) {
	ui.font = f
	Invalidate(ui)
}

func (ui *TextWidget) SetJustify(j Justify) {
	ui.justify = j
	Invalidate(ui)
}

// textRect returns where text of size ts goes in a body of size size.
func (ui *TextWidget) textRect(size, ts image.Point) image.Rectangle {
	x := 0
	switch ui.justify {
	case JustifyCenter:
		x = (size.X - ts.X) / 2
	case JustifyRight:
		x = size.X - ts.X
	}
	p := image.Pt(maximum(0, x), maximum(0, (size.Y-ts.Y)/2))
	return image.Rectangle{p, p.Add(ts)}
}

func (ui *TextWidget) Draw(c *Canvas) {
	size := ui.config.Point(BodySize)
	if ui.config.Contains(MainColor) {
		c.Rect(rect(size), ui.config.Color(MainColor))
	}
	if ui.text != "" {
		ts := TextSize(c.Fonts().Face(ui.font), ui.text)
		c.Text(ui.textRect(size, ts), ui.text, ui.font, ui.config.Color(TextColor))
	}
	ui.config.Remove(Invalidated)
}
