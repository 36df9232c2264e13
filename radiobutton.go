package duitkit

import (
	"image"
)

const (
	radioSize = 16 // Largest indicator, in pixels.
	radioGap  = 6  // Between indicator and text.
)

// RadioButton is one of the choices in Group. Pressing and releasing button 1
// over an unselected radio button selects it and deselects the others in the group.
// Only the newly selected button calls its WidgetSelected callback and returns
// a WidgetSelected event.
type RadioButton struct {
	Base

	Value interface{} // For use by callbacks.
	Group []*RadioButton

	frame    *BoxWidget
	dot      *BoxWidget
	text     *TextWidget
	selected bool
	pressed  bool
}

var _ Widget = &RadioButton{}

func NewRadioButton(font Font, text string, value interface{}) *RadioButton {
	ui := &RadioButton{
		Value: value,
		frame: NewBox(),
		dot:   NewBox(),
		text:  NewText(font, text, JustifyLeft),
	}
	ui.SetConfig(BorderWidth, 1)
	ui.SetConfig(TextColor, Black)
	return ui
}

// RadioGroup makes l one group of radio buttons.
func RadioGroup(l ...*RadioButton) {
	for _, r := range l {
		r.Group = l
	}
}

func (ui *RadioButton) Selected() bool {
	return ui.selected
}

// SetSelected changes the state without producing an event. Selecting
// deselects the rest of the group.
func (ui *RadioButton) SetSelected(selected bool) {
	if selected {
		ui.check()
	} else if ui.selected {
		ui.selected = false
		Invalidate(ui)
	}
}

func (ui *RadioButton) check() {
	if !ui.selected {
		ui.selected = true
		Invalidate(ui)
	}
	for _, r := range ui.Group {
		if r != ui && r.selected {
			r.selected = false
			Invalidate(r)
		}
	}
}

func (ui *RadioButton) Text() *TextWidget {
	return ui.text
}

// SetConfig passes settings on to the indicator and text. The indicator is a
// square of at most 16 pixels, vertically centered, with the text next to it.
func (ui *RadioButton) SetConfig(key ConfigKey, v interface{}) {
	ui.config.Set(key, v)
	switch key {
	case Origin, PreferredOrigin, PreferredSize, WidgetHidden:
	case MainColor, BorderColor, BorderWidth:
		ui.frame.SetConfig(key, v)
	case TextColor:
		ui.text.SetConfig(key, v)
		ui.dot.SetConfig(MainColor, v)
	case BodySize:
		size := ui.config.Point(BodySize)
		d := minimum(size.Y, radioSize)
		ui.frame.SetConfig(Origin, image.Pt(0, (size.Y-d)/2))
		ui.frame.SetConfig(BodySize, pt(d))
		inset := d / 4
		ui.dot.SetConfig(Origin, image.Pt(inset, (size.Y-d)/2+inset))
		ui.dot.SetConfig(BodySize, pt(maximum(0, d-2*inset)))
		ui.text.SetConfig(Origin, image.Pt(d+radioGap, 0))
		ui.text.SetConfig(BodySize, image.Pt(maximum(0, size.X-d-radioGap), size.Y))
	default:
		ui.frame.SetConfig(key, v)
		ui.dot.SetConfig(key, v)
		ui.text.SetConfig(key, v)
	}
}

func (ui *RadioButton) Draw(c *Canvas) {
	drawSub(c, ui.frame)
	if ui.selected {
		drawSub(c, ui.dot)
	}
	drawSub(c, ui.text)
	ui.config.Remove(Invalidated)
}

func (ui *RadioButton) HandleEvent(injected bool, e Event, store *Store) *Event {
	if injected || e.Button != Button1 {
		return nil
	}
	switch e.Kind {
	case MouseButtonDown:
		ui.pressed = true
		return nil
	case MouseButtonUpInside:
		pressed := ui.pressed
		ui.pressed = false
		if !pressed || ui.selected {
			return nil
		}
	default:
		ui.pressed = false
		return nil
	}
	ui.check()
	sel := Event{Kind: WidgetSelected, WidgetID: ui.id, Point: e.Point, Button: e.Button, Selected: true}
	ui.callbacks.Invoke(ui, store, sel)
	return &sel
}
