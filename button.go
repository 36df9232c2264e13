package duitkit

import (
	"9fans.net/go/draw"
)

// ButtonState is the interaction state of a PushButton.
type ButtonState int

const (
	ButtonIdle = ButtonState(iota)
	ButtonHovered
	ButtonPressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonHovered:
		return "hovered"
	case ButtonPressed:
		return "pressed"
	}
	return "idle"
}

// PushButton is a box with a text on it. While button 1 is held down on it,
// its main and text colors are swapped. Releasing button 1 over it calls the
// WidgetClicked callback and returns a WidgetClicked event; releasing
// elsewhere cancels the click.
type PushButton struct {
	Base

	box      *BoxWidget
	text     *TextWidget
	state    ButtonState
	inverted bool
}

var _ Widget = &PushButton{}

// NewPushButton returns an idle button, white with black text and a 1 pixel
// black border.
func NewPushButton(font Font, text string, justify Justify) *PushButton {
	ui := &PushButton{
		box:  NewBox(),
		text: NewText(font, text, justify),
	}
	ui.SetConfig(MainColor, White)
	ui.SetConfig(TextColor, Black)
	ui.SetConfig(BorderColor, Black)
	ui.SetConfig(BorderWidth, 1)
	return ui
}

func (ui *PushButton) State() ButtonState {
	return ui.state
}

func (ui *PushButton) Text() *TextWidget {
	return ui.text
}

// SetConfig stores the setting and passes it on to the box and text the button
// is drawn with. Origins are not passed on: those are relative to the button.
func (ui *PushButton) SetConfig(key ConfigKey, v interface{}) {
	ui.config.Set(key, v)
	switch key {
	case Origin, PreferredOrigin:
	case MainColor, TextColor:
		ui.applyColors()
	case BorderColor, BorderWidth:
		ui.box.SetConfig(key, v)
	default:
		ui.box.SetConfig(key, v)
		ui.text.SetConfig(key, v)
	}
}

func (ui *PushButton) colors() (main, text draw.Color) {
	main, text = ui.config.Color(MainColor), ui.config.Color(TextColor)
	if ui.inverted {
		return text, main
	}
	return
}

func (ui *PushButton) applyColors() {
	main, text := ui.colors()
	ui.box.SetConfig(MainColor, main)
	ui.text.SetConfig(TextColor, text)
}

func (ui *PushButton) setInverted(inverted bool) {
	if ui.inverted == inverted {
		return
	}
	ui.inverted = inverted
	ui.applyColors()
	Invalidate(ui)
}

func (ui *PushButton) Draw(c *Canvas) {
	drawSub(c, ui.box)
	drawSub(c, ui.text)
	ui.config.Remove(Invalidated)
}

func (ui *PushButton) HandleEvent(injected bool, e Event, store *Store) *Event {
	if injected {
		return nil
	}
	switch e.Kind {
	case MouseEntered:
		switch ui.state {
		case ButtonIdle:
			ui.state = ButtonHovered
		case ButtonPressed:
			// Back over the button while it is still held.
			ui.setInverted(true)
		}
	case MouseExited:
		switch ui.state {
		case ButtonHovered:
			ui.state = ButtonIdle
		case ButtonPressed:
			ui.setInverted(false)
		}
	case MouseButtonDown:
		if e.Button == Button1 && ui.state == ButtonHovered {
			ui.state = ButtonPressed
			ui.setInverted(true)
		}
	case MouseButtonUpInside:
		if e.Button == Button1 && ui.state == ButtonPressed {
			ui.state = ButtonHovered
			ui.setInverted(false)
			click := Event{Kind: WidgetClicked, WidgetID: ui.id, Point: e.Point, Button: e.Button}
			ui.callbacks.Invoke(ui, store, click)
			return &click
		}
	case MouseButtonUpOutside:
		if e.Button == Button1 && ui.state == ButtonPressed {
			ui.state = ButtonIdle
			ui.setInverted(false)
		}
	}
	return nil
}
