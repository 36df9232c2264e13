package duitkit

import (
	"image"
)

// Image names a Checkbox asks the draw sink for.
const (
	CheckboxSelectedImage   = "checkbox_selected.png"
	CheckboxUnselectedImage = "checkbox_unselected.png"
)

// checkboxTextX is where the label of a checkbox starts.
const checkboxTextX = 38

// Checkbox is a toggle with an image showing its state and a text next to it.
// Pressing and releasing button 1 over it flips the state, calls the WidgetSelected
// callback and returns a WidgetSelected event. It has no hover look.
type Checkbox struct {
	Base

	box        *BoxWidget
	text       *TextWidget
	selected   *ImageWidget
	unselected *ImageWidget
	checked    bool
	pressed    bool // Saw button 1 go down.
}

var _ Widget = &Checkbox{}

func NewCheckbox(font Font, text string, checked bool) *Checkbox {
	ui := &Checkbox{
		box:        NewBox(),
		text:       NewText(font, text, JustifyLeft),
		selected:   NewImage(CheckboxSelectedImage),
		unselected: NewImage(CheckboxUnselectedImage),
	}
	ui.selected.SetConfig(Origin, image.Pt(2, 2))
	ui.unselected.SetConfig(Origin, image.Pt(2, 2))
	ui.text.SetConfig(Origin, image.Pt(checkboxTextX, 0))
	ui.setChecked(checked)
	return ui
}

// Selected reports whether the checkbox is checked.
func (ui *Checkbox) Selected() bool {
	return ui.checked
}

// SetSelected changes the state without producing an event.
func (ui *Checkbox) SetSelected(checked bool) {
	if checked != ui.checked {
		ui.setChecked(checked)
		Invalidate(ui)
	}
}

func (ui *Checkbox) setChecked(checked bool) {
	ui.checked = checked
	ui.selected.SetConfig(WidgetHidden, !checked)
	ui.unselected.SetConfig(WidgetHidden, checked)
}

func (ui *Checkbox) Text() *TextWidget {
	return ui.text
}

// SetConfig stores the setting and passes it on to the parts of the checkbox.
// A new body size also places the state image: as high as the body when that
// is under 32 pixels, otherwise 32x32 at the left edge, vertically centered.
func (ui *Checkbox) SetConfig(key ConfigKey, v interface{}) {
	ui.config.Set(key, v)
	switch key {
	case Origin, PreferredOrigin, PreferredSize, WidgetHidden:
	case MainColor, BorderColor, BorderWidth:
		ui.box.SetConfig(key, v)
	case TextColor:
		ui.text.SetConfig(key, v)
	case BodySize:
		size := ui.config.Point(BodySize)
		ui.box.SetConfig(BodySize, size)
		ui.text.SetConfig(BodySize, image.Pt(maximum(0, size.X-checkboxTextX), size.Y))
		for _, img := range []*ImageWidget{ui.selected, ui.unselected} {
			if size.Y < 32 {
				img.SetConfig(BodySize, image.Pt(size.Y, size.Y))
			} else {
				img.SetConfig(Origin, image.Pt(0, (size.Y-32)/2))
				img.SetConfig(BodySize, image.Pt(32, 32))
			}
		}
	default:
		ui.box.SetConfig(key, v)
		ui.text.SetConfig(key, v)
		ui.selected.SetConfig(key, v)
		ui.unselected.SetConfig(key, v)
	}
}

func (ui *Checkbox) Draw(c *Canvas) {
	drawSub(c, ui.box)
	drawSub(c, ui.selected)
	drawSub(c, ui.unselected)
	drawSub(c, ui.text)
	ui.config.Remove(Invalidated)
}

func (ui *Checkbox) HandleEvent(injected bool, e Event, store *Store) *Event {
	if injected || e.Button != Button1 {
		return nil
	}
	switch e.Kind {
	case MouseButtonDown:
		ui.pressed = true
		return nil
	case MouseButtonUpOutside:
		ui.pressed = false
		return nil
	case MouseButtonUpInside:
		if !ui.pressed {
			return nil
		}
		ui.pressed = false
	default:
		return nil
	}
	ui.setChecked(!ui.checked)
	Invalidate(ui)
	sel := Event{Kind: WidgetSelected, WidgetID: ui.id, Point: e.Point, Button: e.Button, Selected: ui.checked}
	ui.callbacks.Invoke(ui, store, sel)
	return &sel
}
