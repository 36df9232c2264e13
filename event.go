package duitkit

import (
	"fmt"
	"image"
)

// Mouse buttons, as bits in a plan9 mouse state.
const (
	Button1 = 1 << iota // Left.
	Button2
	Button3
	Button4 // Wheel up.
	Button5 // Wheel down.
)

// EventKind is the kind of a widget event. Callbacks are registered per kind.
type EventKind int

const (
	KeyPressed EventKind = iota
	MouseEntered
	MouseExited
	MouseScrolled
	MouseMoved
	MouseButtonDown
	MouseButtonUpInside
	MouseButtonUpOutside

	// Derived events, returned by widgets from HandleEvent.
	WidgetClicked
	WidgetSelected
)

var eventKindNames = [...]string{
	"KeyPressed",
	"MouseEntered",
	"MouseExited",
	"MouseScrolled",
	"MouseMoved",
	"MouseButtonDown",
	"MouseButtonUpInside",
	"MouseButtonUpOutside",
	"WidgetClicked",
	"WidgetSelected",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is delivered to a widget, or returned by one as a derived event.
// Fields that do not apply to Kind are zero.
type Event struct {
	Kind     EventKind
	WidgetID ID
	Point    image.Point // Pointer position in window coordinates.
	Button   int         // Button1..Button5.
	Delta    image.Point // Scroll amount, for MouseScrolled.
	Key      rune        // For KeyPressed.
	KeyDown  bool        // For KeyPressed, false on release.
	Selected bool        // For WidgetSelected.
}

func (e Event) String() string {
	switch e.Kind {
	case MouseButtonDown, MouseButtonUpInside, MouseButtonUpOutside, WidgetClicked:
		return fmt.Sprintf("%s{widget %d, button %d}", e.Kind, e.WidgetID, e.Button)
	case WidgetSelected:
		return fmt.Sprintf("%s{widget %d, selected %v}", e.Kind, e.WidgetID, e.Selected)
	case KeyPressed:
		return fmt.Sprintf("%s{widget %d, key %q, down %v}", e.Kind, e.WidgetID, e.Key, e.KeyDown)
	}
	return fmt.Sprintf("%s{widget %d, %v}", e.Kind, e.WidgetID, e.Point)
}

// InputType is the kind of a raw input.
type InputType byte

const (
	InputMove = InputType(iota)
	InputButtonDown
	InputButtonUp
	InputKeyDown
	InputKeyUp
	InputScroll
)

var inputTypeNames = [...]string{"move", "buttondown", "buttonup", "keydown", "keyup", "scroll"}

func (t InputType) String() string {
	if int(t) < len(inputTypeNames) {
		return inputTypeNames[t]
	}
	return fmt.Sprintf("InputType(%d)", t)
}

// Input is a normalized raw input event in window coordinates, as delivered
// by a backend.
type Input struct {
	Type   InputType
	Point  image.Point
	Button int
	Key    rune
	Delta  image.Point
}
