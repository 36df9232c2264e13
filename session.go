package duitkit

import (
	"image"
	"log"
	"time"

	"9fans.net/go/draw"
)

// Session is the input state of one window: which widget the pointer is over,
// which widget holds the pointer capture, and where the pointer was last seen.
// It turns raw inputs into widget events, and drives redraws.
//
// Pressing a button over a widget captures the pointer for that widget: until
// that button is released, pointer and key events go to it no matter where
// the pointer is, and no other widget is entered.
//
// A Session must only be used from a single goroutine, the one running the
// window's event loop. Callbacks run from inside Dispatch, and may change the
// store freely.
type Session struct {
	Store *Store

	LogInputs bool // Log every raw input.
	LogTiming bool // Log how long dispatches and redraws take.

	// DebugKeys enables function keys for debugging: F1 toggles LogInputs, F2
	// LogTiming, F3 logs the widget tree, F6 invalidates all widgets, F7
	// cycles Store.DebugDraw, F8 toggles Store.DebugLayout. These keys are not delivered to widgets.
	DebugKeys bool

	hover         ID
	capture       ID
	captureButton int
	buttons       int // Held plan9 buttons, for Mouse.
	last          image.Point
	closed        bool
}

// NewSession starts a session for the widgets in store.
func NewSession(store *Store) *Session {
	return &Session{Store: store}
}

// Hovered returns the widget under the pointer, NoID if none.
func (s *Session) Hovered() ID {
	return s.hover
}

// Captured returns the widget holding the pointer capture, NoID if none.
func (s *Session) Captured() ID {
	return s.capture
}

func (s *Session) LastPoint() image.Point {
	return s.last
}

// Close ends the session. Further inputs are ignored.
func (s *Session) Close() {
	s.hover = NoID
	s.capture = NoID
	s.captureButton = 0
	s.buttons = 0
	s.closed = true
}

// Input dispatches in and then runs one redraw pass on sink, if not nil.
func (s *Session) Input(in Input, sink DrawSink) []Event {
	events := s.Dispatch(in)
	if sink != nil {
		s.Redraw(sink)
	}
	return events
}

// Redraw draws the invalidated widgets, see Store.Redraw.
func (s *Session) Redraw(sink DrawSink) int {
	var t0 time.Time
	if s.LogTiming {
		t0 = time.Now()
	}
	n := s.Store.Redraw(sink)
	if s.LogTiming {
		log.Printf("duitkit: time redraw: %d widgets, %d µs\n", n, time.Since(t0)/time.Microsecond)
	}
	return n
}

// Dispatch handles one raw input completely and returns the derived events
// (e.g. WidgetClicked) widgets produced for it, including those returned by
// ancestors the events bubbled through.
func (s *Session) Dispatch(in Input) []Event {
	if s.closed {
		return nil
	}
	if s.LogInputs {
		log.Printf("duitkit: input %s %v button %d key %q delta %v\n", in.Type, in.Point, in.Button, in.Key, in.Delta)
	}
	var t0 time.Time
	if s.LogTiming {
		t0 = time.Now()
	}

	var out []Event
	switch in.Type {
	case InputMove:
		s.pointer(in.Point, &out)
		if target := s.target(); target != NoID {
			s.deliver(target, Event{Kind: MouseMoved, Point: in.Point}, &out)
		}

	case InputButtonDown:
		s.pointer(in.Point, &out)
		if s.capture == NoID {
			if s.hover == NoID {
				break
			}
			s.capture = s.hover
			s.captureButton = in.Button
		}
		s.deliver(s.capture, Event{Kind: MouseButtonDown, Point: in.Point, Button: in.Button}, &out)

	case InputButtonUp:
		s.pointer(in.Point, &out)
		if s.capture == NoID {
			// The button went down outside any widget.
			break
		}
		target := s.capture
		kind := MouseButtonUpOutside
		if s.inside(target, in.Point) {
			kind = MouseButtonUpInside
		}
		release := in.Button == s.captureButton
		s.deliver(target, Event{Kind: kind, Point: in.Point, Button: in.Button}, &out)
		if release {
			if s.capture == target {
				s.capture = NoID
				s.captureButton = 0
			}
			s.pointer(in.Point, &out)
		}

	case InputScroll:
		s.pointer(in.Point, &out)
		if target := s.target(); target != NoID {
			s.deliver(target, Event{Kind: MouseScrolled, Point: in.Point, Delta: in.Delta}, &out)
		}

	case InputKeyDown, InputKeyUp:
		if in.Type == InputKeyDown && s.DebugKeys && s.debugKey(in.Key) {
			break
		}
		if target := s.target(); target != NoID {
			s.deliver(target, Event{Kind: KeyPressed, Point: s.last, Key: in.Key, KeyDown: in.Type == InputKeyDown}, &out)
		}
	}

	if s.LogTiming {
		log.Printf("duitkit: time dispatch %s: %d µs\n", in.Type, time.Since(t0)/time.Microsecond)
	}
	return out
}

// Inject delivers e to widget id as an injected event, as if the toolkit
// generated it. Widgets do not change state for injected events, but the
// callback for e.Kind is called, and derived events bubble as usual.
func (s *Session) Inject(id ID, e Event) ([]Event, error) {
	w, err := s.Store.Get(id)
	if err != nil {
		return nil, err
	}
	parent, _ := s.Store.Parent(id)
	e.WidgetID = id
	var out []Event
	derived := w.HandleEvent(true, e, s.Store)
	w.Callbacks().Invoke(w, s.Store, e)
	if derived != nil {
		s.bubble(parent, *derived, &out)
	}
	return out, nil
}

// target is where pointer and key events go.
func (s *Session) target() ID {
	if s.capture != NoID {
		return s.capture
	}
	return s.hover
}

func (s *Session) inside(id ID, p image.Point) bool {
	b, err := s.Store.Bounds(id)
	return err == nil && p.In(b) && !s.Store.IsHidden(id)
}

// pointer records the pointer position and updates the hovered widget,
// delivering MouseExited and MouseEntered when it changes. During a capture,
// only the captured widget can be hovered.
func (s *Session) pointer(p image.Point, out *[]Event) {
	s.last = p
	next := NoID
	if s.capture != NoID {
		if s.inside(s.capture, p) {
			next = s.capture
		}
	} else if ids := s.Store.WidgetIDsAt(p); len(ids) > 0 {
		next = ids[0]
	}
	if next == s.hover {
		return
	}
	prev := s.hover
	s.hover = next
	if prev != NoID && s.Store.Contains(prev) {
		s.deliver(prev, Event{Kind: MouseExited, Point: p}, out)
	}
	if next != NoID && s.hover == next {
		s.deliver(next, Event{Kind: MouseEntered, Point: p}, out)
	}
}

// deliver hands e to widget id and then to its callback, and bubbles a derived
// event. A widget that is gone, or that its own handling removed, loses hover
// and capture.
func (s *Session) deliver(id ID, e Event, out *[]Event) {
	w, err := s.Store.Get(id)
	if err != nil {
		s.forget(id)
		return
	}
	parent, _ := s.Store.Parent(id)
	e.WidgetID = id
	derived := w.HandleEvent(false, e, s.Store)
	w.Callbacks().Invoke(w, s.Store, e)
	if derived != nil {
		s.bubble(parent, *derived, out)
	}
	if !s.Store.Contains(id) {
		s.forget(id)
	}
}

// bubble collects e and offers it to parent and its ancestors as an injected
// event. An ancestor returning an event of its own replaces e for the rest of
// the way up.
func (s *Session) bubble(parent ID, e Event, out *[]Event) {
	*out = append(*out, e)
	for p := parent; p != NoID; {
		w, err := s.Store.Get(p)
		if err != nil {
			return
		}
		next, _ := s.Store.Parent(p)
		if d := w.HandleEvent(true, e, s.Store); d != nil {
			e = *d
			*out = append(*out, e)
		}
		p = next
	}
}

func (s *Session) forget(id ID) {
	if s.hover == id {
		s.hover = NoID
	}
	if s.capture == id {
		s.capture = NoID
		s.captureButton = 0
	}
}

func (s *Session) debugKey(k rune) bool {
	switch k {
	case draw.KeyFn + 1:
		s.LogInputs = !s.LogInputs
		log.Printf("duitkit: logInputs now %v\n", s.LogInputs)
	case draw.KeyFn + 2:
		s.LogTiming = !s.LogTiming
		log.Printf("duitkit: logTiming now %v\n", s.LogTiming)
	case draw.KeyFn + 3:
		s.Store.Print()
	case draw.KeyFn + 6:
		log.Println("duitkit: invalidating all widgets")
		s.Store.Invalidate()
	case draw.KeyFn + 7:
		s.Store.DebugDraw = (s.Store.DebugDraw + 1) % 3
		log.Printf("duitkit: DebugDraw now %d\n", s.Store.DebugDraw)
	case draw.KeyFn + 8:
		s.Store.DebugLayout = !s.Store.DebugLayout
		log.Printf("duitkit: DebugLayout now %v\n", s.Store.DebugLayout)
	default:
		return false
	}
	return true
}

// Mouse dispatches a plan9 mouse state, as read from a mousectl. Changes
// against the previous state become a move, button downs and ups for buttons
// 1 to 3, and scrolls for the wheel buttons 4 and 5.
func (s *Session) Mouse(m draw.Mouse) []Event {
	var out []Event
	for _, in := range MouseInputs(s.buttons, s.last, m) {
		out = append(out, s.Dispatch(in)...)
	}
	s.buttons = m.Buttons
	return out
}

// MouseInputs returns the raw inputs for going from held buttons prev with the
// pointer at last, to mouse state m.
func MouseInputs(prev int, last image.Point, m draw.Mouse) []Input {
	var l []Input
	if m.Point != last {
		l = append(l, Input{Type: InputMove, Point: m.Point})
	}
	for _, b := range []int{Button1, Button2, Button3} {
		switch {
		case m.Buttons&b != 0 && prev&b == 0:
			l = append(l, Input{Type: InputButtonDown, Point: m.Point, Button: b})
		case m.Buttons&b == 0 && prev&b != 0:
			l = append(l, Input{Type: InputButtonUp, Point: m.Point, Button: b})
		}
	}
	if m.Buttons&Button4 != 0 && prev&Button4 == 0 {
		l = append(l, Input{Type: InputScroll, Point: m.Point, Delta: image.Pt(0, -1)})
	}
	if m.Buttons&Button5 != 0 && prev&Button5 == 0 {
		l = append(l, Input{Type: InputScroll, Point: m.Point, Delta: image.Pt(0, 1)})
	}
	return l
}
