package duitkit

import (
	"image"
	"math/rand"
	"reflect"
	"testing"

	"9fans.net/go/draw"
)

func move(p image.Point) Input {
	return Input{Type: InputMove, Point: p}
}

func down(p image.Point) Input {
	return Input{Type: InputButtonDown, Point: p, Button: Button1}
}

func up(p image.Point) Input {
	return Input{Type: InputButtonUp, Point: p, Button: Button1}
}

func kinds(events []Event) []EventKind {
	var l []EventKind
	for _, e := range events {
		l = append(l, e.Kind)
	}
	return l
}

// newButton returns a session on a store with a single push button at (10,10)
// of 100x30, and a pointer to the number of clicks.
func newButton(t *testing.T) (*Session, *PushButton, *int) {
	t.Helper()
	s := NewStore()
	b := NewPushButton(Font{}, "ok", JustifyCenter)
	SetOrigin(b, image.Pt(10, 10))
	SetSize(b, image.Pt(100, 30))
	s.Add(b)
	clicks := 0
	OnClick(b, func(w Widget, store *Store, e Event) {
		clicks++
	})
	return NewSession(s), b, &clicks
}

func buttonColors(b *PushButton) (main, text draw.Color) {
	return b.box.Config().Color(MainColor), b.text.Config().Color(TextColor)
}

func TestPushButtonClick(t *testing.T) {
	ss, b, clicks := newButton(t)
	p := image.Pt(50, 20)

	if events := ss.Dispatch(down(p)); len(events) != 0 {
		t.Errorf("events on down = %v, want none", events)
	}
	if b.State() != ButtonPressed {
		t.Errorf("state after down = %v, want pressed", b.State())
	}
	if ss.Captured() != b.ID() {
		t.Errorf("captured = %d, want %d", ss.Captured(), b.ID())
	}
	if main, text := buttonColors(b); main != Black || text != White {
		t.Errorf("pressed colors = %v %v, want inverted", main, text)
	}

	events := ss.Dispatch(up(p))
	if got, want := kinds(events), []EventKind{WidgetClicked}; !reflect.DeepEqual(got, want) {
		t.Errorf("events on up = %v, want %v", got, want)
	}
	if len(events) == 1 && (events[0].WidgetID != b.ID() || events[0].Button != Button1) {
		t.Errorf("click event = %v, want widget %d button 1", events[0], b.ID())
	}
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}
	if b.State() != ButtonHovered {
		t.Errorf("state after up = %v, want hovered", b.State())
	}
	if main, text := buttonColors(b); main != White || text != Black {
		t.Errorf("colors after click = %v %v, want restored", main, text)
	}
	if ss.Captured() != NoID {
		t.Errorf("capture not released")
	}
}

func TestPushButtonCancel(t *testing.T) {
	ss, b, clicks := newButton(t)
	in := image.Pt(50, 20)
	out := image.Pt(200, 200)

	ss.Dispatch(down(in))
	ss.Dispatch(move(out))
	if ss.Hovered() != NoID {
		t.Errorf("hovered outside captured widget = %d, want none", ss.Hovered())
	}
	if main, _ := buttonColors(b); main != White {
		t.Errorf("colors not restored when pointer left a pressed button")
	}
	ss.Dispatch(move(in))
	if main, _ := buttonColors(b); main != Black {
		t.Errorf("colors not inverted when pointer came back")
	}
	ss.Dispatch(move(out))

	if events := ss.Dispatch(up(out)); len(events) != 0 {
		t.Errorf("events on release outside = %v, want none", events)
	}
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
	if b.State() != ButtonIdle {
		t.Errorf("state = %v, want idle", b.State())
	}

	// Releasing back inside after returning is a click.
	ss.Dispatch(down(in))
	ss.Dispatch(move(out))
	ss.Dispatch(move(in))
	ss.Dispatch(up(in))
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}
}

func TestCheckboxToggle(t *testing.T) {
	s := NewStore()
	cb := NewCheckbox(Font{}, "check", false)
	SetSize(cb, image.Pt(200, 32))
	id := s.Add(cb)
	var got []bool
	OnSelected(cb, func(w Widget, store *Store, e Event) {
		got = append(got, e.Selected)
	})
	ss := NewSession(s)
	p := image.Pt(5, 5)

	for i := 0; i < 2; i++ {
		ss.Dispatch(down(p))
		events := ss.Dispatch(up(p))
		want := []Event{{Kind: WidgetSelected, WidgetID: id, Point: p, Button: Button1, Selected: i == 0}}
		if !reflect.DeepEqual(events, want) {
			t.Errorf("click %d: events %v, want %v", i, events, want)
		}
	}
	if !reflect.DeepEqual(got, []bool{true, false}) {
		t.Errorf("callback saw %v, want [true false]", got)
	}
	if cb.Selected() {
		t.Errorf("checkbox selected after two clicks")
	}
	if cb.unselected.Config().Toggle(WidgetHidden) || !cb.selected.Config().Toggle(WidgetHidden) {
		t.Errorf("wrong state image visible")
	}

	// Releasing outside does not toggle.
	ss.Dispatch(down(p))
	ss.Dispatch(up(image.Pt(300, 5)))
	if cb.Selected() {
		t.Errorf("checkbox toggled by release outside")
	}
}

func TestCheckboxSizes(t *testing.T) {
	cb := NewCheckbox(Font{}, "check", true)
	SetSize(cb, image.Pt(200, 20))
	if got := GetSize(cb.selected); got != image.Pt(20, 20) {
		t.Errorf("image size for 20 high = %v, want 20x20", got)
	}
	SetSize(cb, image.Pt(200, 40))
	if got := bounds(cb.selected); got != image.Rect(0, 4, 32, 36) {
		t.Errorf("image bounds for 40 high = %v, want 32x32 centered", got)
	}
	if got := bounds(cb.text); got != image.Rect(38, 0, 200, 40) {
		t.Errorf("text bounds = %v, want right of image", got)
	}
}

func TestReleaseWithoutPress(t *testing.T) {
	cb := NewCheckbox(Font{}, "check", false)
	r := NewRadioButton(Font{}, "radio", nil)
	tests := []struct {
		name     string
		widget   Widget
		selected func() bool
	}{
		{"checkbox", cb, cb.Selected},
		{"radio", r, r.Selected},
	}

	for _, tt := range tests {
		s := NewStore()
		SetSize(tt.widget, image.Pt(200, 32))
		s.Add(tt.widget)
		ss := NewSession(s)

		// Pressed over nothing, released over the widget.
		ss.Dispatch(down(image.Pt(250, 5)))
		if events := ss.Dispatch(up(image.Pt(5, 5))); len(events) != 0 {
			t.Errorf("%s: events %v for release without press, want none", tt.name, events)
		}
		if tt.selected() {
			t.Errorf("%s: selected by release without press", tt.name)
		}

		// The widget itself wants a press of its own, injected ones do not count.
		if _, err := ss.Inject(tt.widget.ID(), Event{Kind: MouseButtonDown, Button: Button1}); err != nil {
			t.Fatal(err)
		}
		if e := tt.widget.HandleEvent(false, Event{Kind: MouseButtonUpInside, Button: Button1}, s); e != nil {
			t.Errorf("%s: derived %v from release without press", tt.name, *e)
		}
		if tt.selected() {
			t.Errorf("%s: selected after injected press", tt.name)
		}

		ss.Dispatch(down(image.Pt(5, 5)))
		ss.Dispatch(up(image.Pt(5, 5)))
		if !tt.selected() {
			t.Errorf("%s: not selected after press and release", tt.name)
		}
	}
}

func TestEnterExit(t *testing.T) {
	s := NewStore()
	a := newSized(image.Pt(0, 0), image.Pt(50, 50))
	b := newSized(image.Pt(50, 0), image.Pt(50, 50))
	s.Add(a)
	s.Add(b)
	var log []string
	for _, w := range []Widget{a, b} {
		name := map[Widget]string{a: "a", b: "b"}[w]
		OnMouseEntered(w, func(w Widget, store *Store, e Event) { log = append(log, "enter "+name) })
		OnMouseExited(w, func(w Widget, store *Store, e Event) { log = append(log, "exit "+name) })
	}
	ss := NewSession(s)
	for _, p := range []image.Point{{10, 10}, {20, 10}, {60, 10}, {200, 10}, {60, 10}} {
		ss.Dispatch(move(p))
	}
	want := []string{"enter a", "exit a", "enter b", "exit b", "enter b"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestCaptureRouting(t *testing.T) {
	s := NewStore()
	a := newSized(image.Pt(0, 0), image.Pt(50, 50))
	b := newSized(image.Pt(50, 0), image.Pt(50, 50))
	s.Add(a)
	s.Add(b)
	seen := map[ID][]EventKind{}
	for _, w := range []Widget{a, b} {
		for _, k := range []EventKind{MouseEntered, MouseExited, MouseMoved, MouseButtonDown, MouseButtonUpInside, MouseButtonUpOutside, MouseScrolled, KeyPressed} {
			w.Callbacks().Set(k, func(w Widget, store *Store, e Event) {
				seen[w.ID()] = append(seen[w.ID()], e.Kind)
			})
		}
	}
	ss := NewSession(s)
	ss.Dispatch(down(image.Pt(10, 10)))
	ss.Dispatch(move(image.Pt(60, 10)))
	ss.Dispatch(Input{Type: InputScroll, Point: image.Pt(60, 10), Delta: image.Pt(0, 1)})
	ss.Dispatch(Input{Type: InputKeyDown, Point: image.Pt(60, 10), Key: 'x'})
	ss.Dispatch(up(image.Pt(60, 10)))

	wantA := []EventKind{MouseEntered, MouseButtonDown, MouseExited, MouseMoved, MouseScrolled, KeyPressed, MouseButtonUpOutside}
	if !reflect.DeepEqual(seen[a.ID()], wantA) {
		t.Errorf("a saw %v, want %v", seen[a.ID()], wantA)
	}
	// b is only entered after the capture is released.
	wantB := []EventKind{MouseEntered}
	if !reflect.DeepEqual(seen[b.ID()], wantB) {
		t.Errorf("b saw %v, want %v", seen[b.ID()], wantB)
	}
	if ss.Hovered() != b.ID() {
		t.Errorf("hovered = %d, want %d", ss.Hovered(), b.ID())
	}

	// Without capture, keys go to the hovered widget.
	ss.Dispatch(Input{Type: InputKeyDown, Point: image.Pt(60, 10), Key: 'y'})
	if got := seen[b.ID()]; got[len(got)-1] != KeyPressed {
		t.Errorf("b did not get key, saw %v", got)
	}
}

func TestSecondButtonDuringCapture(t *testing.T) {
	ss, b, clicks := newButton(t)
	p := image.Pt(50, 20)
	ss.Dispatch(down(p))
	ss.Dispatch(Input{Type: InputButtonDown, Point: p, Button: Button3})
	ss.Dispatch(Input{Type: InputButtonUp, Point: p, Button: Button3})
	if ss.Captured() != b.ID() {
		t.Errorf("capture released by other button")
	}
	ss.Dispatch(up(p))
	if *clicks != 1 || ss.Captured() != NoID {
		t.Errorf("clicks %d, captured %d, want 1 and none", *clicks, ss.Captured())
	}
}

func TestRemoveInCallback(t *testing.T) {
	ss, b, _ := newButton(t)
	OnClick(b, func(w Widget, store *Store, e Event) {
		if err := store.Remove(w.ID()); err != nil {
			t.Errorf("Remove: %v", err)
		}
	})
	p := image.Pt(50, 20)
	ss.Dispatch(down(p))
	events := ss.Dispatch(up(p))
	if got, want := kinds(events), []EventKind{WidgetClicked}; !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if ss.Hovered() != NoID || ss.Captured() != NoID {
		t.Errorf("hovered %d, captured %d after removal, want none", ss.Hovered(), ss.Captured())
	}
	if events := ss.Dispatch(move(image.Pt(51, 20))); len(events) != 0 {
		t.Errorf("events after removal = %v, want none", events)
	}
	if n := ss.Redraw(&recordSink{}); n != 0 {
		t.Errorf("redraw after removal drew %d, want 0", n)
	}
}

func TestHideInCallback(t *testing.T) {
	ss, b, clicks := newButton(t)
	OnClick(b, func(w Widget, store *Store, e Event) {
		*clicks++
		SetHidden(w, true)
	})
	p := image.Pt(50, 20)
	ss.Input(down(p), &recordSink{})
	sink := &recordSink{}
	ss.Input(up(p), sink)
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}
	if len(sink.calls) != 0 {
		t.Errorf("hidden button drawn: %v", sink.calls)
	}
	if ss.Hovered() != NoID {
		t.Errorf("hidden button still hovered")
	}
	ss.Dispatch(down(p))
	ss.Dispatch(up(p))
	if *clicks != 1 {
		t.Errorf("hidden button clicked")
	}
}

func TestInject(t *testing.T) {
	ss, b, clicks := newButton(t)
	var got []EventKind
	b.Callbacks().Set(MouseButtonDown, func(w Widget, store *Store, e Event) {
		got = append(got, e.Kind)
	})
	events, err := ss.Inject(b.ID(), Event{Kind: MouseButtonDown, Button: Button1})
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if len(events) != 0 || b.State() != ButtonIdle {
		t.Errorf("injected down: events %v, state %v, want none and idle", events, b.State())
	}
	if !reflect.DeepEqual(got, []EventKind{MouseButtonDown}) {
		t.Errorf("callback saw %v, want down", got)
	}
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
	if _, err := ss.Inject(42, Event{}); err == nil {
		t.Errorf("Inject to unknown widget succeeded")
	}
}

// panel records injected events from its descendants, and turns clicks into
// selections.
type panel struct {
	Base
	seen []Event
}

func (ui *panel) HandleEvent(injected bool, e Event, store *Store) *Event {
	if !injected {
		return nil
	}
	ui.seen = append(ui.seen, e)
	if e.Kind == WidgetClicked {
		return &Event{Kind: WidgetSelected, WidgetID: ui.id, Selected: true}
	}
	return nil
}

func TestBubble(t *testing.T) {
	s := NewStore()
	outer := &panel{}
	SetSize(outer, image.Pt(200, 200))
	outerID := s.Add(outer)
	inner := &panel{}
	SetSize(inner, image.Pt(200, 200))
	innerID := mustAdd(t, s, inner, outerID)
	b := NewPushButton(Font{}, "ok", JustifyCenter)
	SetOrigin(b, image.Pt(10, 10))
	SetSize(b, image.Pt(100, 30))
	mustAdd(t, s, b, innerID)

	ss := NewSession(s)
	p := image.Pt(50, 20)
	ss.Dispatch(down(p))
	events := ss.Dispatch(up(p))
	if got, want := kinds(events), []EventKind{WidgetClicked, WidgetSelected}; !reflect.DeepEqual(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if events[1].WidgetID != innerID {
		t.Errorf("selection from %d, want %d", events[1].WidgetID, innerID)
	}
	if got, want := kinds(inner.seen), []EventKind{WidgetClicked}; !reflect.DeepEqual(got, want) {
		t.Errorf("inner saw %v, want %v", got, want)
	}
	if got, want := kinds(outer.seen), []EventKind{WidgetSelected}; !reflect.DeepEqual(got, want) {
		t.Errorf("outer saw %v, want %v", got, want)
	}
}

func TestMouseInputs(t *testing.T) {
	p := image.Pt(5, 5)
	tests := []struct {
		prev int
		last image.Point
		m    draw.Mouse
		want []Input
	}{
		{0, p, draw.Mouse{Point: p}, nil},
		{0, image.ZP, draw.Mouse{Point: p}, []Input{{Type: InputMove, Point: p}}},
		{0, p, draw.Mouse{Point: p, Buttons: Button1}, []Input{{Type: InputButtonDown, Point: p, Button: Button1}}},
		{Button1 | Button3, p, draw.Mouse{Point: p, Buttons: Button3}, []Input{{Type: InputButtonUp, Point: p, Button: Button1}}},
		{0, p, draw.Mouse{Point: p, Buttons: Button4}, []Input{{Type: InputScroll, Point: p, Delta: image.Pt(0, -1)}}},
		{Button4, p, draw.Mouse{Point: p, Buttons: Button4}, nil},
		{0, image.ZP, draw.Mouse{Point: p, Buttons: Button5}, []Input{{Type: InputMove, Point: p}, {Type: InputScroll, Point: p, Delta: image.Pt(0, 1)}}},
	}
	for i, tc := range tests {
		got := MouseInputs(tc.prev, tc.last, tc.m)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%d: MouseInputs = %v, want %v", i, got, tc.want)
		}
	}
}

func TestSessionMouse(t *testing.T) {
	ss, _, clicks := newButton(t)
	p := image.Pt(50, 20)
	ss.Mouse(draw.Mouse{Point: p})
	ss.Mouse(draw.Mouse{Point: p, Buttons: Button1})
	ss.Mouse(draw.Mouse{Point: p.Add(image.Pt(1, 0)), Buttons: Button1})
	events := ss.Mouse(draw.Mouse{Point: p})
	if got, want := kinds(events), []EventKind{WidgetClicked}; !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}
}

func TestSessionClose(t *testing.T) {
	ss, _, _ := newButton(t)
	ss.Dispatch(down(image.Pt(50, 20)))
	ss.Close()
	if ss.Hovered() != NoID || ss.Captured() != NoID {
		t.Errorf("state kept after close")
	}
	if events := ss.Dispatch(up(image.Pt(50, 20))); events != nil {
		t.Errorf("events after close = %v, want none", events)
	}
}

func TestEnterExitRandomWalk(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := NewStore()
		root := s.Add(newSized(image.ZP, image.Pt(200, 200)))
		a := mustAdd(t, s, newSized(image.Pt(20, 20), image.Pt(100, 100)), root)
		a1 := mustAdd(t, s, newSized(image.Pt(10, 10), image.Pt(40, 40)), a)
		b := mustAdd(t, s, newSized(image.Pt(60, 60), image.Pt(100, 100)), root)
		top := s.Add(newSized(image.Pt(150, 150), image.Pt(80, 80)))
		all := []ID{root, a, a1, b, top}

		balance := map[ID]int{}
		for _, id := range all {
			w, _ := s.Get(id)
			OnMouseEntered(w, func(w Widget, store *Store, e Event) { balance[w.ID()]++ })
			OnMouseExited(w, func(w Widget, store *Store, e Event) { balance[w.ID()]-- })
		}
		ss := NewSession(s)
		buttons := []int{Button1, Button2, Button3}
		for step := 0; step < 300; step++ {
			p := image.Pt(rng.Intn(260)-10, rng.Intn(260)-10)
			switch op := rng.Intn(10); {
			case op < 6:
				ss.Dispatch(move(p))
			case op < 7:
				ss.Dispatch(Input{Type: InputButtonDown, Point: p, Button: buttons[rng.Intn(3)]})
			case op < 8:
				ss.Dispatch(Input{Type: InputButtonUp, Point: p, Button: buttons[rng.Intn(3)]})
			case op < 9:
				id := all[rng.Intn(len(all))]
				if w, err := s.Get(id); err == nil {
					SetHidden(w, !w.Config().Toggle(WidgetHidden))
				}
			default:
				// Removing a widget ends its hover without an exit.
				id := all[rng.Intn(len(all))]
				if id == root || !s.Contains(id) || rng.Intn(4) != 0 {
					break
				}
				s.Remove(id)
				ss.Dispatch(move(p))
				for _, x := range all {
					if !s.Contains(x) {
						balance[x] = 0
					}
				}
			}

			hovered := 0
			for _, id := range all {
				switch n := balance[id]; n {
				case 0:
				case 1:
					hovered++
					if ss.Hovered() != id {
						t.Fatalf("seed %d step %d: %d entered but hovered is %d", seed, step, id, ss.Hovered())
					}
				default:
					t.Fatalf("seed %d step %d: widget %d entered-exited = %d", seed, step, id, n)
				}
			}
			if hovered == 0 && ss.Hovered() != NoID {
				t.Fatalf("seed %d step %d: hovered %d without enter", seed, step, ss.Hovered())
			}
			if c := ss.Captured(); c != NoID && ss.Hovered() != NoID && ss.Hovered() != c {
				t.Fatalf("seed %d step %d: hovered %d during capture by %d", seed, step, ss.Hovered(), c)
			}
		}
	}
}
