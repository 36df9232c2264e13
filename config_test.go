package duitkit

import (
	"image"
	"testing"

	"9fans.net/go/draw"
)

func TestConfigDefaults(t *testing.T) {
	var c Config
	if got := c.Point(Origin); got != image.ZP {
		t.Errorf("Origin = %v, want (0,0)", got)
	}
	if got := c.Color(MainColor); got != White {
		t.Errorf("MainColor = %v, want white", got)
	}
	for _, k := range []ConfigKey{TextColor, BorderColor} {
		if got := c.Color(k); got != Black {
			t.Errorf("%s = %v, want black", k, got)
		}
	}
	if got := c.Int(BorderWidth); got != 0 {
		t.Errorf("BorderWidth = %d, want 0", got)
	}
	if c.Toggle(Invalidated) || c.Toggle(WidgetHidden) {
		t.Errorf("flags set on empty config")
	}

	c.Set(BodySize, image.Pt(3, 4))
	if got := c.Point(PreferredSize); got != image.Pt(3, 4) {
		t.Errorf("PreferredSize = %v, want BodySize", got)
	}
	c.Set(PreferredSize, image.Pt(5, 6))
	if got := c.Point(PreferredSize); got != image.Pt(5, 6) {
		t.Errorf("PreferredSize = %v, want (5,6)", got)
	}
}

func TestConfigFlags(t *testing.T) {
	var c Config
	c.Set(WidgetHidden, true)
	if !c.Toggle(WidgetHidden) {
		t.Errorf("flag not set")
	}
	c.Set(WidgetHidden, false)
	if c.Toggle(WidgetHidden) || c.Contains(WidgetHidden) {
		t.Errorf("flag set to false still present")
	}
	c.Set(Invalidated, true)
	c.Remove(Invalidated)
	if _, ok := c.Get(Invalidated); ok {
		t.Errorf("Get after Remove found a value")
	}

	w := NewCanvasWidget()
	SetHidden(w, true)
	SetHidden(w, false)
	if w.Config().Contains(WidgetHidden) {
		t.Errorf("Contains(WidgetHidden) after SetHidden false")
	}
}

func TestConfigNoInvalidate(t *testing.T) {
	w := NewCanvasWidget()
	w.Config().Set(MainColor, Black)
	if IsInvalidated(w) {
		t.Errorf("Config.Set invalidated the widget")
	}
	SetColor(w, Black)
	if !IsInvalidated(w) {
		t.Errorf("SetColor did not invalidate")
	}
}

func TestCallbacks(t *testing.T) {
	w := NewCanvasWidget()
	var calls []string
	OnMouseMoved(w, func(w Widget, store *Store, e Event) { calls = append(calls, "first") })
	OnMouseMoved(w, func(w Widget, store *Store, e Event) { calls = append(calls, "second") })
	if !w.Callbacks().Invoke(w, nil, Event{Kind: MouseMoved}) {
		t.Errorf("Invoke reported no handler")
	}
	if w.Callbacks().Invoke(w, nil, Event{Kind: MouseScrolled}) {
		t.Errorf("Invoke reported a handler for unregistered kind")
	}
	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("calls = %v, want [second]", calls)
	}
}

func TestCallbackReplaceWhileRunning(t *testing.T) {
	w := NewCanvasWidget()
	n := 0
	var self Callback
	self = func(w Widget, store *Store, e Event) {
		n++
		w.Callbacks().Set(KeyPressed, nil)
	}
	w.Callbacks().Set(KeyPressed, self)
	w.Callbacks().Invoke(w, nil, Event{Kind: KeyPressed})
	if w.Callbacks().Has(KeyPressed) {
		t.Errorf("handler that removed itself was put back")
	}

	w.Callbacks().Set(KeyPressed, func(w Widget, store *Store, e Event) {
		w.Callbacks().Set(KeyPressed, func(w Widget, store *Store, e Event) { n += 10 })
	})
	w.Callbacks().Invoke(w, nil, Event{Kind: KeyPressed})
	w.Callbacks().Invoke(w, nil, Event{Kind: KeyPressed})
	if n != 11 {
		t.Errorf("n = %d, want 11", n)
	}

	// A handler that leaves the registry alone stays registered.
	OnMouseEntered(w, func(w Widget, store *Store, e Event) {})
	w.Callbacks().Invoke(w, nil, Event{Kind: MouseEntered})
	if !w.Callbacks().Has(MouseEntered) {
		t.Errorf("handler lost after running")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		s    string
		want draw.Color
		err  bool
	}{
		{"#ffffff", White, false},
		{"#000000ff", Black, false},
		{"3272dc", 0x3272dcff, false},
		{"#00000000", Transparent, false},
		{"#fff", 0, true},
		{"#gggggg", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.s)
		if (err != nil) != tc.err || got != tc.want {
			t.Errorf("ParseColor(%q) = %v, %v, want %v, error %v", tc.s, got, err, tc.want, tc.err)
		}
	}
}
