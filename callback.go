package duitkit

// Callback is a user handler attached to a widget. It gets the widget it is
// attached to, the store the widget lives in (nil when the widget was handed an
// event outside a store), and the event that caused the call.
type Callback func(w Widget, store *Store, e Event)

// Callbacks maps event kinds to at most one handler each.
type Callbacks struct {
	m   map[EventKind]Callback
	gen map[EventKind]int // Bumped by every Set, to detect changes made by a running handler.
}

// Set registers fn for kind, replacing any earlier handler. A nil fn removes
// the handler.
func (c *Callbacks) Set(kind EventKind, fn Callback) {
	if c.gen == nil {
		c.gen = map[EventKind]int{}
	}
	c.gen[kind]++
	if fn == nil {
		delete(c.m, kind)
		return
	}
	if c.m == nil {
		c.m = map[EventKind]Callback{}
	}
	c.m[kind] = fn
}

func (c *Callbacks) Has(kind EventKind) bool {
	_, ok := c.m[kind]
	return ok
}

// Invoke calls the handler for e.Kind, if any, and reports whether one ran.
// The handler is taken out of the registry while it runs, so it can replace or
// remove itself; it is only put back if it did neither.
func (c *Callbacks) Invoke(w Widget, store *Store, e Event) bool {
	fn, ok := c.m[e.Kind]
	if !ok {
		return false
	}
	gen := c.gen[e.Kind]
	delete(c.m, e.Kind)
	defer func() {
		if c.gen[e.Kind] == gen {
			c.m[e.Kind] = fn
		}
	}()
	fn(w, store, e)
	return true
}
