package duitkit

import (
	"image"
)

// DefaultGutter is the space between children of the flow layouts, in pixels.
const DefaultGutter = 5

// LayoutManager arranges the children of one container widget. It only knows
// the container by ID and changes children through the store.
//
// DoLayout runs after children were added or removed, Resize after the
// container got a new size. ids are the children in draw order, positions
// their current origins. Both must be idempotent: running them again on the
// same input changes nothing.
type LayoutManager interface {
	ContainerID() ID
	DoLayout(ids []ID, positions []image.Point, store *Store)
	Resize(size image.Point, ids []ID, positions []image.Point, store *Store)
}

// place gives w the bounds r, relative to its container. Nothing is changed or
// invalidated when w is already there. The preferred size is remembered before
// the first change, so clipping does not shrink later layouts. When w is a
// container that got a new size, its own layout is resized too.
func place(store *Store, w Widget, r image.Rectangle) {
	c := w.Config()
	if !c.Contains(PreferredSize) {
		c.Set(PreferredSize, c.Point(BodySize))
	}
	resized := c.Point(BodySize) != r.Size()
	if c.Point(Origin) == r.Min && !resized {
		return
	}
	w.SetConfig(Origin, r.Min)
	w.SetConfig(BodySize, r.Size())
	Invalidate(w)
	if resized {
		store.resized(w.ID())
	}
}

func containerInterior(store *Store, container ID, padding Space) (image.Rectangle, bool) {
	w, err := store.Get(container)
	if err != nil {
		return image.ZR, false
	}
	return padding.Inset(rect(GetSize(w))), true
}
