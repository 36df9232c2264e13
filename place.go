package duitkit

import (
	"image"
)

// PlaceLayout leaves children where they were put with SetOrigin and only
// clips them to the container interior. Clipping never moves the preferred
// origin, so growing the container again restores the children. Origins are relative to the
// container, not to the padding.
type PlaceLayout struct {
	Container ID
	Padding   Space
}

var _ LayoutManager = &PlaceLayout{}

func NewPlaceLayout(container ID) *PlaceLayout {
	return &PlaceLayout{Container: container}
}

func (l *PlaceLayout) ContainerID() ID {
	return l.Container
}

func (l *PlaceLayout) DoLayout(ids []ID, positions []image.Point, store *Store) {
	in, ok := containerInterior(store, l.Container, l.Padding)
	if ok {
		l.place(in, ids, positions, store)
	}
}

func (l *PlaceLayout) Resize(size image.Point, ids []ID, positions []image.Point, store *Store) {
	l.place(l.Padding.Inset(rect(size)), ids, positions, store)
}

func (l *PlaceLayout) place(in image.Rectangle, ids []ID, positions []image.Point, store *Store) {
	for i, id := range ids {
		w, err := store.Get(id)
		if err != nil || i >= len(positions) {
			continue
		}
		c := w.Config()
		if !c.Contains(PreferredOrigin) {
			c.Set(PreferredOrigin, positions[i])
		}
		r := rect(c.Point(PreferredSize)).Add(c.Point(PreferredOrigin))
		place(store, w, clampRect(r, in))
	}
}
