package duitkit

import (
	"image"
)

// HorizontalLayout puts children next to each other, left to right, starting
// at the top-left of the container interior. Children keep their preferred
// width; their height is the preferred height limited to the interior height,
// or the full interior height when they prefer none. Children that do not fit
// are clipped at the right edge, never wrapped to a new row.
type HorizontalLayout struct {
	Container ID
	Gutter    int   // Pixels between children.
	Padding   Space // Inside the container, around all children.
}

var _ LayoutManager = &HorizontalLayout{}

func NewHorizontalLayout(container ID) *HorizontalLayout {
	return &HorizontalLayout{Container: container, Gutter: DefaultGutter}
}

func (l *HorizontalLayout) ContainerID() ID {
	return l.Container
}

func (l *HorizontalLayout) DoLayout(ids []ID, positions []image.Point, store *Store) {
	in, ok := containerInterior(store, l.Container, l.Padding)
	if ok {
		l.place(in, ids, store)
	}
}

func (l *HorizontalLayout) Resize(size image.Point, ids []ID, positions []image.Point, store *Store) {
	l.place(l.Padding.Inset(rect(size)), ids, store)
}

func (l *HorizontalLayout) place(in image.Rectangle, ids []ID, store *Store) {
	x := in.Min.X
	for _, id := range ids {
		w, err := store.Get(id)
		if err != nil {
			continue
		}
		pref := w.Config().Point(PreferredSize)
		h := pref.Y
		if h <= 0 || h > in.Dy() {
			h = in.Dy()
		}
		r := image.Rectangle{image.Pt(x, in.Min.Y), image.Pt(x+pref.X, in.Min.Y+h)}
		place(store, w, clampRect(r, in))
		x += pref.X + l.Gutter
	}
}
