package duitkit

import (
	"image"
)

// VerticalLayout is HorizontalLayout turned on its side: children stack top
// to bottom, widths are limited to the interior width, and children are
// clipped at the bottom edge.
type VerticalLayout struct {
	Container ID
	Gutter    int
	Padding   Space
}

var _ LayoutManager = &VerticalLayout{}

func NewVerticalLayout(container ID) *VerticalLayout {
	return &VerticalLayout{Container: container, Gutter: DefaultGutter}
}

func (l *VerticalLayout) ContainerID() ID {
	return l.Container
}

func (l *VerticalLayout) DoLayout(ids []ID, positions []image.Point, store *Store) {
	in, ok := containerInterior(store, l.Container, l.Padding)
	if ok {
		l.place(in, ids, store)
	}
}

func (l *VerticalLayout) Resize(size image.Point, ids []ID, positions []image.Point, store *Store) {
	l.place(l.Padding.Inset(rect(size)), ids, store)
}

func (l *VerticalLayout) place(in image.Rectangle, ids []ID, store *Store) {
	y := in.Min.Y
	for _, id := range ids {
		w, err := store.Get(id)
		if err != nil {
			continue
		}
		pref := w.Config().Point(PreferredSize)
		dx := pref.X
		if dx <= 0 || dx > in.Dx() {
			dx = in.Dx()
		}
		r := image.Rectangle{image.Pt(in.Min.X, y), image.Pt(in.Min.X+dx, y+pref.Y)}
		place(store, w, clampRect(r, in))
		y += pref.Y + l.Gutter
	}
}
