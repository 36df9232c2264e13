package duitkit

import (
	"image"
)

// GridLayout puts children in rows of Columns equally wide cells, filling
// rows left to right. A row is as high as its tallest preferred child; a child
// preferring no height fills its row. Rows that do not fit are clipped.
type GridLayout struct {
	Container ID
	Columns   int // Values below 1 are treated as 1.
	Gutter    int // Between columns and between rows.
	Padding   Space
}

var _ LayoutManager = &GridLayout{}

func NewGridLayout(container ID, columns int) *GridLayout {
	return &GridLayout{Container: container, Columns: columns, Gutter: DefaultGutter}
}

func (l *GridLayout) ContainerID() ID {
	return l.Container
}

func (l *GridLayout) DoLayout(ids []ID, positions []image.Point, store *Store) {
	in, ok := containerInterior(store, l.Container, l.Padding)
	if ok {
		l.place(in, ids, store)
	}
}

func (l *GridLayout) Resize(size image.Point, ids []ID, positions []image.Point, store *Store) {
	l.place(l.Padding.Inset(rect(size)), ids, store)
}

func (l *GridLayout) place(in image.Rectangle, ids []ID, store *Store) {
	cols := maximum(1, l.Columns)
	cellDx := maximum(0, (in.Dx()-l.Gutter*(cols-1))/cols)

	var kids []Widget
	for _, id := range ids {
		if w, err := store.Get(id); err == nil {
			kids = append(kids, w)
		}
	}

	y := in.Min.Y
	for row := 0; row*cols < len(kids); row++ {
		cells := kids[row*cols : minimum(len(kids), (row+1)*cols)]
		rowDy := 0
		for _, w := range cells {
			rowDy = maximum(rowDy, w.Config().Point(PreferredSize).Y)
		}
		for col, w := range cells {
			dy := w.Config().Point(PreferredSize).Y
			if dy <= 0 {
				dy = rowDy
			}
			x := in.Min.X + col*(cellDx+l.Gutter)
			r := image.Rectangle{image.Pt(x, y), image.Pt(x+cellDx, y+dy)}
			place(store, w, clampRect(r, in))
		}
		y += rowDy + l.Gutter
	}
}
