package duitkit

import (
	"image"
)

// Space is an inset on each side of a rectangle, used as container padding.
type Space struct {
	Top, Right, Bottom, Left int
}

func (s Space) Dx() int {
	return s.Left + s.Right
}

func (s Space) Dy() int {
	return s.Top + s.Bottom
}

func (s Space) Size() image.Point {
	return image.Pt(s.Dx(), s.Dy())
}

func (s Space) Topleft() image.Point {
	return image.Pt(s.Left, s.Top)
}

// Inset returns r shrunk by s. Sides never cross, an inset larger than r
// yields an empty rectangle at the inset top-left.
func (s Space) Inset(r image.Rectangle) image.Rectangle {
	size := r.Size().Sub(s.Size())
	size.X = maximum(0, size.X)
	size.Y = maximum(0, size.Y)
	return rect(size).Add(r.Min.Add(s.Topleft()))
}

func SpaceXY(x, y int) Space {
	return Space{y, x, y, x}
}
