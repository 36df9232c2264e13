package duitkit

import "image"

func pt(v int) image.Point {
	return image.Point{v, v}
}

func rect(p image.Point) image.Rectangle {
	return image.Rectangle{image.ZP, p}
}

func maximum(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minimum(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clampRect returns r confined to the rectangle of size avail at the origin.
// Min is clamped to avail, and Max never passes avail either, so an
// overflowing rectangle becomes narrower, possibly empty, but is never moved
// back inside.
func clampRect(r image.Rectangle, avail image.Rectangle) image.Rectangle {
	r.Min.X = minimum(r.Min.X, avail.Max.X)
	r.Min.Y = minimum(r.Min.Y, avail.Max.Y)
	r.Max.X = maximum(r.Min.X, minimum(r.Max.X, avail.Max.X))
	r.Max.Y = maximum(r.Min.Y, minimum(r.Max.Y, avail.Max.Y))
	return r
}
