package duitkit

// ImageWidget draws the image with logical name Name, scaled to its body.
// Finding and decoding the image is up to the draw sink.
type ImageWidget struct {
	Base
	Name string
}

var _ Widget = &ImageWidget{}

func NewImage(name string) *ImageWidget {
	return &ImageWidget{Name: name}
}

func (ui *ImageWidget) Draw(c *Canvas) {
	c.Image(rect(ui.config.Point(BodySize)), ui.Name)
	ui.config.Remove(Invalidated)
}
