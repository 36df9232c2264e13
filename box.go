package duitkit

// BoxWidget fills its body with MainColor and draws a border of BorderWidth
// pixels in BorderColor on the inside of its bounds.
type BoxWidget struct {
	Base
}

var _ Widget = &BoxWidget{}

func NewBox() *BoxWidget {
	return &BoxWidget{}
}

func (ui *BoxWidget) Draw(c *Canvas) {
	r := rect(ui.config.Point(BodySize))
	c.Rect(r, ui.config.Color(MainColor))
	c.Border(r, ui.config.Int(BorderWidth), ui.config.Color(BorderColor))
	ui.config.Remove(Invalidated)
}

// drawSub draws a sub-widget of a composite widget at its origin within c.
// Hidden sub-widgets are skipped.
func drawSub(c *Canvas, w Widget) {
	if w.Config().Toggle(WidgetHidden) {
		return
	}
	w.Draw(c.Sub(rect(GetSize(w)).Add(GetOrigin(w))))
}
