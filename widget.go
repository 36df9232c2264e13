package duitkit

import (
	"image"

	"9fans.net/go/draw"
)

// Widget is implemented by everything that can be put in a Store.
//
// Embed Base to get the bookkeeping methods, and override Draw and HandleEvent
// for the widget's behaviour. Composite widgets also override SetConfig to pass
// settings on to the widgets they are built from.
type Widget interface {
	ID() ID
	SetID(id ID)

	// Config returns the settings of the widget. Changes made through it are
	// not propagated to sub-widgets; use SetConfig for that.
	Config() *Config
	SetConfig(key ConfigKey, v interface{})

	Callbacks() *Callbacks

	// Draw paints the widget in its own coordinates, (0,0) being its origin,
	// and clears the Invalidated flag.
	Draw(c *Canvas)

	// HandleEvent updates the widget for e and can return a derived event,
	// such as WidgetClicked, to be bubbled to its ancestors. Injected events
	// come from the toolkit or the program instead of the user. store is nil
	// when the event is delivered outside of a store.
	HandleEvent(injected bool, e Event, store *Store) *Event
}

// Base implements the bookkeeping part of Widget. Its Draw fills the body
// with MainColor, and HandleEvent ignores all events.
type Base struct {
	id        ID
	config    Config
	callbacks Callbacks
}

func (b *Base) ID() ID {
	return b.id
}

func (b *Base) SetID(id ID) {
	b.id = id
}

func (b *Base) Config() *Config {
	return &b.config
}

func (b *Base) SetConfig(key ConfigKey, v interface{}) {
	b.config.Set(key, v)
}

func (b *Base) Callbacks() *Callbacks {
	return &b.callbacks
}

func (b *Base) Draw(c *Canvas) {
	c.Rect(rect(b.config.Point(BodySize)), b.config.Color(MainColor))
	b.config.Remove(Invalidated)
}

func (b *Base) HandleEvent(injected bool, e Event, store *Store) *Event {
	return nil
}

// Invalidate marks w for redraw in the next redraw pass.
func Invalidate(w Widget) {
	w.SetConfig(Invalidated, true)
}

// ClearInvalidate removes the redraw mark, normally done by Draw.
func ClearInvalidate(w Widget) {
	w.Config().Remove(Invalidated)
}

func IsInvalidated(w Widget) bool {
	return w.Config().Toggle(Invalidated)
}

// SetOrigin moves w, relative to its parent, and invalidates it. The origin
// also becomes the preferred origin that PlaceLayout clips from.
func SetOrigin(w Widget, p image.Point) {
	w.SetConfig(Origin, p)
	w.SetConfig(PreferredOrigin, p)
	Invalidate(w)
}

func GetOrigin(w Widget) image.Point {
	return w.Config().Point(Origin)
}

// SetSize resizes w and invalidates it. The size also becomes the preferred
// size that layout managers start from.
func SetSize(w Widget, size image.Point) {
	w.SetConfig(BodySize, size)
	w.SetConfig(PreferredSize, size)
	Invalidate(w)
}

func GetSize(w Widget) image.Point {
	return w.Config().Point(BodySize)
}

// SetColor sets the main color of w and invalidates it.
func SetColor(w Widget, c draw.Color) {
	w.SetConfig(MainColor, c)
	Invalidate(w)
}

func GetColor(w Widget) draw.Color {
	return w.Config().Color(MainColor)
}

// SetHidden hides or shows w with its children. Either way the widget is
// invalidated, so its area gets repainted by whatever is below it on the next
// full redraw.
func SetHidden(w Widget, hidden bool) {
	w.SetConfig(WidgetHidden, hidden)
	Invalidate(w)
}

// OnClick registers fn for WidgetClicked events of w.
func OnClick(w Widget, fn Callback) {
	w.Callbacks().Set(WidgetClicked, fn)
}

// OnSelected registers fn for WidgetSelected events of w.
func OnSelected(w Widget, fn Callback) {
	w.Callbacks().Set(WidgetSelected, fn)
}

func OnMouseEntered(w Widget, fn Callback) {
	w.Callbacks().Set(MouseEntered, fn)
}

func OnMouseExited(w Widget, fn Callback) {
	w.Callbacks().Set(MouseExited, fn)
}

func OnMouseMoved(w Widget, fn Callback) {
	w.Callbacks().Set(MouseMoved, fn)
}

func OnMouseScrolled(w Widget, fn Callback) {
	w.Callbacks().Set(MouseScrolled, fn)
}

func OnKeyPressed(w Widget, fn Callback) {
	w.Callbacks().Set(KeyPressed, fn)
}

// CanvasWidget is a plain widget that fills its body with its main color. Use
// it as a background or as a container for other widgets.
type CanvasWidget struct {
	Base
}

var _ Widget = &CanvasWidget{}

func NewCanvasWidget() *CanvasWidget {
	return &CanvasWidget{}
}
