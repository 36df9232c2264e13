package devdraw

import (
	"fmt"
	"io"
	"log"

	"9fans.net/go/draw"

	"github.com/mjl-/duitkit"
	"github.com/mjl-/duitkit/raster"
)

// InputType is the kind of input read from devdraw.
type InputType byte

const (
	InputMouse = InputType(iota)
	InputKey
	InputFunc
	InputResize
	InputError
)

// Input is a mouse or keyboard event, resize or error from devdraw, or a
// function sent through Call.
type Input struct {
	Type  InputType
	Mouse draw.Mouse
	Key   rune
	Func  func()
	Error error
}

// Window is a devdraw window showing the widgets of a store. Read from Inputs
// in the main loop and pass each to Input. All widget changes and callbacks
// happen from within Input.
type Window struct {
	Display *draw.Display
	Sink    *Sink
	Store   *duitkit.Store
	Session *duitkit.Session

	// Root, if set, is resized to the window on every resize.
	Root duitkit.ID

	// Background fills the window before a full redraw.
	Background draw.Color

	Inputs chan Input
	Call   chan func()   // Functions sent here are run from Input in the main loop.
	Done   chan struct{} // Closed when devdraw is gone, e.g. because the window was closed.

	mousectl *draw.Mousectl
	keyctl   *draw.Keyboardctl
	stop     chan struct{}
}

// NewWindow opens a window named name, with dim like "800x600", for the
// widgets in store. The store measures text with the window's fonts.
func NewWindow(store *duitkit.Store, name, dim string) (*Window, error) {
	errch := make(chan error, 1)
	display, err := draw.Init(errch, "", name, dim)
	if err != nil {
		return nil, fmt.Errorf("devdraw init: %w", err)
	}

	sink := NewSink(display, raster.CheckboxImages())
	store.Fonts = sink.Fonts

	w := &Window{
		Display:    display,
		Sink:       sink,
		Store:      store,
		Session:    duitkit.NewSession(store),
		Background: draw.Color(0xfcfcfcff),
		Inputs:     make(chan Input, 1),
		Call:       make(chan func(), 1),
		Done:       make(chan struct{}, 1),
		mousectl:   display.InitMouse(),
		keyctl:     display.InitKeyboard(),
		stop:       make(chan struct{}, 1),
	}
	w.Session.DebugKeys = true

	go func() {
		for {
			select {
			case m := <-w.mousectl.C:
				w.Inputs <- Input{Type: InputMouse, Mouse: m}
			case k := <-w.keyctl.C:
				w.Inputs <- Input{Type: InputKey, Key: k}
			case <-w.mousectl.Resize:
				w.Inputs <- Input{Type: InputResize}
			case fn := <-w.Call:
				w.Inputs <- Input{Type: InputFunc, Func: fn}
			case <-w.stop:
				return
			case e := <-errch:
				if e == io.EOF {
					// devdraw disappeared, typically because the window was closed.
					close(w.Done)
					return
				}
				w.Inputs <- Input{Type: InputError, Error: e}
			}
		}
	}()

	return w, nil
}

// Input handles one input and draws what it changed.
func (w *Window) Input(e Input) []duitkit.Event {
	var events []duitkit.Event
	switch e.Type {
	case InputMouse:
		events = w.Session.Mouse(e.Mouse)
	case InputKey:
		// devdraw only reports key presses.
		p := w.Session.LastPoint()
		events = w.Session.Dispatch(duitkit.Input{Type: duitkit.InputKeyDown, Point: p, Key: e.Key})
		events = append(events, w.Session.Dispatch(duitkit.Input{Type: duitkit.InputKeyUp, Point: p, Key: e.Key})...)
	case InputResize:
		w.Resize()
		return nil
	case InputFunc:
		e.Func()
	case InputError:
		log.Printf("devdraw: error from devdraw: %s\n", e.Error)
		return nil
	}
	w.Render()
	return events
}

// Resize reattaches to the resized window and redraws everything.
func (w *Window) Resize() {
	if w.Session.LogInputs {
		log.Printf("devdraw: resize\n")
	}
	check(w.Display.Attach(draw.Refmesg), "attach after resize")
	w.Sink.Dst = w.Display.ScreenImage
	if w.Root != duitkit.NoID {
		if err := w.Store.Resize(w.Root, w.Display.ScreenImage.R.Size()); err != nil {
			log.Printf("devdraw: resize root: %s\n", err)
		}
	}
	w.Sink.Clear(w.Background)
	w.Store.Invalidate()
	w.Render()
}

// Render draws invalidated widgets and flushes them to the screen.
func (w *Window) Render() {
	if w.Session.Redraw(w.Sink) == 0 {
		return
	}
	if err := w.Display.Flush(); err != nil {
		log.Printf("devdraw: flush: %s\n", err)
	}
}

// Close stops reading input, ends the session and closes the display.
func (w *Window) Close() {
	w.stop <- struct{}{}
	w.Session.Close()
	w.Sink.Free()
	w.Display.Close()
}
