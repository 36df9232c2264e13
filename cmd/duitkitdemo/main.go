// Command duitkitdemo shows a few buttons and a checkbox in a devdraw window.
// With -png, it renders headless to a PNG file instead, after clicking the first
// button once.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/mjl-/duitkit"
	"github.com/mjl-/duitkit/devdraw"
	"github.com/mjl-/duitkit/raster"
)

func check(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s\n", msg, err)
	}
}

type demo struct {
	store  *duitkit.Store
	root   duitkit.ID
	first  duitkit.ID
	status *duitkit.TextWidget
	clicks int
}

func newDemo(size image.Point, theme *duitkit.Theme) *demo {
	d := &demo{store: duitkit.NewStore()}
	s := d.store

	root := duitkit.NewCanvasWidget()
	duitkit.SetSize(root, size)
	duitkit.SetColor(root, 0xfcfcfcff)
	d.root = s.Add(root)
	vert := duitkit.NewVerticalLayout(d.root)
	vert.Padding = duitkit.SpaceXY(10, 10)
	check(s.SetLayout(vert), "set layout")

	font := duitkit.Font{}
	d.status = duitkit.NewText(font, "no clicks yet", duitkit.JustifyLeft)
	duitkit.SetSize(d.status, image.Pt(300, 20))
	_, err := s.AddToParent(d.status, d.root)
	check(err, "add status")

	row := duitkit.NewCanvasWidget()
	duitkit.SetSize(row, image.Pt(0, 30))
	duitkit.SetColor(row, 0xfcfcfcff)
	rowID, err := s.AddToParent(row, d.root)
	check(err, "add row")
	check(s.SetLayout(duitkit.NewHorizontalLayout(rowID)), "set row layout")

	for i, label := range []string{"click me", "hide me", "reset"} {
		b := duitkit.NewPushButton(font, label, duitkit.JustifyCenter)
		duitkit.SetSize(b, image.Pt(100, 30))
		id, err := s.AddToParent(b, rowID)
		check(err, "add button")
		switch i {
		case 0:
			d.first = id
			duitkit.OnClick(b, func(w duitkit.Widget, store *duitkit.Store, e duitkit.Event) {
				d.clicks++
				d.status.SetText(fmt.Sprintf("%d clicks", d.clicks))
			})
		case 1:
			duitkit.OnClick(b, func(w duitkit.Widget, store *duitkit.Store, e duitkit.Event) {
				duitkit.SetHidden(w, true)
				// Repaint the row where the button was.
				if p, err := store.Get(rowID); err == nil {
					duitkit.Invalidate(p)
				}
			})
		case 2:
			duitkit.OnClick(b, func(w duitkit.Widget, store *duitkit.Store, e duitkit.Event) {
				d.clicks = 0
				d.status.SetText("no clicks yet")
				for _, id := range store.DrawOrder() {
					if w, err := store.Get(id); err == nil && w.Config().Toggle(duitkit.WidgetHidden) {
						duitkit.SetHidden(w, false)
					}
				}
			})
		}
	}

	cb := duitkit.NewCheckbox(font, "log inputs", false)
	duitkit.SetSize(cb, image.Pt(200, 32))
	_, err = s.AddToParent(cb, d.root)
	check(err, "add checkbox")
	duitkit.OnSelected(cb, func(w duitkit.Widget, store *duitkit.Store, e duitkit.Event) {
		log.Printf("checkbox now %v\n", e.Selected)
	})

	grid := duitkit.NewCanvasWidget()
	duitkit.SetSize(grid, image.Pt(0, 50))
	duitkit.SetColor(grid, 0xfcfcfcff)
	gridID, err := s.AddToParent(grid, d.root)
	check(err, "add grid")
	check(s.SetLayout(duitkit.NewGridLayout(gridID, 2)), "set grid layout")
	var radios []*duitkit.RadioButton
	for _, size := range []string{"small", "medium", "large"} {
		r := duitkit.NewRadioButton(font, size, size)
		duitkit.SetSize(r, image.Pt(0, 20))
		_, err := s.AddToParent(r, gridID)
		check(err, "add radio button")
		duitkit.OnSelected(r, func(w duitkit.Widget, store *duitkit.Store, e duitkit.Event) {
			d.status.SetText(fmt.Sprintf("size %v", w.(*duitkit.RadioButton).Value))
		})
		radios = append(radios, r)
	}
	duitkit.RadioGroup(radios...)
	radios[0].SetSelected(true)

	if theme != nil {
		theme.ApplyTo(s)
	}
	return d
}

func main() {
	log.SetFlags(0)
	themePath := flag.String("theme", "", "theme file to load, .yaml or .toml")
	pngPath := flag.String("png", "", "render to this PNG file instead of opening a window")
	flag.Parse()

	var theme *duitkit.Theme
	if *themePath != "" {
		var err error
		theme, err = duitkit.LoadTheme(*themePath)
		check(err, "load theme")
	}

	size := image.Pt(800, 600)
	d := newDemo(size, theme)

	if *pngPath != "" {
		renderPNG(d, size, *pngPath)
		return
	}

	w, err := devdraw.NewWindow(d.store, "duitkitdemo", fmt.Sprintf("%dx%d", size.X, size.Y))
	check(err, "new window")
	w.Root = d.root
	w.Resize()

	for {
		select {
		case e := <-w.Inputs:
			w.Input(e)
		case <-w.Done:
			return
		}
	}
}

func renderPNG(d *demo, size image.Point, path string) {
	sink := raster.New(size)
	sink.Images = raster.CheckboxImages()
	session := duitkit.NewSession(d.store)

	b, err := d.store.Bounds(d.first)
	check(err, "bounds of button")
	p := b.Min.Add(b.Size().Div(2))
	session.Redraw(sink)
	for _, in := range []duitkit.Input{
		{Type: duitkit.InputMove, Point: p},
		{Type: duitkit.InputButtonDown, Point: p, Button: duitkit.Button1},
		{Type: duitkit.InputButtonUp, Point: p, Button: duitkit.Button1},
	} {
		session.Input(in, sink)
	}

	f, err := os.Create(path)
	check(err, "create png")
	check(png.Encode(f, sink.Image()), "encode png")
	check(f.Close(), "close png")
}
