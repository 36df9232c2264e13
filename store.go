package duitkit

import (
	"fmt"
	"image"
	"log"
)

// ID identifies a widget in a Store. IDs are handed out in increasing order
// starting at 1 and are never reused by a store.
type ID int

// NoID is the parent of root widgets, and means "no widget" in general.
const NoID ID = 0

type record struct {
	widget Widget
	parent ID
	kids   []ID // In draw order, last is on top.
	layout LayoutManager
}

// Store owns widgets and the forest they form. All relations are by ID; a
// widget is only referenced by its record.
//
// A Store is not safe for concurrent use. Widgets and callbacks may change the
// store while it dispatches or draws; traversals work on snapshots of IDs and
// skip widgets that disappeared.
type Store struct {
	Fonts       FontSource // For measuring text while drawing. Nil means BasicFonts.
	DebugLayout bool       // Log every layout run.
	DebugDraw   int        // If 1, log each widget drawn by Redraw. If 2, also log widgets skipped.

	records map[ID]*record
	roots   []ID
	lastID  ID
}

func NewStore() *Store {
	return &Store{records: map[ID]*record{}}
}

func (s *Store) add(w Widget, parent ID) ID {
	if s.records == nil {
		s.records = map[ID]*record{}
	}
	s.lastID++
	id := s.lastID
	w.SetID(id)
	s.records[id] = &record{widget: w, parent: parent}
	return id
}

// Add stores w as a new root widget, drawn on top of earlier roots.
func (s *Store) Add(w Widget) ID {
	id := s.add(w, NoID)
	s.roots = append(s.roots, id)
	return id
}

// AddToParent stores w as the topmost child of parent and runs the layout of
// parent, if it has one.
func (s *Store) AddToParent(w Widget, parent ID) (ID, error) {
	pr, ok := s.records[parent]
	if !ok {
		return NoID, invalidParent("store.AddToParent", parent)
	}
	id := s.add(w, parent)
	pr.kids = append(pr.kids, id)
	s.layout(parent)
	return id, nil
}

func (s *Store) Get(id ID) (Widget, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, notFound("store.Get", id)
	}
	return r.widget, nil
}

func (s *Store) Contains(id ID) bool {
	_, ok := s.records[id]
	return ok
}

func (s *Store) Len() int {
	return len(s.records)
}

// Parent returns the parent of id, NoID for a root.
func (s *Store) Parent(id ID) (ID, error) {
	r, ok := s.records[id]
	if !ok {
		return NoID, notFound("store.Parent", id)
	}
	return r.parent, nil
}

// Children returns a copy of the child IDs of id in draw order.
func (s *Store) Children(id ID) ([]ID, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, notFound("store.Children", id)
	}
	return append([]ID(nil), r.kids...), nil
}

// Roots returns a copy of the root IDs in draw order.
func (s *Store) Roots() []ID {
	return append([]ID(nil), s.roots...)
}

// Remove deletes id and everything below it. The parent is invalidated, to
// paint over the removed widgets, and its layout runs again.
func (s *Store) Remove(id ID) error {
	r, ok := s.records[id]
	if !ok {
		return notFound("store.Remove", id)
	}
	s.detach(id, r.parent)
	var drop func(id ID)
	drop = func(id ID) {
		for _, k := range s.records[id].kids {
			drop(k)
		}
		delete(s.records, id)
	}
	drop(id)
	if r.parent != NoID {
		Invalidate(s.records[r.parent].widget)
		s.layout(r.parent)
	}
	return nil
}

// Reparent moves id with its subtree to the top of the children of parent, or
// to the top of the roots if parent is NoID. Moving a widget below itself is
// refused with ErrInvalidParent, and nothing changes. The old parent is
// invalidated.
func (s *Store) Reparent(id, parent ID) error {
	r, ok := s.records[id]
	if !ok {
		return notFound("store.Reparent", id)
	}
	if parent != NoID {
		if _, ok := s.records[parent]; !ok {
			return invalidParent("store.Reparent", parent)
		}
		for p := parent; p != NoID; p = s.records[p].parent {
			if p == id {
				return invalidParent("store.Reparent", parent)
			}
		}
	}
	old := r.parent
	s.detach(id, old)
	r.parent = parent
	if parent == NoID {
		s.roots = append(s.roots, id)
	} else {
		pr := s.records[parent]
		pr.kids = append(pr.kids, id)
	}
	if old != NoID {
		Invalidate(s.records[old].widget)
		s.layout(old)
	}
	if parent != NoID && parent != old {
		s.layout(parent)
	}
	return nil
}

func (s *Store) detach(id, parent ID) {
	if parent == NoID {
		s.roots = without(s.roots, id)
		return
	}
	pr := s.records[parent]
	pr.kids = without(pr.kids, id)
}

func without(l []ID, id ID) []ID {
	nl := make([]ID, 0, len(l))
	for _, x := range l {
		if x != id {
			nl = append(nl, x)
		}
	}
	return nl
}

// SetLayout makes m arrange the children of m.ContainerID() from now on, and
// runs it once.
func (s *Store) SetLayout(m LayoutManager) error {
	r, ok := s.records[m.ContainerID()]
	if !ok {
		return notFound("store.SetLayout", m.ContainerID())
	}
	r.layout = m
	s.layout(m.ContainerID())
	return nil
}

// Layout returns the layout manager of id, or nil.
func (s *Store) Layout(id ID) LayoutManager {
	if r, ok := s.records[id]; ok {
		return r.layout
	}
	return nil
}

// Resize gives container id a new size, invalidates it, and lets its layout
// manager rearrange the children. Child containers that get a new size from
// that layout are resized in turn.
func (s *Store) Resize(id ID, size image.Point) error {
	r, ok := s.records[id]
	if !ok {
		return notFound("store.Resize", id)
	}
	SetSize(r.widget, size)
	s.resized(id)
	return nil
}

// resized runs the Resize of the layout of id, if any, for its current size.
func (s *Store) resized(id ID) {
	r, ok := s.records[id]
	if !ok || r.layout == nil {
		return
	}
	size := GetSize(r.widget)
	ids, positions := s.positions(r)
	if s.DebugLayout {
		log.Printf("duitkit: resize %d to %v, %d kids\n", id, size, len(ids))
	}
	r.layout.Resize(size, ids, positions, s)
}

func (s *Store) layout(id ID) {
	r := s.records[id]
	if r.layout == nil {
		return
	}
	ids, positions := s.positions(r)
	if s.DebugLayout {
		log.Printf("duitkit: layout %d, %d kids\n", id, len(ids))
	}
	r.layout.DoLayout(ids, positions, s)
}

func (s *Store) positions(r *record) ([]ID, []image.Point) {
	ids := append([]ID(nil), r.kids...)
	positions := make([]image.Point, len(ids))
	for i, id := range ids {
		positions[i] = GetOrigin(s.records[id].widget)
	}
	return ids, positions
}

// Bounds returns the rectangle of id in window coordinates.
func (s *Store) Bounds(id ID) (image.Rectangle, error) {
	r, ok := s.records[id]
	if !ok {
		return image.ZR, notFound("store.Bounds", id)
	}
	b := rect(GetSize(r.widget)).Add(GetOrigin(r.widget))
	for p := r.parent; p != NoID; p = s.records[p].parent {
		b = b.Add(GetOrigin(s.records[p].widget))
	}
	return b, nil
}

// IsHidden reports whether id is hidden, itself or through an ancestor.
// Unknown widgets count as hidden.
func (s *Store) IsHidden(id ID) bool {
	for id != NoID {
		r, ok := s.records[id]
		if !ok || r.widget.Config().Toggle(WidgetHidden) {
			return true
		}
		id = r.parent
	}
	return false
}

// WidgetIDsAt returns the visible widgets containing p (window coordinates),
// topmost first. A widget is only found inside the bounds of its ancestors,
// the area it can draw in.
func (s *Store) WidgetIDsAt(p image.Point) []ID {
	var l []ID
	for i := len(s.roots) - 1; i >= 0; i-- {
		l = s.hit(s.roots[i], p, l)
	}
	return l
}

// hit appends the widgets of the subtree at id containing p, p being in the
// coordinates of the parent of id.
func (s *Store) hit(id ID, p image.Point, l []ID) []ID {
	r := s.records[id]
	c := r.widget.Config()
	if c.Toggle(WidgetHidden) {
		return l
	}
	orig := c.Point(Origin)
	if !p.In(rect(c.Point(BodySize)).Add(orig)) {
		return l
	}
	lp := p.Sub(orig)
	for i := len(r.kids) - 1; i >= 0; i-- {
		l = s.hit(r.kids[i], lp, l)
	}
	return append(l, id)
}

// DrawOrder returns all widget IDs, parents before their children and siblings
// in insertion order. Each call returns a new snapshot.
func (s *Store) DrawOrder() []ID {
	l := make([]ID, 0, len(s.records))
	var walk func(ids []ID)
	walk = func(ids []ID) {
		for _, id := range ids {
			l = append(l, id)
			walk(s.records[id].kids)
		}
	}
	walk(s.roots)
	return l
}

// Redraw draws every visible widget that is invalidated, or whose parent was
// drawn in this pass, in draw order. Each widget is drawn clipped to its own
// bounds and those of its ancestors. Widgets removed or hidden by earlier
// draws in the same pass are skipped. Redraw returns the number of widgets
// drawn.
func (s *Store) Redraw(sink DrawSink) int {
	fonts := s.Fonts
	if fonts == nil {
		fonts = BasicFonts{}
	}
	drawn := map[ID]bool{}
	for _, id := range s.DrawOrder() {
		r, ok := s.records[id]
		if !ok || s.IsHidden(id) {
			continue
		}
		if !IsInvalidated(r.widget) && !drawn[r.parent] {
			if s.DebugDraw > 1 {
				log.Printf("duitkit: draw %d: skipped, clean\n", id)
			}
			continue
		}
		bounds, clip := s.clip(id)
		if clip.Empty() {
			ClearInvalidate(r.widget)
			continue
		}
		if s.DebugDraw > 0 {
			log.Printf("duitkit: draw %d %T: bounds %v clip %v\n", id, r.widget, bounds, clip)
		}
		r.widget.Draw(NewCanvas(sink, fonts, bounds.Min, clip))
		ClearInvalidate(r.widget)
		drawn[id] = true
	}
	return len(drawn)
}

// clip returns the window bounds of id and the part of them visible through
// its ancestors.
func (s *Store) clip(id ID) (bounds, clip image.Rectangle) {
	bounds, _ = s.Bounds(id)
	clip = bounds
	for p := s.records[id].parent; p != NoID; p = s.records[p].parent {
		pb, _ := s.Bounds(p)
		clip = clip.Intersect(pb)
	}
	return
}

// Invalidate marks all widgets for redraw.
func (s *Store) Invalidate() {
	for _, r := range s.records {
		Invalidate(r.widget)
	}
}

// Print logs the widget forest, one line per widget, indented by depth.
func (s *Store) Print() {
	var walk func(ids []ID, indent int)
	walk = func(ids []ID, indent int) {
		for _, id := range ids {
			r := s.records[id]
			indentStr := ""
			if indent > 0 {
				indentStr = fmt.Sprintf("%*s", indent*2, " ")
			}
			b, _ := s.Bounds(id)
			log.Printf("duitkit: %s%d %T r %v hidden=%v invalidated=%v\n", indentStr, id, r.widget, b, r.widget.Config().Toggle(WidgetHidden), IsInvalidated(r.widget))
			walk(r.kids, indent+1)
		}
	}
	walk(s.roots, 0)
}
