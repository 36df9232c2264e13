/*
Package duitkit is the core of a retained-mode widget toolkit: a store of widgets, layout managers that size and place them, and a session that turns raw mouse and keyboard input into widget events and redraws what changed.

Widgets

All widgets implement Widget, typically by embedding Base. The built-in widgets are CanvasWidget, BoxWidget, TextWidget, ImageWidget, PushButton, Checkbox and RadioButton. A widget keeps its geometry, colors and flags in its Config: Origin (relative to its parent), BodySize, PreferredSize, colors, and the Invalidated and WidgetHidden flags.

Store

A Store owns all widgets, each under an ID. Widgets form a forest: Add makes a root, AddToParent a child. Later siblings are drawn on top, and win hit tests. Relations are by ID only, so widgets can be removed or moved with Remove and Reparent at any time, including from callbacks.

Set a LayoutManager (HorizontalLayout, VerticalLayout, GridLayout, PlaceLayout) on a container with SetLayout. It runs whenever children are added or removed, and on Resize of the container. Layouts never wrap: children that do not fit are clipped to the container.

Drawing

Changing how a widget looks marks it Invalidated; the helpers SetOrigin, SetSize, SetColor and SetHidden do this for you. Store.Redraw draws invalidated widgets, parents before children, through a Canvas on a DrawSink. Package raster has a sink that draws into an *image.RGBA, package devdraw one that draws into a devdraw window.

Events

A Session keeps the pointer state of one window. Pass it each raw Input with Dispatch (or a plan9 mouse state with Mouse). The widget under the pointer gets MouseEntered and MouseExited when the pointer comes and goes. Pressing a button captures the pointer for that widget until the button is released, so a push button sees the release even outside its bounds and can tell a click from a cancel. Register callbacks with Callbacks().Set or helpers like OnClick. Events derived by widgets, like WidgetClicked, are passed up to the ancestors and returned from Dispatch.

Everything is single-threaded: call Store and Session only from the goroutine running the event loop.
*/
package duitkit
