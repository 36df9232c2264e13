package duitkit

import (
	"image"

	"9fans.net/go/draw"
)

// ConfigKey identifies a widget setting.
type ConfigKey int

const (
	Origin        ConfigKey = iota // image.Point, relative to the parent. Default (0,0).
	BodySize                       // image.Point. Default (0,0).
	PreferredSize                  // image.Point, size a layout starts from. Default BodySize.
	PreferredOrigin                // image.Point, where PlaceLayout puts a widget before clipping. Default Origin.
	MainColor                      // draw.Color. Default White.
	TextColor                      // draw.Color. Default Black.
	BorderColor                    // draw.Color. Default Black.
	BorderWidth                    // int. Default 0.
	Invalidated                    // Flag, widget needs a redraw.
	WidgetHidden                   // Flag, widget and its children are not drawn or hit.
)

var configKeyNames = [...]string{
	"Origin",
	"BodySize",
	"PreferredSize",
	"PreferredOrigin",
	"MainColor",
	"TextColor",
	"BorderColor",
	"BorderWidth",
	"Invalidated",
	"WidgetHidden",
}

func (k ConfigKey) String() string {
	if k >= 0 && int(k) < len(configKeyNames) {
		return configKeyNames[k]
	}
	return "ConfigKey(?)"
}

func (k ConfigKey) isFlag() bool {
	return k == Invalidated || k == WidgetHidden
}

// Config holds the settings of one widget. Setting a key never invalidates the
// widget, callers decide when a change needs a redraw, so a number of changes
// can share one.
type Config struct {
	values map[ConfigKey]interface{}
}

// Set stores v for key, replacing a previous value. Flags are only present
// while set: storing false for Invalidated or WidgetHidden removes the key.
func (c *Config) Set(key ConfigKey, v interface{}) {
	if b, ok := v.(bool); ok && !b && key.isFlag() {
		delete(c.values, key)
		return
	}
	if c.values == nil {
		c.values = map[ConfigKey]interface{}{}
	}
	c.values[key] = v
}

// Get returns the value stored for key, if any. No defaults are applied.
func (c *Config) Get(key ConfigKey) (interface{}, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *Config) Remove(key ConfigKey) {
	delete(c.values, key)
}

func (c *Config) Contains(key ConfigKey) bool {
	_, ok := c.values[key]
	return ok
}

// Point returns an image.Point setting, or the default for key.
func (c *Config) Point(key ConfigKey) image.Point {
	if v, ok := c.values[key].(image.Point); ok {
		return v
	}
	switch key {
	case PreferredSize:
		return c.Point(BodySize)
	case PreferredOrigin:
		return c.Point(Origin)
	}
	return image.ZP
}

// Color returns a draw.Color setting, or the default for key.
func (c *Config) Color(key ConfigKey) draw.Color {
	if v, ok := c.values[key].(draw.Color); ok {
		return v
	}
	switch key {
	case TextColor, BorderColor:
		return Black
	}
	return White
}

// Int returns an int setting, 0 if absent.
func (c *Config) Int(key ConfigKey) int {
	v, _ := c.values[key].(int)
	return v
}

// Toggle reports whether flag key is set.
func (c *Config) Toggle(key ConfigKey) bool {
	v, ok := c.values[key]
	if !ok {
		return false
	}
	if b, isBool := v.(bool); isBool {
		return b
	}
	return true
}
