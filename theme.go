package duitkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"9fans.net/go/draw"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Colorset is the look of one kind of widget.
type Colorset struct {
	Main        HexColor `yaml:"main" toml:"main"`
	Text        HexColor `yaml:"text" toml:"text"`
	Border      HexColor `yaml:"border" toml:"border"`
	BorderWidth int      `yaml:"borderWidth" toml:"borderWidth"`
}

// Theme holds the colors of the built-in widgets and the gutter of the flow
// layouts. Radio buttons use the checkbox colors. Theme files are YAML or
// TOML; fields missing from a file keep their DefaultTheme value.
type Theme struct {
	Button   Colorset `yaml:"button" toml:"button"`
	Checkbox Colorset `yaml:"checkbox" toml:"checkbox"`
	Text     Colorset `yaml:"text" toml:"text"`
	Box      Colorset `yaml:"box" toml:"box"`
	Gutter   int      `yaml:"gutter" toml:"gutter"`
}

// Theme file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// DefaultTheme returns the gray-on-white look.
func DefaultTheme() *Theme {
	return &Theme{
		Button:   Colorset{Main: 0xf8f8f8ff, Text: 0x333333ff, Border: 0xbbbbbbff, BorderWidth: 1},
		Checkbox: Colorset{Main: 0xf8f8f8ff, Text: 0x333333ff, Border: 0xbbbbbbff, BorderWidth: 0},
		Text:     Colorset{Main: HexColor(Transparent), Text: 0x333333ff},
		Box:      Colorset{Main: 0xf8f8f8ff, Text: 0x333333ff, Border: 0xbbbbbbff, BorderWidth: 1},
		Gutter:   DefaultGutter,
	}
}

// FormatOf returns the theme format for a file name by its extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("theme %s: unknown format, want .yaml, .yml or .toml", path)
}

// LoadTheme reads a theme file, the format picked by its extension.
func LoadTheme(path string) (*Theme, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	t, err := ParseTheme(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	return t, nil
}

// ParseTheme parses a theme in format over the default theme.
func ParseTheme(data []byte, format string) (*Theme, error) {
	t := DefaultTheme()
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, t)
	case FormatTOML:
		err = toml.Unmarshal(data, t)
	default:
		return nil, fmt.Errorf("unknown theme format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if t.Gutter < 0 {
		return nil, fmt.Errorf("gutter %d: must not be negative", t.Gutter)
	}
	return t, nil
}

// Marshal returns t in format.
func (t *Theme) Marshal(format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(t)
	case FormatTOML:
		return toml.Marshal(t)
	}
	return nil, fmt.Errorf("unknown theme format %q", format)
}

// Save writes t to path, the format picked by its extension.
func (t *Theme) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := t.Marshal(format)
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write theme %s: %w", path, err)
	}
	return nil
}

// Apply sets the colors for the kind of w, and invalidates it. Widgets of other
// types are left alone.
func (t *Theme) Apply(w Widget) {
	var cs Colorset
	switch w.(type) {
	case *PushButton:
		cs = t.Button
	case *Checkbox, *RadioButton:
		cs = t.Checkbox
	case *TextWidget:
		// Texts only paint a background when they have a main color.
		w.SetConfig(TextColor, draw.Color(t.Text.Text))
		if t.Text.Main != HexColor(Transparent) {
			w.SetConfig(MainColor, draw.Color(t.Text.Main))
		}
		Invalidate(w)
		return
	case *BoxWidget:
		cs = t.Box
	default:
		return
	}
	w.SetConfig(MainColor, draw.Color(cs.Main))
	w.SetConfig(TextColor, draw.Color(cs.Text))
	w.SetConfig(BorderColor, draw.Color(cs.Border))
	w.SetConfig(BorderWidth, cs.BorderWidth)
	Invalidate(w)
}

// ApplyTo applies t to every widget in store, and sets the gutter of the
// horizontal, vertical and grid layouts, running them again.
func (t *Theme) ApplyTo(store *Store) {
	for _, id := range store.DrawOrder() {
		w, err := store.Get(id)
		if err != nil {
			continue
		}
		t.Apply(w)
		switch l := store.Layout(id).(type) {
		case *HorizontalLayout:
			l.Gutter = t.Gutter
			store.SetLayout(l)
		case *VerticalLayout:
			l.Gutter = t.Gutter
			store.SetLayout(l)
		case *GridLayout:
			l.Gutter = t.Gutter
			store.SetLayout(l)
		}
	}
}
