package duitkit

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"9fans.net/go/draw"
)

// Colors are draw.Color values, 0xRRGGBBAA.
const (
	White       = draw.Color(0xffffffff)
	Black       = draw.Color(0x000000ff)
	Transparent = draw.Color(0x00000000)
)

// HexColor is a draw.Color that reads and writes as "#rrggbb" or "#rrggbbaa",
// so it can be used directly in theme files.
type HexColor draw.Color

func (c HexColor) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%08x", uint32(c))), nil
}

func (c *HexColor) UnmarshalText(buf []byte) error {
	v, err := ParseColor(string(buf))
	if err != nil {
		return err
	}
	*c = HexColor(v)
	return nil
}

// ParseColor parses "#rrggbb" (opaque) or "#rrggbbaa".
func ParseColor(s string) (draw.Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return draw.Color(v), nil
}

// RGBA converts c for use with package image.
func RGBA(c draw.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}
