package devdraw

import (
	"fmt"
	"image"
	imagedraw "image/draw"
	"io"
	"os"

	"9fans.net/go/draw"
	xdraw "golang.org/x/image/draw"
)

// ReadImage decodes an image from f and loads it on display.
func ReadImage(display *draw.Display, f io.Reader) (*draw.Image, error) {
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return LoadImage(display, img)
}

// ReadImagePath opens path and calls ReadImage.
func ReadImagePath(display *draw.Display, path string) (*draw.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadImage(display, f)
}

// LoadImage copies img to a new image on display.
func LoadImage(display *draw.Display, img image.Image) (*draw.Image, error) {
	rgba := toRGBA(img)
	// Package image has bytes in r,g,b,a order, devdraw calls that ABGR32.
	ni, err := display.AllocImage(rgba.Bounds(), draw.ABGR32, false, draw.White)
	if err != nil {
		return nil, fmt.Errorf("allocimage: %w", err)
	}
	if _, err := ni.Load(rgba.Bounds(), rgba.Pix); err != nil {
		ni.Free()
		return nil, fmt.Errorf("load image: %w", err)
	}
	return ni, nil
}

// toRGBA returns img as an *image.RGBA with its origin at (0,0).
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == image.ZP {
		return rgba
	}
	rgba := image.NewRGBA(image.Rectangle{Max: b.Size()})
	imagedraw.Draw(rgba, rgba.Bounds(), img, b.Min, imagedraw.Src)
	return rgba
}

// scaleImage returns img scaled to size, img itself if it already has that
// size.
func scaleImage(img image.Image, size image.Point) image.Image {
	if img.Bounds().Size() == size {
		return img
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
