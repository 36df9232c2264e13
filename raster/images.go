package raster

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	// Formats for images read from files.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/mjl-/duitkit"
)

// FSImages reads images by name from a file system, decoding each once.
type FSImages struct {
	FS    fs.FS
	cache map[string]image.Image
}

var _ Images = &FSImages{}

func NewFSImages(fsys fs.FS) *FSImages {
	return &FSImages{FS: fsys, cache: map[string]image.Image{}}
}

func (l *FSImages) Image(name string) (image.Image, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}
	f, err := l.FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", name, err)
	}
	if l.cache == nil {
		l.cache = map[string]image.Image{}
	}
	l.cache[name] = img
	return img, nil
}

// MapImages resolves names from a fixed set of images.
type MapImages map[string]image.Image

func (m MapImages) Image(name string) (image.Image, error) {
	img, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("image %s: %w", name, fs.ErrNotExist)
	}
	return img, nil
}

// CheckboxImages returns 32x32 images for the checkbox state, under the names
// a duitkit.Checkbox draws.
func CheckboxImages() MapImages {
	return MapImages{
		duitkit.CheckboxSelectedImage:   checkboxImage(true),
		duitkit.CheckboxUnselectedImage: checkboxImage(false),
	}
}

func checkboxImage(checked bool) *image.RGBA {
	const size = 32
	fg := color.RGBA{0x33, 0x33, 0x33, 0xff}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < size; i++ {
		for _, w := range []int{0, 1} {
			img.SetRGBA(i, w, fg)
			img.SetRGBA(i, size-1-w, fg)
			img.SetRGBA(w, i, fg)
			img.SetRGBA(size-1-w, i, fg)
		}
	}
	if checked {
		// A cross, 3 pixels thick.
		for i := 6; i < size-6; i++ {
			for d := -1; d <= 1; d++ {
				img.SetRGBA(i+d, i, fg)
				img.SetRGBA(size-1-i+d, i, fg)
			}
		}
	}
	return img
}
