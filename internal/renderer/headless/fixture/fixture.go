// fixture writes asset files for running lessons against the headless driver
package fixture

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
)

// Solid returns a w by h image filled with c
func Solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// Quadrants returns a 2w by 2h image, each w by h quarter filled with the
// matching color in column order: top-left, bottom-left, top-right,
// bottom-right.
func Quadrants(w, h int, colors [4]color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2*w, 2*h))
	for i, c := range colors {
		x, y := (i/2)*w, (i%2)*h
		draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}

// WriteImage encodes img as PNG or BMP depending on the extension of path,
// creating parent directories as needed.
func WriteImage(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = errors.Errorf("unsupported image extension %q", ext)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "write %s", path)
}

// WriteFont writes the Go Regular TrueType font to path
func WriteFont(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, goregular.TTF, 0o644)
}

// WriteFile writes raw bytes, used for files that shouldn't decode
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
