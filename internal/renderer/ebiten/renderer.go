package ebiten

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	_ "golang.org/x/image/bmp"
)

// Renderer draws into back, Present copies it to front which Ebiten puts
// on screen every Draw.
type Renderer struct {
	d             *Driver
	width, height int
	back, front   *ebiten.Image
	destroyed     bool
}

var _ renderer.Renderer = new(Renderer)

func (r *Renderer) Destroy() error {
	if r.destroyed {
		return errors.New("invalid renderer")
	}
	r.destroyed = true
	if r.d.renderer == r {
		r.d.renderer = nil
	}
	r.back.Deallocate()
	r.front.Deallocate()
	return nil
}

func (r *Renderer) Clear() error {
	r.back.Fill(color.Black)
	return nil
}

func (r *Renderer) Present() {
	r.front.Clear()
	r.front.DrawImage(r.back, nil)
}

func (r *Renderer) Copy(tex renderer.Texture, src, dst *renderer.Rect) error {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.destroyed {
		return errors.New("invalid texture")
	}
	img := t.image
	if src != nil {
		img = img.SubImage(image.Rect(int(src.X), int(src.Y), int(src.X+src.W), int(src.Y+src.H))).(*ebiten.Image)
	}
	sw, sh := img.Bounds().Dx(), img.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return nil
	}
	x, y, w, h := 0, 0, r.width, r.height
	if dst != nil {
		x, y, w, h = int(dst.X), int(dst.Y), int(dst.W), int(dst.H)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
	op.GeoM.Translate(float64(x), float64(y))
	r.back.DrawImage(img, op)
	return nil
}

func (r *Renderer) LoadBMP(path string) (renderer.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open file")
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't decode bitmap")
	}
	if format != "bmp" {
		return nil, errors.Errorf("file is not a Windows BMP file, got %s", format)
	}
	return &Texture{image: ebiten.NewImageFromImage(img)}, nil
}

func (r *Renderer) LoadTexture(path string) (renderer.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &Texture{image: img}, nil
}

func (r *Renderer) RenderText(font renderer.Font, message string, c renderer.Color) (renderer.Texture, error) {
	f, ok := font.(*Font)
	if !ok || f == nil {
		return nil, errors.New("invalid font")
	}
	w, h := text.Measure(message, f.face, f.face.Size)
	width, height := int(math.Ceil(w)), int(math.Ceil(h))
	if width <= 0 || height <= 0 {
		return nil, errors.New("Text has zero width")
	}
	img := ebiten.NewImage(width, height)
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	text.Draw(img, message, f.face, op)
	return &Texture{image: img}, nil
}

type Texture struct {
	image     *ebiten.Image
	destroyed bool
}

func (t *Texture) Size() (w, h int32) {
	b := t.image.Bounds()
	return int32(b.Dx()), int32(b.Dy())
}

func (t *Texture) Destroy() error {
	if t.destroyed {
		return errors.New("invalid texture")
	}
	t.destroyed = true
	t.image.Deallocate()
	return nil
}

type Font struct {
	face *text.GoTextFace
}

// Close has nothing to free, the face source is garbage collected
func (f *Font) Close() error {
	return nil
}

func (d *Driver) OpenFont(path string, size int) (renderer.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open font")
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "couldn't parse font")
	}
	return &Font{face: &text.GoTextFace{Source: source, Size: float64(size)}}, nil
}
