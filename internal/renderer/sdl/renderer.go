//go:build sdl

package sdl

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

type Renderer struct {
	renderer *sdl.Renderer
}

var _ renderer.Renderer = new(Renderer)

func (r *Renderer) Destroy() error {
	return r.renderer.Destroy()
}

func (r *Renderer) Clear() error {
	return r.renderer.Clear()
}

func (r *Renderer) Present() {
	r.renderer.Present()
}

func (r *Renderer) Copy(tex renderer.Texture, src, dst *renderer.Rect) error {
	return r.renderer.Copy(tex.(*Texture).texture, toSDLRect(src), toSDLRect(dst))
}

func (r *Renderer) LoadBMP(path string) (renderer.Texture, error) {
	surface, err := sdl.LoadBMP(path)
	if err != nil {
		return nil, err
	}
	defer surface.Free()
	return r.textureFromSurface(surface)
}

func (r *Renderer) LoadTexture(path string) (renderer.Texture, error) {
	texture, err := img.LoadTexture(r.renderer, path)
	if err != nil {
		return nil, err
	}
	return &Texture{texture: texture}, nil
}

func (r *Renderer) RenderText(font renderer.Font, message string, color renderer.Color) (renderer.Texture, error) {
	surface, err := font.(*Font).font.RenderUTF8Blended(message, sdl.Color{R: color.R, G: color.G, B: color.B, A: color.A})
	if err != nil {
		return nil, err
	}
	defer surface.Free()
	return r.textureFromSurface(surface)
}

func (r *Renderer) textureFromSurface(surface *sdl.Surface) (renderer.Texture, error) {
	texture, err := r.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, &renderer.OpError{Op: "SDL_CreateTextureFromSurface", Err: err}
	}
	return &Texture{texture: texture}, nil
}

type Texture struct {
	texture *sdl.Texture
}

func (t *Texture) Size() (w, h int32) {
	_, _, w, h, err := t.texture.Query()
	if err != nil {
		return 0, 0
	}
	return w, h
}

func (t *Texture) Destroy() error {
	return t.texture.Destroy()
}

func toSDLRect(r *renderer.Rect) *sdl.Rect {
	if r == nil {
		return nil
	}
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
