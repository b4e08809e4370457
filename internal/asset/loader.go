package asset

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/app/lifecycle"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
)

// Loader loads assets onto a renderer. Every handle it returns is owned by
// the lesson's scope and released with it.
//
// Load methods never fail loudly: on failure they log the library error and
// return nil. The first failure is kept and reported by Err.
type Loader struct {
	scope    *lifecycle.Scope
	driver   renderer.Driver
	renderer renderer.Renderer
	resolver Resolver
	subDir   string
	err      error
}

func NewLoader(scope *lifecycle.Scope, driver renderer.Driver, ren renderer.Renderer, resolver Resolver, subDir string) *Loader {
	return &Loader{
		scope:    scope,
		driver:   driver,
		renderer: ren,
		resolver: resolver,
		subDir:   subDir,
	}
}

// Root is the top level resource directory
func (l *Loader) Root() string {
	return l.resolver.Dir("")
}

// Path is where name is read from
func (l *Loader) Path(name string) string {
	return l.resolver.Resolve(l.subDir, name)
}

// Renderer returns the renderer textures are bound to, nil for lessons
// without a window
func (l *Loader) Renderer() renderer.Renderer {
	return l.renderer
}

// Err is the first load failure, if any
func (l *Loader) Err() error {
	return l.err
}

func (l *Loader) record(err error) {
	if err != nil && l.err == nil {
		l.err = err
	}
}

func (l *Loader) texture(op string, load func(string) (renderer.Texture, error), name string) renderer.Texture {
	path := l.Path(name)
	tex, err := lifecycle.Acquire(l.scope, lifecycle.AssetLoad, op, func() (renderer.Texture, error) {
		return load(path)
	}, renderer.Texture.Destroy)
	l.record(err)
	return tex
}

// LoadBMP loads a BMP image into a texture
func (l *Loader) LoadBMP(name string) renderer.Texture {
	return l.texture("SDL_LoadBMP", l.renderer.LoadBMP, name)
}

// LoadTexture loads any image format the image extension supports
func (l *Loader) LoadTexture(name string) renderer.Texture {
	return l.texture("IMG_LoadTexture", l.renderer.LoadTexture, name)
}

// OpenFont opens a TrueType font at size points
func (l *Loader) OpenFont(name string, size int) renderer.Font {
	path := l.Path(name)
	font, err := lifecycle.Acquire(l.scope, lifecycle.AssetLoad, "TTF_OpenFont", func() (renderer.Font, error) {
		return l.driver.OpenFont(path, size)
	}, renderer.Font.Close)
	l.record(err)
	return font
}

// RenderText renders message with font into a new texture. A nil font
// returns nil without logging as the failure was already reported.
func (l *Loader) RenderText(font renderer.Font, message string, color renderer.Color) renderer.Texture {
	if font == nil {
		return nil
	}
	tex, err := lifecycle.Acquire(l.scope, lifecycle.AssetLoad, "TTF_RenderText_Blended", func() (renderer.Texture, error) {
		return l.renderer.RenderText(font, message, color)
	}, renderer.Texture.Destroy)
	l.record(err)
	return tex
}
