//go:build sdl

// sdl drives the lessons with SDL2, SDL2_image and SDL2_ttf through cgo
package sdl

import (
	"time"

	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var _ renderer.Driver = new(Driver)

const (
	windowX = 100
	windowY = 100
)

type Driver struct {
}

func (d *Driver) Init() error {
	return sdl.Init(sdl.INIT_EVERYTHING)
}

func (d *Driver) Quit() {
	sdl.Quit()
}

func (d *Driver) InitImage() error {
	return img.Init(img.INIT_PNG)
}

func (d *Driver) QuitImage() {
	img.Quit()
}

func (d *Driver) InitFont() error {
	return ttf.Init()
}

func (d *Driver) QuitFont() {
	ttf.Quit()
}

type Window struct {
	window *sdl.Window
}

func (d *Driver) CreateWindow(title string, width, height int32) (renderer.Window, error) {
	window, err := sdl.CreateWindow(title, windowX, windowY, width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}
	return &Window{window: window}, nil
}

func (win *Window) Destroy() error {
	return win.window.Destroy()
}

func (d *Driver) CreateRenderer(window renderer.Window) (renderer.Renderer, error) {
	ren, err := sdl.CreateRenderer(window.(*Window).window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: ren}, nil
}

type Font struct {
	font *ttf.Font
}

func (f *Font) Close() error {
	f.font.Close()
	return nil
}

func (d *Driver) OpenFont(path string, size int) (renderer.Font, error) {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, err
	}
	return &Font{font: font}, nil
}

func (d *Driver) PollEvent() renderer.Event {
	event := sdl.PollEvent()
	if event == nil {
		return nil
	}
	return translateEvent(event)
}

// Run relies on the renderer's vsync to pace frames
func (d *Driver) Run(step func() bool) error {
	for step() {
	}
	return nil
}

func (d *Driver) Delay(duration time.Duration) {
	sdl.Delay(uint32(duration / time.Millisecond))
}
