package rendereriface

import (
	"time"

	"github.com/silbinarywolf/toy-sdl-lessons/internal/input"
)

// Rect is a destination or source rectangle in pixels
type Rect struct {
	X, Y int32
	W, H int32
}

// Color is an 8-bit RGBA color
type Color struct {
	R, G, B, A uint8
}

// Event is anything returned by Driver.PollEvent
type Event interface{}

// QuitEvent is sent when the window is asked to close
type QuitEvent struct{}

type KeyDownEvent struct {
	Key input.Key
}

type MouseButtonDownEvent struct {
	Button input.MouseButton
	X, Y   int32
}

// OtherEvent covers native events the lessons don't react to
type OtherEvent struct{}

// Texture is a decoded image bound to the renderer that created it
type Texture interface {
	Size() (w, h int32)
	Destroy() error
}

type Font interface {
	Close() error
}

type Window interface {
	Destroy() error
}

type Renderer interface {
	Clear() error
	// Copy draws src of tex into dst of the frame. A nil src is the whole
	// texture, a nil dst is the whole frame.
	Copy(tex Texture, src, dst *Rect) error
	Present()
	LoadBMP(path string) (Texture, error)
	LoadTexture(path string) (Texture, error)
	RenderText(font Font, message string, color Color) (Texture, error)
	Destroy() error
}

// Driver is the graphics library as seen by a lesson. Every acquire call
// is paired with a release call: Init/Quit, InitImage/QuitImage,
// InitFont/QuitFont, CreateWindow/Window.Destroy,
// CreateRenderer/Renderer.Destroy and OpenFont/Font.Close.
type Driver interface {
	Init() error
	Quit()
	InitImage() error
	QuitImage()
	InitFont() error
	QuitFont()
	CreateWindow(title string, width, height int32) (Window, error)
	CreateRenderer(window Window) (Renderer, error)
	OpenFont(path string, size int) (Font, error)
	// PollEvent returns the next pending event or nil once drained.
	PollEvent() Event
	// Run calls step once per presented frame until it returns false.
	Run(step func() bool) error
	Delay(d time.Duration)
}

// OpError lets a backend name the library call that failed when one
// acquire step is made of several calls.
type OpError struct {
	Op  string
	Err error
}

func (err *OpError) Error() string {
	return err.Op + ": " + err.Err.Error()
}

func (err *OpError) Cause() error {
	return err.Err
}

func (err *OpError) Unwrap() error {
	return err.Err
}
