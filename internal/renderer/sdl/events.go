//go:build sdl

package sdl

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/input"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/veandco/go-sdl2/sdl"
)

var keys = map[sdl.Keycode]input.Key{
	sdl.Keycode(sdl.K_UP):     input.KeyUp,
	sdl.Keycode(sdl.K_DOWN):   input.KeyDown,
	sdl.Keycode(sdl.K_LEFT):   input.KeyLeft,
	sdl.Keycode(sdl.K_RIGHT):  input.KeyRight,
	sdl.Keycode(sdl.K_d):      input.KeyD,
	sdl.Keycode(sdl.K_e):      input.KeyE,
	sdl.Keycode(sdl.K_f):      input.KeyF,
	sdl.Keycode(sdl.K_h):      input.KeyH,
	sdl.Keycode(sdl.K_j):      input.KeyJ,
	sdl.Keycode(sdl.K_k):      input.KeyK,
	sdl.Keycode(sdl.K_l):      input.KeyL,
	sdl.Keycode(sdl.K_q):      input.KeyQ,
	sdl.Keycode(sdl.K_s):      input.KeyS,
	sdl.Keycode(sdl.K_1):      input.Key1,
	sdl.Keycode(sdl.K_2):      input.Key2,
	sdl.Keycode(sdl.K_3):      input.Key3,
	sdl.Keycode(sdl.K_4):      input.Key4,
	sdl.Keycode(sdl.K_ESCAPE): input.KeyEscape,
	sdl.Keycode(sdl.K_SPACE):  input.KeySpace,
	sdl.Keycode(sdl.K_RETURN): input.KeyReturn,
}

func translateEvent(event sdl.Event) renderer.Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return renderer.QuitEvent{}
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			break
		}
		// unmapped keys are KeyUnknown
		return renderer.KeyDownEvent{Key: keys[e.Keysym.Sym]}
	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN {
			break
		}
		return renderer.MouseButtonDownEvent{
			Button: translateButton(int(e.Button)),
			X:      e.X,
			Y:      e.Y,
		}
	}
	return renderer.OtherEvent{}
}

func translateButton(button int) input.MouseButton {
	switch button {
	case int(sdl.BUTTON_RIGHT):
		return input.MouseButtonRight
	case int(sdl.BUTTON_MIDDLE):
		return input.MouseButtonMiddle
	}
	return input.MouseButtonLeft
}
