package renderer

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer/internal/rendereriface"
)

type Rect = rendereriface.Rect

type Color = rendereriface.Color

// Texture is an image loaded by the renderer
type Texture = rendereriface.Texture

type Font = rendereriface.Font

type Window = rendereriface.Window

type Renderer = rendereriface.Renderer

// Driver is the implementation of the graphics library, picked by build tags
type Driver = rendereriface.Driver

type OpError = rendereriface.OpError

type Event = rendereriface.Event

type QuitEvent = rendereriface.QuitEvent

type KeyDownEvent = rendereriface.KeyDownEvent

type MouseButtonDownEvent = rendereriface.MouseButtonDownEvent

type OtherEvent = rendereriface.OtherEvent
