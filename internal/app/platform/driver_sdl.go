//go:build sdl && !headless

package platform

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer/sdl"
)

func getRenderDriver() renderer.Driver {
	return new(sdl.Driver)
}
