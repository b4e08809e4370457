//go:build !sdl && !headless

package platform

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer/ebiten"
)

func getRenderDriver() renderer.Driver {
	return new(ebiten.Driver)
}
