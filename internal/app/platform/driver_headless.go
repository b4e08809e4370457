//go:build headless

package platform

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer/headless"
)

func getRenderDriver() renderer.Driver {
	return headless.New()
}
