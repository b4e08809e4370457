package lesson

import (
	"fmt"

	"github.com/silbinarywolf/toy-sdl-lessons/internal/app"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/asset"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/world"
)

// ResourcePath only starts the base library and prints where resources
// are read from.
type ResourcePath struct {
	// Printf defaults to fmt.Printf
	Printf func(format string, a ...interface{}) (int, error)
}

func NewResourcePath() *ResourcePath {
	return &ResourcePath{Printf: fmt.Printf}
}

func (lesson *ResourcePath) Config() app.Config {
	return app.Config{NoWindow: true}
}

func (lesson *ResourcePath) Load(l *asset.Loader, fs *world.FrameState) error {
	lesson.Printf("Resource path is: %s\n", l.Root())
	return nil
}

func (lesson *ResourcePath) Draw(ren renderer.Renderer, fs *world.FrameState) {
}
