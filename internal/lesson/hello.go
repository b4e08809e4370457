package lesson

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/app"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/asset"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/world"
)

// Hello stretches a bitmap over the whole window for a couple of seconds
type Hello struct {
	image renderer.Texture
}

func NewHello() *Hello {
	return &Hello{}
}

func (lesson *Hello) Config() app.Config {
	cfg := base("Hello World!", "lesson1")
	cfg.Hold = hold
	return cfg
}

func (lesson *Hello) Load(l *asset.Loader, fs *world.FrameState) error {
	lesson.image = l.LoadBMP("hello.bmp")
	return l.Err()
}

func (lesson *Hello) Draw(ren renderer.Renderer, fs *world.FrameState) {
	renderer.RenderFull(ren, lesson.image)
}
