package lesson

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/app"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/asset"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/world"
)

// Movement moves an image around with the arrow, ESDF or HJKL keys
type Movement struct {
	Step int32

	image renderer.Texture
}

func NewMovement() *Movement {
	return &Movement{Step: 2}
}

func (lesson *Movement) Config() app.Config {
	cfg := base("Lesson 4", "lesson4")
	cfg.Image = true
	cfg.Step = lesson.Step
	return cfg
}

func (lesson *Movement) Load(l *asset.Loader, fs *world.FrameState) error {
	lesson.image = l.LoadTexture("image.png")
	if err := l.Err(); err != nil {
		return err
	}
	w, h := lesson.image.Size()
	fs.X, fs.Y = renderer.Centered(ScreenWidth, ScreenHeight, w, h)
	return nil
}

func (lesson *Movement) Draw(ren renderer.Renderer, fs *world.FrameState) {
	renderer.RenderTexture(ren, lesson.image, fs.X, fs.Y)
}
