package lesson

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/app"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/asset"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/world"
)

// Background tiles a bitmap at its own size and centers a second one on top
type Background struct {
	background renderer.Texture
	image      renderer.Texture
}

func NewBackground() *Background {
	return &Background{}
}

func (lesson *Background) Config() app.Config {
	cfg := base("Lesson 2", "lesson2")
	cfg.Hold = hold
	return cfg
}

func (lesson *Background) Load(l *asset.Loader, fs *world.FrameState) error {
	lesson.background = l.LoadBMP("background.bmp")
	lesson.image = l.LoadBMP("image.bmp")
	if err := l.Err(); err != nil {
		return err
	}
	w, h := lesson.image.Size()
	fs.X, fs.Y = renderer.Centered(ScreenWidth, ScreenHeight, w, h)
	return nil
}

func (lesson *Background) Draw(ren renderer.Renderer, fs *world.FrameState) {
	bw, bh := lesson.background.Size()
	if bw > 0 && bh > 0 {
		for y := int32(0); y < ScreenHeight; y += bh {
			for x := int32(0); x < ScreenWidth; x += bw {
				renderer.RenderTexture(ren, lesson.background, x, y)
			}
		}
	}
	renderer.RenderTexture(ren, lesson.image, fs.X, fs.Y)
}
