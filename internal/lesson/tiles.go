package lesson

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/app"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/asset"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/world"
)

// Tiles loads PNGs through the image extension and tiles the background
// at a fixed tile size, whatever the image's own size is.
type Tiles struct {
	TileSize int32

	background renderer.Texture
	image      renderer.Texture
}

func NewTiles() *Tiles {
	return &Tiles{TileSize: 40}
}

func (lesson *Tiles) Config() app.Config {
	cfg := base("Lesson 3", "lesson3")
	cfg.Image = true
	cfg.Hold = hold
	return cfg
}

func (lesson *Tiles) Load(l *asset.Loader, fs *world.FrameState) error {
	lesson.background = l.LoadTexture("background.png")
	lesson.image = l.LoadTexture("image.png")
	if err := l.Err(); err != nil {
		return err
	}
	w, h := lesson.image.Size()
	fs.X, fs.Y = renderer.Centered(ScreenWidth, ScreenHeight, w, h)
	return nil
}

func (lesson *Tiles) Draw(ren renderer.Renderer, fs *world.FrameState) {
	size := lesson.TileSize
	for y := int32(0); y < ScreenHeight; y += size {
		for x := int32(0); x < ScreenWidth; x += size {
			renderer.RenderTextureSize(ren, lesson.background, x, y, size, size)
		}
	}
	renderer.RenderTexture(ren, lesson.image, fs.X, fs.Y)
}
