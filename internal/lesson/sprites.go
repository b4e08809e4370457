package lesson

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/app"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/asset"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/input"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/world"
)

// SpriteSheet describes a grid of equally sized sprites
type SpriteSheet struct {
	SpriteW, SpriteH int32
	Rows, Cols       int
}

// Clips returns the source rectangle of every sprite, column by column
func (sheet SpriteSheet) Clips() []renderer.Rect {
	clips := make([]renderer.Rect, sheet.Rows*sheet.Cols)
	for i := range clips {
		clips[i] = renderer.Rect{
			X: int32(i/sheet.Rows) * sheet.SpriteW,
			Y: int32(i%sheet.Rows) * sheet.SpriteH,
			W: sheet.SpriteW,
			H: sheet.SpriteH,
		}
	}
	return clips
}

// Sprites moves one sprite of a sheet around, keys 1 to 4 pick the sprite
type Sprites struct {
	Step  int32
	Sheet SpriteSheet

	image renderer.Texture
	clips []renderer.Rect
}

func NewSprites() *Sprites {
	return &Sprites{
		Step: 10,
		Sheet: SpriteSheet{
			SpriteW: 100,
			SpriteH: 100,
			Rows:    2,
			Cols:    2,
		},
	}
}

func (lesson *Sprites) Config() app.Config {
	cfg := base("Lesson 5", "lesson5")
	cfg.Image = true
	cfg.Step = lesson.Step
	return cfg
}

func (lesson *Sprites) Load(l *asset.Loader, fs *world.FrameState) error {
	lesson.image = l.LoadTexture("image.png")
	if err := l.Err(); err != nil {
		return err
	}
	lesson.clips = lesson.Sheet.Clips()
	fs.X, fs.Y = renderer.Centered(ScreenWidth, ScreenHeight, lesson.Sheet.SpriteW, lesson.Sheet.SpriteH)
	fs.Clip = 0
	return nil
}

var clipKeys = map[input.Key]int{
	input.Key1: 0,
	input.Key2: 1,
	input.Key3: 2,
	input.Key4: 3,
}

func (lesson *Sprites) HandleKey(key input.Key, fs *world.FrameState) bool {
	clip, ok := clipKeys[key]
	if !ok || clip >= len(lesson.clips) {
		return false
	}
	fs.Clip = clip
	return true
}

func (lesson *Sprites) Draw(ren renderer.Renderer, fs *world.FrameState) {
	renderer.RenderClipAt(ren, lesson.image, fs.X, fs.Y, &lesson.clips[fs.Clip])
}
