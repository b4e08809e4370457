package lesson

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/app"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/asset"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/world"
)

// Text renders a message with a TrueType font in the middle of the window.
// Any key or click quits.
type Text struct {
	FontFile string
	FontSize int
	Message  string
	Color    renderer.Color

	image renderer.Texture
}

func NewText() *Text {
	return &Text{
		FontFile: "sample.ttf",
		FontSize: 64,
		Message:  "TTF fonts are cool!",
		Color:    renderer.Color{R: 255, G: 255, B: 255, A: 255},
	}
}

func (lesson *Text) Config() app.Config {
	cfg := base("Lesson 6", "lesson6")
	cfg.Font = true
	return cfg
}

func (lesson *Text) Load(l *asset.Loader, fs *world.FrameState) error {
	font := l.OpenFont(lesson.FontFile, lesson.FontSize)
	lesson.image = l.RenderText(font, lesson.Message, lesson.Color)
	if err := l.Err(); err != nil {
		return err
	}
	w, h := lesson.image.Size()
	fs.X, fs.Y = renderer.Centered(ScreenWidth, ScreenHeight, w, h)
	return nil
}

func (lesson *Text) Draw(ren renderer.Renderer, fs *world.FrameState) {
	renderer.RenderTexture(ren, lesson.image, fs.X, fs.Y)
}
