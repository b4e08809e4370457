// lesson holds the tutorial programs, each one a Config plus the assets it
// loads and how it draws a frame
package lesson

import (
	"time"

	"github.com/silbinarywolf/toy-sdl-lessons/internal/app"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	// hold is how long static lessons show their frame
	hold = 2 * time.Second
)

// base returns the window settings every lesson starts from
func base(title, resources string) app.Config {
	return app.Config{
		Title:     title,
		Width:     ScreenWidth,
		Height:    ScreenHeight,
		Resources: resources,
	}
}
