// platform picks the graphics driver at build time. Build with
// "-tags sdl" for SDL2 or "-tags headless" for the software driver,
// ebiten is used otherwise.
package platform

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/app"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/asset"
)

// Main runs lesson with the selected driver and returns the exit code
func Main(lesson app.Lesson) int {
	return app.Run(getRenderDriver(), lesson, asset.DefaultResolver())
}
