// lesson3 loads PNGs with the image extension and tiles them at a fixed size.
package main

import (
	"os"

	"github.com/silbinarywolf/toy-sdl-lessons/internal/app/platform"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/lesson"
)

func main() {
	os.Exit(platform.Main(lesson.NewTiles()))
}
