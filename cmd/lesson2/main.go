// lesson2 tiles a bitmap background behind a centered image.
package main

import (
	"os"

	"github.com/silbinarywolf/toy-sdl-lessons/internal/app/platform"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/lesson"
)

func main() {
	os.Exit(platform.Main(lesson.NewBackground()))
}
