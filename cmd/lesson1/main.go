// lesson1 shows a bitmap stretched over the window.
package main

import (
	"os"

	"github.com/silbinarywolf/toy-sdl-lessons/internal/app/platform"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/lesson"
)

func main() {
	os.Exit(platform.Main(lesson.NewHello()))
}
