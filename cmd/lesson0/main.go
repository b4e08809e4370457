// lesson0 prints the resource directory the lessons load from.
package main

import (
	"os"

	"github.com/silbinarywolf/toy-sdl-lessons/internal/app/platform"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/lesson"
)

func main() {
	os.Exit(platform.Main(lesson.NewResourcePath()))
}
