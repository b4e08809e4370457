// lesson4 moves an image around with the keyboard.
package main

import (
	"os"

	"github.com/silbinarywolf/toy-sdl-lessons/internal/app/platform"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/lesson"
)

func main() {
	os.Exit(platform.Main(lesson.NewMovement()))
}
