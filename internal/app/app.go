package app

import (
	"runtime"
	"time"

	"github.com/silbinarywolf/toy-sdl-lessons/internal/app/lifecycle"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/asset"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/diag"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/input"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/world"
)

func init() {
	// The window, renderer and every texture belong to the main thread
	runtime.LockOSThread()
}

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Config is everything that differs between lessons' lifecycles
type Config struct {
	Title         string
	Width, Height int32
	// NoWindow lessons only initialize the base library
	NoWindow bool
	// Image and Font start the image or font extension after the base library
	Image bool
	Font  bool
	// Resources is the lesson's directory under the resource root
	Resources string
	// Hold makes the lesson static: draw one frame and show it this long.
	// Zero runs the interactive loop instead.
	Hold time.Duration
	// Step is how far movement keys move the draw position, 0 disables them
	Step int32
}

// Lesson is one tutorial program run by the lifecycle
type Lesson interface {
	Config() Config
	// Load acquires the lesson's assets and sets up the initial frame state
	Load(l *asset.Loader, fs *world.FrameState) error
	Draw(ren renderer.Renderer, fs *world.FrameState)
}

// KeyHandler is implemented by lessons that react to keys outside of
// the movement set
type KeyHandler interface {
	HandleKey(key input.Key, fs *world.FrameState) bool
}

// Run acquires everything lesson needs, runs it, and releases it again in
// reverse order on every path. It returns the process exit code.
func Run(driver renderer.Driver, lesson Lesson, resolver asset.Resolver) int {
	if err := run(driver, lesson, resolver); err != nil {
		return ExitFailure
	}
	return ExitSuccess
}

func run(driver renderer.Driver, lesson Lesson, resolver asset.Resolver) error {
	cfg := lesson.Config()
	scope := &lifecycle.Scope{}
	defer scope.Close()

	if err := lifecycle.Start(scope, lifecycle.SubsystemInit, "SDL_Init", driver.Init, driver.Quit); err != nil {
		return err
	}
	if cfg.Image {
		if err := lifecycle.Start(scope, lifecycle.SubsystemInit, "IMG_Init", driver.InitImage, driver.QuitImage); err != nil {
			return err
		}
	}
	if cfg.Font {
		if err := lifecycle.Start(scope, lifecycle.SubsystemInit, "TTF_Init", driver.InitFont, driver.QuitFont); err != nil {
			return err
		}
	}

	var fs world.FrameState
	if cfg.NoWindow {
		return lesson.Load(asset.NewLoader(scope, driver, nil, resolver, cfg.Resources), &fs)
	}

	win, err := lifecycle.Acquire(scope, lifecycle.ResourceCreation, "SDL_CreateWindow", func() (renderer.Window, error) {
		return driver.CreateWindow(cfg.Title, cfg.Width, cfg.Height)
	}, renderer.Window.Destroy)
	if err != nil {
		return err
	}
	ren, err := lifecycle.Acquire(scope, lifecycle.ResourceCreation, "SDL_CreateRenderer", func() (renderer.Renderer, error) {
		return driver.CreateRenderer(win)
	}, renderer.Renderer.Destroy)
	if err != nil {
		return err
	}

	loader := asset.NewLoader(scope, driver, ren, resolver, cfg.Resources)
	if err := lesson.Load(loader, &fs); err != nil {
		return err
	}

	if cfg.Hold > 0 {
		drawFrame(ren, lesson, &fs)
		driver.Delay(cfg.Hold)
		return nil
	}

	loop := world.Loop{Step: cfg.Step}
	if handler, ok := lesson.(KeyHandler); ok {
		loop.Keys = handler.HandleKey
	}
	err = driver.Run(func() bool {
		if loop.Drain(driver.PollEvent, &fs) == world.Terminated {
			return false
		}
		drawFrame(ren, lesson, &fs)
		return true
	})
	if err != nil {
		diag.Error("RunGame", err)
		return err
	}
	return nil
}

func drawFrame(ren renderer.Renderer, lesson Lesson, fs *world.FrameState) {
	if err := ren.Clear(); err != nil {
		diag.Error("SDL_RenderClear", err)
	}
	lesson.Draw(ren, fs)
	ren.Present()
}
