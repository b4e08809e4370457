// ebiten drives the lessons with Ebitengine. Ebiten owns the main loop, so
// the driver buffers each tick's input as events and draws into an
// offscreen frame that is shown on the next Draw.
package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/input"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/monotime"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
)

var _ renderer.Driver = new(Driver)

type Driver struct {
	window   *Window
	renderer *Renderer
	events   []renderer.Event
	keys     []ebiten.Key
	hasRun   bool
}

// Init does nothing, Ebiten starts itself inside RunGame
func (d *Driver) Init() error {
	return nil
}

func (d *Driver) Quit() {
}

// InitImage does nothing, decoders are registered on import
func (d *Driver) InitImage() error {
	return nil
}

func (d *Driver) QuitImage() {
}

func (d *Driver) InitFont() error {
	return nil
}

func (d *Driver) QuitFont() {
}

type Window struct {
	d             *Driver
	width, height int
}

func (d *Driver) CreateWindow(title string, width, height int32) (renderer.Window, error) {
	if d.window != nil {
		return nil, errors.New("ebiten only supports a single window")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid window size %dx%d", width, height)
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(width), int(height))
	ebiten.SetWindowClosingHandled(true)
	d.window = &Window{d: d, width: int(width), height: int(height)}
	return d.window, nil
}

func (win *Window) Destroy() error {
	if win.d.window != win {
		return errors.New("invalid window")
	}
	win.d.window = nil
	return nil
}

func (d *Driver) CreateRenderer(window renderer.Window) (renderer.Renderer, error) {
	win, ok := window.(*Window)
	if !ok || win != d.window {
		return nil, errors.New("invalid window")
	}
	d.renderer = &Renderer{
		d:      d,
		width:  win.width,
		height: win.height,
		back:   ebiten.NewImage(win.width, win.height),
		front:  ebiten.NewImage(win.width, win.height),
	}
	return d.renderer, nil
}

func (d *Driver) PollEvent() renderer.Event {
	if len(d.events) == 0 {
		return nil
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev
}

type ebitenGame struct {
	d    *Driver
	step func() bool
}

func (game *ebitenGame) Update() error {
	game.d.collectEvents()
	if !game.step() {
		return ebiten.Termination
	}
	return nil
}

func (game *ebitenGame) Draw(screen *ebiten.Image) {
	if r := game.d.renderer; r != nil {
		screen.DrawImage(r.front, nil)
	}
}

func (game *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if win := game.d.window; win != nil {
		return win.width, win.height
	}
	return outsideWidth, outsideHeight
}

// Run hands the main loop to Ebiten. Ebiten can only run a game once per
// process, so a lesson gets a single Run or Delay.
func (d *Driver) Run(step func() bool) error {
	if d.hasRun {
		return errors.New("ebiten game loop has already been run")
	}
	d.hasRun = true
	return ebiten.RunGame(&ebitenGame{d: d, step: step})
}

// Delay keeps showing the last presented frame for duration, or until the
// window is closed.
func (d *Driver) Delay(duration time.Duration) {
	deadline := monotime.Now() + duration
	err := d.Run(func() bool {
		for ev := d.PollEvent(); ev != nil; ev = d.PollEvent() {
			if _, ok := ev.(renderer.QuitEvent); ok {
				return false
			}
		}
		return monotime.Now() < deadline
	})
	if err != nil {
		log.Printf("ebiten delay: %v", err)
	}
}

var keys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeyE:          input.KeyE,
	ebiten.KeyF:          input.KeyF,
	ebiten.KeyH:          input.KeyH,
	ebiten.KeyJ:          input.KeyJ,
	ebiten.KeyK:          input.KeyK,
	ebiten.KeyL:          input.KeyL,
	ebiten.KeyQ:          input.KeyQ,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyDigit1:     input.Key1,
	ebiten.KeyDigit2:     input.Key2,
	ebiten.KeyDigit3:     input.Key3,
	ebiten.KeyDigit4:     input.Key4,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyEnter:      input.KeyReturn,
}

var mouseButtons = [...]struct {
	native ebiten.MouseButton
	button input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseButtonLeft},
	{ebiten.MouseButtonRight, input.MouseButtonRight},
	{ebiten.MouseButtonMiddle, input.MouseButtonMiddle},
}

// collectEvents turns this tick's input state changes into events
func (d *Driver) collectEvents() {
	if ebiten.IsWindowBeingClosed() {
		d.events = append(d.events, renderer.QuitEvent{})
	}
	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	for _, key := range d.keys {
		d.events = append(d.events, renderer.KeyDownEvent{Key: keys[key]})
	}
	for _, b := range mouseButtons {
		if !inpututil.IsMouseButtonJustPressed(b.native) {
			continue
		}
		x, y := ebiten.CursorPosition()
		d.events = append(d.events, renderer.MouseButtonDownEvent{
			Button: b.button,
			X:      int32(x),
			Y:      int32(y),
		})
	}
}
