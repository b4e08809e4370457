// headless is a software driver for the lessons so they can be run and
// inspected without a display. It draws into an in-memory frame and
// records every library call so tests can check acquisition order and leaks.
package headless

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	xdraw "golang.org/x/image/draw"
)

var _ renderer.Driver = new(Driver)

// Draw is one recorded copy onto the frame
type Draw struct {
	Texture string
	// Src is the clip region, or the whole texture when Clipped is false
	Src     renderer.Rect
	Clipped bool
	Dst     renderer.Rect
}

type Driver struct {
	failures map[string]error
	calls    []string
	draws    []Draw
	delays   []time.Duration
	live     int
	presents int

	script  [][]renderer.Event
	frame   int
	pending []renderer.Event

	initialized bool
	imageInit   bool
	fontInit    bool
	renderer    *Renderer
}

// New returns a driver that feeds script[i] as the pending events of
// frame i. Once the script runs out a QuitEvent is delivered.
func New(script ...[]renderer.Event) *Driver {
	return &Driver{
		failures: make(map[string]error),
		script:   script,
	}
}

// FailOn makes the library call named op fail with err
func (d *Driver) FailOn(op string, err error) {
	d.failures[op] = err
}

// Calls returns every acquire and release call in the order made
func (d *Driver) Calls() []string {
	return d.calls
}

func (d *Driver) Draws() []Draw {
	return d.draws
}

func (d *Driver) Delays() []time.Duration {
	return d.delays
}

// Live is the number of acquired handles that haven't been released
func (d *Driver) Live() int {
	return d.live
}

func (d *Driver) Presents() int {
	return d.presents
}

// Frame returns the frame buffer of the most recently created renderer
func (d *Driver) Frame() *image.RGBA {
	if d.renderer == nil {
		return nil
	}
	return d.renderer.frame
}

func (d *Driver) call(op string, subject string) error {
	if subject != "" {
		d.calls = append(d.calls, op+" "+subject)
	} else {
		d.calls = append(d.calls, op)
	}
	if err, ok := d.failures[op]; ok {
		return err
	}
	return nil
}

func (d *Driver) Init() error {
	if err := d.call("SDL_Init", ""); err != nil {
		return err
	}
	d.initialized = true
	d.live++
	return nil
}

func (d *Driver) Quit() {
	d.call("SDL_Quit", "")
	if d.initialized {
		d.initialized = false
		d.live--
	}
}

func (d *Driver) InitImage() error {
	if err := d.call("IMG_Init", ""); err != nil {
		return err
	}
	d.imageInit = true
	d.live++
	return nil
}

func (d *Driver) QuitImage() {
	d.call("IMG_Quit", "")
	if d.imageInit {
		d.imageInit = false
		d.live--
	}
}

func (d *Driver) InitFont() error {
	if err := d.call("TTF_Init", ""); err != nil {
		return err
	}
	d.fontInit = true
	d.live++
	return nil
}

func (d *Driver) QuitFont() {
	d.call("TTF_Quit", "")
	if d.fontInit {
		d.fontInit = false
		d.live--
	}
}

type Window struct {
	d             *Driver
	width, height int32
	destroyed     bool
}

func (d *Driver) CreateWindow(title string, width, height int32) (renderer.Window, error) {
	if err := d.call("SDL_CreateWindow", title); err != nil {
		return nil, err
	}
	if !d.initialized {
		return nil, errors.New("video subsystem has not been initialized")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid window size %dx%d", width, height)
	}
	d.live++
	return &Window{d: d, width: width, height: height}, nil
}

func (win *Window) Destroy() error {
	win.d.call("SDL_DestroyWindow", "")
	if win.destroyed {
		return errors.New("invalid window")
	}
	win.destroyed = true
	win.d.live--
	return nil
}

type Renderer struct {
	d         *Driver
	window    *Window
	frame     *image.RGBA
	destroyed bool
}

func (d *Driver) CreateRenderer(window renderer.Window) (renderer.Renderer, error) {
	if err := d.call("SDL_CreateRenderer", ""); err != nil {
		return nil, err
	}
	win, ok := window.(*Window)
	if !ok || win == nil || win.destroyed {
		return nil, errors.New("invalid window")
	}
	r := &Renderer{
		d:      d,
		window: win,
		frame:  image.NewRGBA(image.Rect(0, 0, int(win.width), int(win.height))),
	}
	d.renderer = r
	d.live++
	return r, nil
}

func (r *Renderer) Destroy() error {
	r.d.call("SDL_DestroyRenderer", "")
	if r.destroyed {
		return errors.New("invalid renderer")
	}
	r.destroyed = true
	r.d.live--
	return nil
}

func (r *Renderer) Clear() error {
	if r.destroyed {
		return errors.New("invalid renderer")
	}
	draw.Draw(r.frame, r.frame.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return nil
}

func (r *Renderer) Present() {
	r.d.presents++
}

func (r *Renderer) Copy(tex renderer.Texture, src, dst *renderer.Rect) error {
	if r.destroyed {
		return errors.New("invalid renderer")
	}
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.destroyed {
		return errors.New("invalid texture")
	}
	rec := Draw{Texture: t.name}
	sr := t.img.Bounds()
	if src != nil {
		rec.Src, rec.Clipped = *src, true
		sr = toRectangle(*src)
	} else {
		rec.Src = renderer.Rect{W: int32(sr.Dx()), H: int32(sr.Dy())}
	}
	dr := r.frame.Bounds()
	if dst != nil {
		rec.Dst = *dst
		dr = toRectangle(*dst)
	} else {
		rec.Dst = renderer.Rect{W: int32(dr.Dx()), H: int32(dr.Dy())}
	}
	r.d.draws = append(r.d.draws, rec)
	xdraw.NearestNeighbor.Scale(r.frame, dr, t.img, sr, xdraw.Over, nil)
	return nil
}

type Texture struct {
	d         *Driver
	name      string
	img       *image.RGBA
	destroyed bool
}

func (t *Texture) Size() (w, h int32) {
	b := t.img.Bounds()
	return int32(b.Dx()), int32(b.Dy())
}

func (t *Texture) Destroy() error {
	t.d.call("SDL_DestroyTexture", t.name)
	if t.destroyed {
		return errors.New("invalid texture")
	}
	t.destroyed = true
	t.d.live--
	return nil
}

func (r *Renderer) newTexture(name string, img image.Image) *Texture {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	r.d.live++
	return &Texture{d: r.d, name: name, img: rgba}
}

func (r *Renderer) LoadBMP(path string) (renderer.Texture, error) {
	return r.load("SDL_LoadBMP", path, "bmp")
}

func (r *Renderer) LoadTexture(path string) (renderer.Texture, error) {
	return r.load("IMG_LoadTexture", path, "")
}

// load decodes the file at path, format restricts which decoder may be used
func (r *Renderer) load(op, path, format string) (renderer.Texture, error) {
	name := filepath.Base(path)
	if err := r.d.call(op, name); err != nil {
		return nil, err
	}
	if r.destroyed {
		return nil, errors.New("invalid renderer")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open "+name)
	}
	defer f.Close()
	img, decodedAs, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't decode %s", name)
	}
	if format != "" && decodedAs != format {
		return nil, errors.Errorf("%s is not a %s file", name, format)
	}
	return r.newTexture(name, img), nil
}

type Font struct {
	d      *Driver
	name   string
	face   font.Face
	closed bool
}

func (f *Font) Close() error {
	f.d.call("TTF_CloseFont", f.name)
	if f.closed {
		return errors.New("font already closed")
	}
	f.closed = true
	f.d.live--
	return f.face.Close()
}

func (d *Driver) OpenFont(path string, size int) (renderer.Font, error) {
	name := filepath.Base(path)
	if err := d.call("TTF_OpenFont", name); err != nil {
		return nil, err
	}
	if !d.fontInit {
		return nil, errors.New("Library not initialized")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open "+name)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't parse %s", name)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't size %s at %dpt", name, size)
	}
	d.live++
	return &Font{d: d, name: name, face: face}, nil
}

func (r *Renderer) RenderText(fnt renderer.Font, message string, c renderer.Color) (renderer.Texture, error) {
	if err := r.d.call("TTF_RenderText_Blended", message); err != nil {
		return nil, err
	}
	f, ok := fnt.(*Font)
	if !ok || f == nil || f.closed {
		return nil, errors.New("invalid font")
	}
	width := font.MeasureString(f.face, message).Ceil()
	if width <= 0 {
		return nil, errors.New("Text has zero width")
	}
	metrics := f.face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}),
		Face: f.face,
		Dot:  fixed.Point26_6{Y: metrics.Ascent},
	}
	drawer.DrawString(message)
	return r.newTexture(message, img), nil
}

func (d *Driver) PollEvent() renderer.Event {
	if len(d.pending) == 0 {
		return nil
	}
	ev := d.pending[0]
	d.pending = d.pending[1:]
	return ev
}

func (d *Driver) Run(step func() bool) error {
	for {
		if d.frame > len(d.script) {
			return errors.New("headless: loop kept running after its script ended")
		}
		if d.frame < len(d.script) {
			d.pending = append(d.pending, d.script[d.frame]...)
		} else {
			d.pending = append(d.pending, renderer.QuitEvent{})
		}
		d.frame++
		if !step() {
			return nil
		}
	}
}

// Delay records the pause instead of sleeping
func (d *Driver) Delay(duration time.Duration) {
	d.delays = append(d.delays, duration)
}

func toRectangle(r renderer.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}
