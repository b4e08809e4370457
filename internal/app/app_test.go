package app

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/asset"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/diag"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/input"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer/headless"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer/headless/fixture"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/world"
)

type testLesson struct {
	cfg   Config
	image renderer.Texture
	// frames is the frame state seen by every Draw
	frames []world.FrameState
}

func (lesson *testLesson) Config() Config {
	return lesson.cfg
}

func (lesson *testLesson) Load(l *asset.Loader, fs *world.FrameState) error {
	lesson.image = l.LoadTexture("image.png")
	if err := l.Err(); err != nil {
		return err
	}
	fs.X, fs.Y = 100, 100
	return nil
}

func (lesson *testLesson) Draw(ren renderer.Renderer, fs *world.FrameState) {
	lesson.frames = append(lesson.frames, *fs)
	renderer.RenderTexture(ren, lesson.image, fs.X, fs.Y)
}

func interactiveConfig() Config {
	return Config{
		Title:     "test",
		Width:     640,
		Height:    480,
		Image:     true,
		Resources: "lesson",
		Step:      10,
	}
}

// setup writes the lesson's image and captures diagnostics
func setup(t *testing.T) (asset.Resolver, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	if err := fixture.WriteImage(filepath.Join(root, "lesson", "image.png"), fixture.Solid(100, 100, color.White)); err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	diag.SetOutput(buf)
	t.Cleanup(func() { diag.SetOutput(os.Stdout) })
	return asset.Resolver{Root: root}, buf
}

var (
	acquireCalls = []string{
		"SDL_Init",
		"IMG_Init",
		"SDL_CreateWindow test",
		"SDL_CreateRenderer",
		"IMG_LoadTexture image.png",
	}
	releaseCalls = []string{
		"SDL_DestroyTexture image.png",
		"SDL_DestroyRenderer",
		"SDL_DestroyWindow",
		"IMG_Quit",
		"SDL_Quit",
	}
)

func TestRunSuccess(t *testing.T) {
	resolver, diagnostics := setup(t)
	d := headless.New()
	code := Run(d, &testLesson{cfg: interactiveConfig()}, resolver)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, diagnostics: %s", code, diagnostics)
	}
	expected := append(append([]string{}, acquireCalls...), releaseCalls...)
	if diff := cmp.Diff(expected, d.Calls()); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
	if d.Live() != 0 {
		t.Errorf("%d handles leaked", d.Live())
	}
	if diagnostics.Len() != 0 {
		t.Errorf("unexpected diagnostics %q", diagnostics)
	}
}

func TestRunFailureAtEachStep(t *testing.T) {
	tests := []struct {
		Op string
		// Acquired is how many of acquireCalls succeed before Op fails
		Acquired int
	}{
		{Op: "SDL_Init", Acquired: 0},
		{Op: "IMG_Init", Acquired: 1},
		{Op: "SDL_CreateWindow", Acquired: 2},
		{Op: "SDL_CreateRenderer", Acquired: 3},
		{Op: "IMG_LoadTexture", Acquired: 4},
	}
	for _, test := range tests {
		resolver, diagnostics := setup(t)
		d := headless.New()
		d.FailOn(test.Op, errors.New("boom"))
		code := Run(d, &testLesson{cfg: interactiveConfig()}, resolver)
		if code != ExitFailure {
			t.Errorf("%s: exit code = %d, expected %d", test.Op, code, ExitFailure)
		}
		// the failing call is attempted, then everything before it is
		// released in reverse
		expected := append([]string{}, acquireCalls[:test.Acquired+1]...)
		expected = append(expected, releaseCalls[len(releaseCalls)-test.Acquired:]...)
		if diff := cmp.Diff(expected, d.Calls()); diff != "" {
			t.Errorf("%s: call order mismatch (-want +got):\n%s", test.Op, diff)
		}
		if d.Live() != 0 {
			t.Errorf("%s: %d handles leaked", test.Op, d.Live())
		}
		if got, want := diagnostics.String(), test.Op+" error: boom\n"; got != want {
			t.Errorf("%s: diagnostics = %q, expected %q", test.Op, got, want)
		}
		if d.Presents() != 0 {
			t.Errorf("%s: presented a frame after failing", test.Op)
		}
	}
}

func TestRunMissingAsset(t *testing.T) {
	_, diagnostics := setup(t)
	d := headless.New()
	code := Run(d, &testLesson{cfg: interactiveConfig()}, asset.Resolver{Root: t.TempDir()})
	if code != ExitFailure {
		t.Errorf("exit code = %d, expected %d", code, ExitFailure)
	}
	if d.Live() != 0 {
		t.Errorf("%d handles leaked", d.Live())
	}
	if diagnostics.Len() == 0 {
		t.Errorf("missing asset was not logged")
	}
}

func TestRunMovement(t *testing.T) {
	resolver, _ := setup(t)
	d := headless.New(
		[]renderer.Event{renderer.KeyDownEvent{Key: input.KeyUp}},
		[]renderer.Event{renderer.KeyDownEvent{Key: input.KeyLeft}},
		[]renderer.Event{renderer.QuitEvent{}},
	)
	lesson := &testLesson{cfg: interactiveConfig()}
	if code := Run(d, lesson, resolver); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	expected := []world.FrameState{
		{X: 100, Y: 90},
		{X: 90, Y: 90},
	}
	if diff := cmp.Diff(expected, lesson.frames); diff != "" {
		t.Errorf("frame states mismatch (-want +got):\n%s", diff)
	}
	if d.Presents() != 2 {
		t.Errorf("presented %d frames, expected 2", d.Presents())
	}
	if d.Live() != 0 {
		t.Errorf("%d handles leaked", d.Live())
	}
}

func TestRunQuitInFirstFrame(t *testing.T) {
	resolver, _ := setup(t)
	d := headless.New(
		[]renderer.Event{
			renderer.KeyDownEvent{Key: input.KeyUp},
			renderer.KeyDownEvent{Key: input.KeyLeft},
			renderer.MouseButtonDownEvent{Button: input.MouseButtonLeft},
		},
	)
	lesson := &testLesson{cfg: interactiveConfig()}
	if code := Run(d, lesson, resolver); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if len(lesson.frames) != 0 || len(d.Draws()) != 0 {
		t.Errorf("drew %d frames after quitting", len(lesson.frames))
	}
	if d.Live() != 0 {
		t.Errorf("%d handles leaked", d.Live())
	}
}

func TestRunHold(t *testing.T) {
	resolver, _ := setup(t)
	d := headless.New()
	cfg := interactiveConfig()
	cfg.Hold = 2 * time.Second
	lesson := &testLesson{cfg: cfg}
	if code := Run(d, lesson, resolver); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if diff := cmp.Diff([]time.Duration{2 * time.Second}, d.Delays()); diff != "" {
		t.Errorf("delays mismatch (-want +got):\n%s", diff)
	}
	if d.Presents() != 1 || len(lesson.frames) != 1 {
		t.Errorf("static lesson presented %d frames, expected 1", d.Presents())
	}
}

type keyLesson struct {
	testLesson
}

func (lesson *keyLesson) HandleKey(key input.Key, fs *world.FrameState) bool {
	if key != input.Key2 {
		return false
	}
	fs.Clip = 1
	return true
}

func TestRunKeyHandler(t *testing.T) {
	resolver, _ := setup(t)
	d := headless.New(
		[]renderer.Event{renderer.KeyDownEvent{Key: input.Key2}},
		[]renderer.Event{renderer.KeyDownEvent{Key: input.KeyQ}},
	)
	lesson := &keyLesson{testLesson{cfg: interactiveConfig()}}
	if code := Run(d, lesson, resolver); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if len(lesson.frames) != 1 || lesson.frames[0].Clip != 1 {
		t.Errorf("unexpected frames %+v", lesson.frames)
	}
}

func TestRunExtensionOrder(t *testing.T) {
	resolver, _ := setup(t)
	d := headless.New()
	cfg := interactiveConfig()
	cfg.Font = true
	cfg.Hold = time.Second
	if code := Run(d, &testLesson{cfg: cfg}, resolver); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	calls := d.Calls()
	expected := []string{"SDL_Init", "IMG_Init", "TTF_Init"}
	if diff := cmp.Diff(expected, calls[:3]); diff != "" {
		t.Errorf("init order mismatch (-want +got):\n%s", diff)
	}
	expected = []string{"TTF_Quit", "IMG_Quit", "SDL_Quit"}
	if diff := cmp.Diff(expected, calls[len(calls)-3:]); diff != "" {
		t.Errorf("quit order mismatch (-want +got):\n%s", diff)
	}
}
