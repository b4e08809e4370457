package asset

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/app/lifecycle"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/diag"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer/headless"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer/headless/fixture"
)

func TestResourceRoot(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		ExeDir   string
		Expected string
	}{
		{ExeDir: sep + filepath.Join("opt", "lessons", "bin"), Expected: sep + filepath.Join("opt", "lessons", "res")},
		{ExeDir: sep + filepath.Join("opt", "lessons"), Expected: sep + filepath.Join("opt", "lessons", "res")},
	}
	for _, test := range tests {
		if got := resourceRoot(test.ExeDir); got != test.Expected {
			t.Errorf("resourceRoot(%q) = %q, expected %q", test.ExeDir, got, test.Expected)
		}
	}
}

func TestDefaultResolverEnv(t *testing.T) {
	t.Setenv(EnvResourcePath, "/srv/res")
	if root := DefaultResolver().Root; root != "/srv/res" {
		t.Errorf("root = %q", root)
	}
}

func TestResolverDir(t *testing.T) {
	r := Resolver{Root: filepath.Join("a", "res")}
	dir := r.Dir("lesson3")
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		t.Errorf("Dir(%q) = %q is missing a trailing separator", "lesson3", dir)
	}
	if got, want := r.Resolve("lesson3", "image.png"), filepath.Join("a", "res", "lesson3", "image.png"); got != want {
		t.Errorf("Resolve = %q, expected %q", got, want)
	}
}

type loaderEnv struct {
	driver *headless.Driver
	scope  *lifecycle.Scope
	loader *Loader
	diag   *bytes.Buffer
}

func newLoaderEnv(t *testing.T) *loaderEnv {
	t.Helper()
	root := t.TempDir()
	if err := fixture.WriteImage(filepath.Join(root, "lesson", "image.png"), fixture.Solid(100, 100, color.White)); err != nil {
		t.Fatal(err)
	}
	if err := fixture.WriteFont(filepath.Join(root, "lesson", "sample.ttf")); err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	diag.SetOutput(buf)
	t.Cleanup(func() { diag.SetOutput(os.Stdout) })

	d := headless.New()
	if err := d.Init(); err != nil {
		t.Fatal(err)
	}
	if err := d.InitFont(); err != nil {
		t.Fatal(err)
	}
	win, err := d.CreateWindow("loader", 640, 480)
	if err != nil {
		t.Fatal(err)
	}
	ren, err := d.CreateRenderer(win)
	if err != nil {
		t.Fatal(err)
	}
	scope := &lifecycle.Scope{}
	return &loaderEnv{
		driver: d,
		scope:  scope,
		loader: NewLoader(scope, d, ren, Resolver{Root: root}, "lesson"),
		diag:   buf,
	}
}

func TestLoaderLoadsTexture(t *testing.T) {
	env := newLoaderEnv(t)
	tex := env.loader.LoadTexture("image.png")
	if tex == nil {
		t.Fatalf("LoadTexture returned nil: %v", env.loader.Err())
	}
	if w, h := tex.Size(); w != 100 || h != 100 {
		t.Errorf("size = (%d, %d), expected (100, 100)", w, h)
	}
	if env.scope.Len() != 1 {
		t.Errorf("scope holds %d handles, expected 1", env.scope.Len())
	}
	live := env.driver.Live()
	env.scope.Close()
	if env.driver.Live() != live-1 {
		t.Errorf("closing the scope did not destroy the texture")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	env := newLoaderEnv(t)
	tex := env.loader.LoadTexture("missing.png")
	if tex != nil {
		t.Fatalf("expected nil texture")
	}
	if env.loader.Err() == nil {
		t.Errorf("Err() is nil after a failed load")
	}
	if !strings.HasPrefix(env.diag.String(), "IMG_LoadTexture error: ") || strings.Count(env.diag.String(), "\n") != 1 {
		t.Errorf("unexpected diagnostic %q", env.diag.String())
	}
	if env.scope.Len() != 0 {
		t.Errorf("failed load was pushed onto the scope")
	}
}

func TestLoaderLoadsEveryCallFresh(t *testing.T) {
	env := newLoaderEnv(t)
	a := env.loader.LoadTexture("image.png")
	b := env.loader.LoadTexture("image.png")
	if a == nil || b == nil || a == b {
		t.Errorf("expected two distinct textures, got %p and %p", a, b)
	}
}

func TestLoaderFirstErrorKept(t *testing.T) {
	env := newLoaderEnv(t)
	env.loader.LoadBMP("first.bmp")
	first := env.loader.Err()
	env.loader.LoadBMP("second.bmp")
	if env.loader.Err() != first {
		t.Errorf("Err() changed after a second failure")
	}
}

func TestLoaderText(t *testing.T) {
	env := newLoaderEnv(t)
	font := env.loader.OpenFont("sample.ttf", 32)
	if font == nil {
		t.Fatalf("OpenFont returned nil: %v", env.loader.Err())
	}
	tex := env.loader.RenderText(font, "hi", renderer.Color{R: 255, A: 255})
	if tex == nil {
		t.Fatalf("RenderText returned nil: %v", env.loader.Err())
	}
	env.scope.Close()
	calls := env.driver.Calls()
	tail := calls[len(calls)-2:]
	if diff := cmp.Diff([]string{"SDL_DestroyTexture hi", "TTF_CloseFont sample.ttf"}, tail); diff != "" {
		t.Errorf("release order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderTextWithoutFont(t *testing.T) {
	env := newLoaderEnv(t)
	font := env.loader.OpenFont("missing.ttf", 32)
	if tex := env.loader.RenderText(font, "hi", renderer.Color{}); tex != nil {
		t.Errorf("expected nil texture")
	}
	if n := strings.Count(env.diag.String(), "\n"); n != 1 {
		t.Errorf("expected one diagnostic line, got %q", env.diag.String())
	}
}
