package diag

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Error("SDL_CreateWindow", errors.New("No available video device"))
	if got, want := buf.String(), "SDL_CreateWindow error: No available video device\n"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}
