// lifecycle tracks what a lesson has acquired so everything is released in
// reverse order, whichever way the lesson exits.
package lifecycle

import (
	"log"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/diag"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
)

// Kind classifies an acquisition failure
type Kind int

const (
	// SubsystemInit is the base library or an extension failing to start
	SubsystemInit Kind = iota + 1
	// ResourceCreation is the window or renderer failing to be created
	ResourceCreation
	// AssetLoad is an image or font failing to load or decode
	AssetLoad
)

func (kind Kind) String() string {
	switch kind {
	case SubsystemInit:
		return "subsystem init failure"
	case ResourceCreation:
		return "resource creation failure"
	case AssetLoad:
		return "asset load failure"
	}
	return "unknown failure"
}

// Error is a failed acquisition step. Op is the library call that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (err *Error) Error() string {
	return err.Op + " error: " + err.Err.Error()
}

func (err *Error) Cause() error {
	return err.Err
}

func (err *Error) Unwrap() error {
	return err.Err
}

type release struct {
	name string
	fn   func() error
}

// Scope is a stack of release functions. It is not safe for concurrent use,
// a scope belongs to the goroutine that owns the window.
type Scope struct {
	releases []release
}

// Push registers fn to be called when the scope is closed
func (s *Scope) Push(name string, fn func() error) {
	s.releases = append(s.releases, release{name: name, fn: fn})
}

// Len is the number of resources currently held
func (s *Scope) Len() int {
	return len(s.releases)
}

// Close releases everything in reverse order of acquisition. It can be
// called more than once; later calls do nothing.
func (s *Scope) Close() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		r := s.releases[i]
		if err := r.fn(); err != nil {
			log.Printf("failed to release %s: %v", r.name, err)
		}
	}
	s.releases = nil
}

// Acquire runs open and, if it succeeds, pushes free onto the scope.
// On failure the error is logged as "<op> error: <message>" and returned
// as an *Error, nothing is pushed and the zero value is returned.
func Acquire[T any](s *Scope, kind Kind, op string, open func() (T, error), free func(T) error) (T, error) {
	v, err := open()
	if err != nil {
		var zero T
		return zero, fail(kind, op, err)
	}
	s.Push(op, func() error {
		return free(v)
	})
	return v, nil
}

// Start is Acquire for subsystems that have no handle.
func Start(s *Scope, kind Kind, op string, start func() error, stop func()) error {
	if err := start(); err != nil {
		return fail(kind, op, err)
	}
	s.Push(op, func() error {
		stop()
		return nil
	})
	return nil
}

func fail(kind Kind, op string, err error) error {
	// Backends may name the inner call that failed
	var opErr *renderer.OpError
	if errors.As(err, &opErr) {
		op, err = opErr.Op, opErr.Err
	}
	diag.Error(op, err)
	return &Error{Kind: kind, Op: op, Err: err}
}
