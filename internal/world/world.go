package world

import (
	"github.com/silbinarywolf/toy-sdl-lessons/internal/input"
	"github.com/silbinarywolf/toy-sdl-lessons/internal/renderer"
)

// State of the input loop
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// FrameState is what a lesson mutates from input and reads when drawing.
// It only lives as long as one run of the loop.
type FrameState struct {
	X, Y int32
	// Clip is the index of the active sprite sheet clip
	Clip int
	Quit bool
}

// Move shifts the draw position
func (fs *FrameState) Move(dx, dy int32) {
	fs.X += dx
	fs.Y += dy
}

// KeyHandler lets a lesson claim keys outside of the movement set.
// Returning false means the key wasn't handled.
type KeyHandler func(key input.Key, fs *FrameState) bool

// Loop maps input events onto a FrameState
type Loop struct {
	// Step is how far a movement key moves, 0 disables movement keys
	Step int32
	Keys KeyHandler
}

// Handle applies one event. Once terminated, later events are ignored.
func (loop *Loop) Handle(ev renderer.Event, fs *FrameState) State {
	if fs.Quit {
		return Terminated
	}
	switch ev := ev.(type) {
	case renderer.QuitEvent, *renderer.QuitEvent:
		fs.Quit = true
	case renderer.MouseButtonDownEvent, *renderer.MouseButtonDownEvent:
		fs.Quit = true
	case renderer.KeyDownEvent:
		loop.handleKey(ev.Key, fs)
	case *renderer.KeyDownEvent:
		loop.handleKey(ev.Key, fs)
	}
	if fs.Quit {
		return Terminated
	}
	return Running
}

func (loop *Loop) handleKey(key input.Key, fs *FrameState) {
	if loop.Step != 0 {
		if dir, ok := input.Movement(key); ok {
			fs.Move(dir.Delta(loop.Step))
			return
		}
	}
	if loop.Keys != nil && loop.Keys(key, fs) {
		return
	}
	// any unbound key quits
	fs.Quit = true
}

// Drain polls until no events are pending and reports the resulting state.
// It never blocks.
func (loop *Loop) Drain(poll func() renderer.Event, fs *FrameState) State {
	state := Running
	if fs.Quit {
		state = Terminated
	}
	for ev := poll(); ev != nil; ev = poll() {
		state = loop.Handle(ev, fs)
	}
	return state
}
