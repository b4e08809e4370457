package input

// Key represents a keyboard key.
type Key int32

// Only defining keys used by the lessons. Every backend maps its own key
// codes onto these and reports anything else as KeyUnknown.
const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyD
	KeyE
	KeyF
	KeyH
	KeyJ
	KeyK
	KeyL
	KeyQ
	KeyS
	Key1
	Key2
	Key3
	Key4
	KeyEscape
	KeySpace
	KeyReturn
)

var keyNames = [...]string{
	KeyUnknown: "Unknown",
	KeyUp:      "Up",
	KeyDown:    "Down",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeyD:       "D",
	KeyE:       "E",
	KeyF:       "F",
	KeyH:       "H",
	KeyJ:       "J",
	KeyK:       "K",
	KeyL:       "L",
	KeyQ:       "Q",
	KeyS:       "S",
	Key1:       "1",
	Key2:       "2",
	Key3:       "3",
	Key4:       "4",
	KeyEscape:  "Escape",
	KeySpace:   "Space",
	KeyReturn:  "Return",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// MouseButton represents a mouse button (left, right or middle)
type MouseButton int32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Direction is one of the four logical movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// movementKeys binds each direction to the arrow key plus the
// ESDF and vi (HJKL) layout keys.
var movementKeys = map[Key]Direction{
	KeyUp: DirUp, KeyE: DirUp, KeyK: DirUp,
	KeyDown: DirDown, KeyD: DirDown, KeyJ: DirDown,
	KeyLeft: DirLeft, KeyS: DirLeft, KeyH: DirLeft,
	KeyRight: DirRight, KeyF: DirRight, KeyL: DirRight,
}

// Movement reports the direction bound to key, if any.
func Movement(key Key) (Direction, bool) {
	dir, ok := movementKeys[key]
	return dir, ok
}

// Delta returns the offset for moving step pixels in dir.
func (dir Direction) Delta(step int32) (dx, dy int32) {
	switch dir {
	case DirUp:
		return 0, -step
	case DirDown:
		return 0, step
	case DirLeft:
		return -step, 0
	case DirRight:
		return step, 0
	}
	return 0, 0
}
