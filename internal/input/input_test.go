package input

import "testing"

type movementTestCase struct {
	Key Key
	DX  int32
	DY  int32
	OK  bool
}

var movementGoldenTests = []movementTestCase{
	{Key: KeyUp, DY: -3, OK: true},
	{Key: KeyE, DY: -3, OK: true},
	{Key: KeyK, DY: -3, OK: true},
	{Key: KeyDown, DY: 3, OK: true},
	{Key: KeyD, DY: 3, OK: true},
	{Key: KeyJ, DY: 3, OK: true},
	{Key: KeyLeft, DX: -3, OK: true},
	{Key: KeyS, DX: -3, OK: true},
	{Key: KeyH, DX: -3, OK: true},
	{Key: KeyRight, DX: 3, OK: true},
	{Key: KeyF, DX: 3, OK: true},
	{Key: KeyL, DX: 3, OK: true},
	{Key: KeyQ},
	{Key: Key1},
	{Key: KeyUnknown},
}

func TestMovement(t *testing.T) {
	for _, test := range movementGoldenTests {
		dir, ok := Movement(test.Key)
		if ok != test.OK {
			t.Errorf("Movement(%v) ok = %v, expected %v", test.Key, ok, test.OK)
			continue
		}
		if !ok {
			continue
		}
		dx, dy := dir.Delta(3)
		if dx != test.DX || dy != test.DY {
			t.Errorf("Movement(%v) delta = (%d, %d), expected (%d, %d)", test.Key, dx, dy, test.DX, test.DY)
		}
	}
}

func TestKeyString(t *testing.T) {
	if s := KeyUp.String(); s != "Up" {
		t.Errorf("KeyUp.String() = %q", s)
	}
	if s := Key(999).String(); s != "Unknown" {
		t.Errorf("Key(999).String() = %q", s)
	}
}
