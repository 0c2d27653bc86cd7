// Package battleship models the host-side (non-circuit) Battleship data: ship
// placements, boards, and their canonical/committed forms. Nothing in this
// package touches a circuit; it is the plain-Go mirror that witnesses are
// built from and that proof outputs are checked against.
package battleship

import "fmt"

// Ship is the placement of a single ship on a 10x10 grid. X, Y give the head
// cell; Z is the orientation (false = horizontal along +X, true = vertical
// along +Y). Length is fixed per ship kind (see the *Length constants) and
// carried on the value rather than as a Rust-style const generic, since Go's
// type parameters cannot be bound to integer literals.
type Ship struct {
	X, Y   uint8
	Z      bool
	Length uint8
}

// NewShip constructs a ship placement without validating bounds; range
// checking is the circuit's job (gadgets.ShipToCoordinates), not the data
// model's.
func NewShip(x, y uint8, z bool, length uint8) Ship {
	return Ship{X: x, Y: y, Z: z, Length: length}
}

// Coordinates returns the serialized cell indexes (10*y+x) the ship
// occupies, in head-to-tail order. It performs no bounds checking: a ship
// that runs off the board vertically yields coordinates >= 100, and one
// that runs off horizontally yields cells wrapped into the next row (head
// (7,0), length 5, gives 7..11); the circuit's range checks reject both.
func (s Ship) Coordinates() []uint8 {
	out := make([]uint8, s.Length)
	for i := uint8(0); i < s.Length; i++ {
		x, y := s.X, s.Y
		if s.Z {
			y += i
		} else {
			x += i
		}
		out[i] = y*10 + x
	}
	return out
}

// Canonical returns the (x, y, z) triple used to witness the circuit's ship
// targets.
func (s Ship) Canonical() (uint8, uint8, bool) {
	return s.X, s.Y, s.Z
}

func (s Ship) String() string {
	orientation := "horizontal"
	if s.Z {
		orientation = "vertical"
	}
	return fmt.Sprintf("(%d,%d) %s len=%d", s.X, s.Y, orientation, s.Length)
}
