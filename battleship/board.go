package battleship

import (
	"fmt"
	"strings"

	"github.com/nume-crypto/battlezip/poseidon"
)

// Ship lengths, fixed per the five-ship fleet: carrier, battleship, cruiser,
// submarine, destroyer.
const (
	CarrierLength    = 5
	BattleshipLength = 4
	CruiserLength    = 3
	SubmarineLength  = 3
	DestroyerLength  = 2
)

// Board is the ordered quintuple of ship placements making up one player's
// private fleet. Field order matches the order BoardCircuit folds
// gadgets.PlaceShip over, which in turn fixes the bit layout of Canonical.
type Board struct {
	Carrier    Ship
	Battleship Ship
	Cruiser    Ship
	Submarine  Ship
	Destroyer  Ship
}

// NewBoard constructs a board from five ship head placements, filling in
// each ship's fixed length.
func NewBoard(carrier, battleship, cruiser, submarine, destroyer Ship) Board {
	carrier.Length = CarrierLength
	battleship.Length = BattleshipLength
	cruiser.Length = CruiserLength
	submarine.Length = SubmarineLength
	destroyer.Length = DestroyerLength
	return Board{
		Carrier:    carrier,
		Battleship: battleship,
		Cruiser:    cruiser,
		Submarine:  submarine,
		Destroyer:  destroyer,
	}
}

// Ships returns the five placements in the fixed fold order.
func (b Board) Ships() [5]Ship {
	return [5]Ship{b.Carrier, b.Battleship, b.Cruiser, b.Submarine, b.Destroyer}
}

func (b Board) addShip(ship Ship, bits *[100]bool) {
	for _, c := range ship.Coordinates() {
		bits[c] = true
	}
}

// Bits returns the 100-cell occupancy vector, indexed i = 10*y + x. It does
// not itself reject overlapping ships; that enforcement lives in
// gadgets.PlaceShip (spec invariant: overlap is a circuit-time failure, not
// a serialization-time one).
func (b Board) Bits() [100]bool {
	var bits [100]bool
	for _, ship := range b.Ships() {
		b.addShip(ship, &bits)
	}
	return bits
}

// Canonical packs the 100 occupancy bits little-endian into two 64-bit
// limbs (the upper 28 bits of the high limb are always zero).
func (b Board) Canonical() [2]uint64 {
	bits := b.Bits()
	var low, high uint64
	for i := 63; i >= 0; i-- {
		low = (low << 1) | boolToUint64(bits[i])
	}
	for i := 99; i >= 64; i-- {
		high = (high << 1) | boolToUint64(bits[i])
	}
	return [2]uint64{low, high}
}

func boolToUint64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns the Poseidon commitment to the board's canonical
// representation, computed host-side with the same permutation the
// in-circuit gadget uses (poseidon.Hash), so that BoardCircuit's exposed
// public commitment is checked for equality against this value in tests
// (testable property 2, "Commitment determinism").
func (b Board) Hash() [4]uint64 {
	limbs := b.Canonical()
	return poseidon.HashHostUint64(limbs[0], limbs[1])
}

// String renders the board as the ASCII grid the original implementation's
// Board::print produced, supplementing the distillation which dropped this
// convenience (see original_source/src/utils/board.rs).
func (b Board) String() string {
	bits := b.Bits()
	var sb strings.Builder
	sb.WriteString(" (Y)\n")
	for y := 9; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d |", y)
		for x := 0; x < 10; x++ {
			fmt.Fprintf(&sb, " %d", boolToUint64(bits[10*y+x]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   -------------------- (X)\n")
	sb.WriteString("    0 1 2 3 4 5 6 7 8 9\n")
	return sb.String()
}
