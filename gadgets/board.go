package gadgets

import (
	"github.com/consensys/gnark/frontend"
	"github.com/nume-crypto/battlezip/poseidon"
)

// BoardBits is the 128-bit padded occupancy vector a board's two canonical
// limbs decompose into. Only bits[0:100] are ever meaningfully set;
// bits[100:128] stay zero by construction and must be preserved as such by
// every gadget that rewrites the vector.
type BoardBits [128]frontend.Variable

// DecomposeBoard splits each of the two 64-bit canonical limbs into 64
// little-endian bits and concatenates them into a 128-bit vector.
func DecomposeBoard(api frontend.API, limbs [2]frontend.Variable) BoardBits {
	var bits BoardBits
	lowBits := api.ToBinary(limbs[0], 64)
	highBits := api.ToBinary(limbs[1], 64)
	copy(bits[0:64], lowBits)
	copy(bits[64:128], highBits)
	return bits
}

// RecomposeBoard is the inverse of DecomposeBoard: the little-endian sum of
// bits[0:64] becomes limb 0, bits[64:128] becomes limb 1.
func RecomposeBoard(api frontend.API, bits BoardBits) [2]frontend.Variable {
	return [2]frontend.Variable{
		api.FromBinary(bits[0:64]...),
		api.FromBinary(bits[64:128]...),
	}
}

// GenerateCoordinate returns the serialized cell index of the offset-th
// square of a ship with head (x,y), orientation z (0 = horizontal along
// +x, 1 = vertical along +y), given the witnessed offset-shifted
// coordinates x', y'. The coordinate that actually moves (y' if vertical,
// x' if horizontal) is range-checked; the other stays fixed at the head's
// value.
func GenerateCoordinate(api frontend.API, x, y, z, xOffset, yOffset frontend.Variable) frontend.Variable {
	rangeChecked := api.Select(z, yOffset, xOffset)
	LessThan10(api, rangeChecked)

	rowSelect := api.Select(z, yOffset, y)
	colSelect := api.Select(z, x, xOffset)
	return api.Add(api.Mul(rowSelect, 10), colSelect)
}

// ShipToCoordinates range-checks the ship's head and returns the length-L
// list of serialized cell indices it occupies.
func ShipToCoordinates(api frontend.API, x, y, z frontend.Variable, length int) []frontend.Variable {
	LessThan10(api, x)
	LessThan10(api, y)
	api.AssertIsBoolean(z)

	coords := make([]frontend.Variable, length)
	for offset := 0; offset < length; offset++ {
		xOffset := api.Add(x, offset)
		yOffset := api.Add(y, offset)
		coords[offset] = GenerateCoordinate(api, x, y, z, xOffset, yOffset)
	}
	return coords
}

// InterpolateBitflipBool evaluates prod_k(coords[k] - idx) and returns 1 iff
// the product is zero, i.e. idx is one of the ship's occupied cells.
func InterpolateBitflipBool(api frontend.API, idx frontend.Variable, coords []frontend.Variable) frontend.Variable {
	acc := api.Sub(coords[0], idx)
	for k := 1; k < len(coords); k++ {
		acc = api.Mul(acc, api.Sub(coords[k], idx))
	}
	return api.IsZero(acc)
}

// randomAccess looks up table[idx] where idx is itself a circuit variable,
// via the same product-of-differences technique InterpolateBitflipBool
// uses: config-independent, at the cost of one constraint per table entry.
// gnark's random-access-capable gates (std/selector, std/rangecheck) were
// not part of the retrieved reference material for this gadget, and
// spec.md's design notes explicitly allow substituting interpolation for
// random access at the implementer's discretion.
func randomAccess(api frontend.API, table []frontend.Variable, idx frontend.Variable) frontend.Variable {
	acc := frontend.Variable(0)
	for i, entry := range table {
		indicator := InterpolateBitflipBool(api, idx, []frontend.Variable{frontend.Variable(i)})
		acc = api.Add(acc, api.Mul(indicator, entry))
	}
	return acc
}

// PlaceShip folds a single ship placement into an existing 128-bit board,
// asserting non-overlap with every previously placed ship and returning the
// updated bit vector. length must match the ship's fixed length (5, 4, 3,
// 3, or 2).
func PlaceShip(api frontend.API, x, y, z frontend.Variable, length int, bits BoardBits) BoardBits {
	coords := ShipToCoordinates(api, x, y, z, length)

	for _, c := range coords {
		occupied := randomAccess(api, bits[:], c)
		api.AssertIsEqual(occupied, 0)
	}

	var next BoardBits
	for i := 0; i < 128; i++ {
		if i >= 100 {
			next[i] = bits[i]
			continue
		}
		shouldFlip := InterpolateBitflipBool(api, frontend.Variable(i), coords)
		next[i] = api.Select(shouldFlip, api.Add(bits[i], 1), bits[i])
	}
	return next
}

// HashBoard is the in-circuit board commitment: Poseidon over the two
// canonical limbs, no padding, truncated to a four-element digest.
func HashBoard(api frontend.API, limbs [2]frontend.Variable) [poseidon.DigestSize]frontend.Variable {
	return poseidon.Hash(api, limbs[0], limbs[1])
}
