package gadgets

import "github.com/consensys/gnark/frontend"

// SerializeShot range-checks a shot coordinate pair and returns its
// serialized index 10*y + x.
func SerializeShot(api frontend.API, x, y frontend.Variable) frontend.Variable {
	LessThan10(api, x)
	LessThan10(api, y)
	return api.Add(api.Mul(y, 10), x)
}

// CheckHit decomposes a board's canonical limbs and returns board_bits[s]
// by random access. The result is constrained to {0,1} because every entry
// of a decomposed bit vector already is.
func CheckHit(api frontend.API, limbs [2]frontend.Variable, shot frontend.Variable) frontend.Variable {
	bits := DecomposeBoard(api, limbs)
	return randomAccess(api, bits[:], shot)
}
