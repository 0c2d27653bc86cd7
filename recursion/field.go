package recursion

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/sw_bn254"
	"github.com/consensys/gnark/std/math/emulated"
)

// Element is the in-circuit type gnark's generic recursive verifier gives
// a recursively verified sub-proof's public inputs: Witness[FR].Public is
// []emulated.Element[FR], emulated even when, as everywhere in this repo,
// the verifying circuit's own native field happens to also be the BN254
// scalar field -- std/recursion/groth16 represents a sub-proof's public
// witness generically over its scalar-field type parameter, not over the
// verifying circuit's native field, so it can never be used directly where
// a native frontend.Variable is expected.
type Element = emulated.Element[sw_bn254.ScalarField]

// NewField constructs the emulated-arithmetic field every site that reads
// a recursively verified sub-proof's public witness needs in order to
// reduce it back to native values.
func NewField(api frontend.API) (*emulated.Field[sw_bn254.ScalarField], error) {
	return emulated.NewField[sw_bn254.ScalarField](api)
}

// ToNative reduces one emulated public-witness element to the native
// frontend.Variable it represents. field's modulus is the same BN254 Fr
// the outer circuit is itself compiled over, so recomposing e's full bit
// decomposition recovers the exact native value, not a truncation of it.
func ToNative(api frontend.API, field *emulated.Field[sw_bn254.ScalarField], e *Element) frontend.Variable {
	bits := field.ToBits(e)
	return api.FromBinary(bits...)
}

// ToNativeSlice converts every element of a recursively verified
// sub-proof's public witness to native frontend.Variables, in order --
// the copy-constraint sites in circuits/board, circuits/shot and
// circuits/channel all work in native arithmetic once past this point.
func ToNativeSlice(api frontend.API, field *emulated.Field[sw_bn254.ScalarField], pub []Element) []frontend.Variable {
	out := make([]frontend.Variable, len(pub))
	for i := range pub {
		out[i] = ToNative(api, field, &pub[i])
	}
	return out
}
