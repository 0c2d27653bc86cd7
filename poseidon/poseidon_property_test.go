package poseidon

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestHashHostUint64Properties checks, over many random limb pairs, the two
// laws the in-circuit gadget relies on: HashHostUint64 is a pure function
// of its inputs, and changing either limb changes the digest (testable
// property 2, commitment determinism, stated as a law rather than fixed
// examples).
func TestHashHostUint64Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("deterministic", prop.ForAll(
		func(a, b uint64) bool {
			return HashHostUint64(a, b) == HashHostUint64(a, b)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("sensitive to either limb", prop.ForAll(
		func(a, b uint64) bool {
			base := HashHostUint64(a, b)
			return base != HashHostUint64(a+1, b) && base != HashHostUint64(a, b+1)
		},
		gen.UInt64Range(0, 1<<62),
		gen.UInt64Range(0, 1<<62),
	))

	properties.TestingRun(t)
}
