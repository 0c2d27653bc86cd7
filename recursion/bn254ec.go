package recursion

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	bn254backend "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/backend/groth16"
)

// g2Equal compares two BN254 G2 affine points coordinate-wise. Adapted from
// the reference E2/G2Affine pair (fields_bn254.E2, sw_bn254.G2Affine), whose
// only operation was Neg for pairing-product checks; this repurposes the
// same two-coordinate structure for a plain equality test, which is all a
// configuration-mismatch check needs.
func g2Equal(a, b bn254.G2Affine) bool {
	return a.X.Equal(&b.X) && a.Y.Equal(&b.Y)
}

// verifyingKeysMatch reports whether two Groth16 verifying keys describe
// the same compiled circuit shape, by comparing their delta-in-G2 elements.
// Delta is re-sampled independently for every Setup run, so two keys that
// agree on it are, for practical purposes, the same CommonData object
// rather than two independent builds that merely compiled to the same
// constraint count -- which is exactly the cache-integrity property
// CommonData.CheckCompatible needs.
func verifyingKeysMatch(a, b groth16.VerifyingKey) bool {
	av, aok := a.(*bn254backend.VerifyingKey)
	bv, bok := b.(*bn254backend.VerifyingKey)
	if !aok || !bok {
		return false
	}
	return g2Equal(av.G2.Delta, bv.G2.Delta)
}
