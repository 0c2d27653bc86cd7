package recursion

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
)

// BuildWitness constructs a full prover witness (private and public
// assignments) from a circuit struct populated with concrete values.
func BuildWitness(assignment frontend.Circuit) (witness.Witness, error) {
	return frontend.NewWitness(assignment, ecc.BN254.ScalarField())
}

// PublicUint64s decodes a public witness's field-element vector into
// uint64s, in declaration order. Each element keeps only its low 64 bits:
// shot indices, hit bits and damage counters fit, while Poseidon commitment
// elements are full field elements and come back truncated.
func PublicUint64s(pub witness.Witness) ([]uint64, error) {
	vec, err := pub.Vector()
	if err != nil {
		return nil, err
	}
	elems, ok := vec.(bn254fr.Vector)
	if !ok {
		return nil, fmt.Errorf("recursion: unexpected witness vector type %T", vec)
	}
	out := make([]uint64, len(elems))
	for i := range elems {
		var b big.Int
		elems[i].BigInt(&b)
		out[i] = b.Uint64()
	}
	return out, nil
}
