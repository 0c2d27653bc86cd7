package recursion

import (
	native_groth16 "github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/sw_bn254"
	recursive_groth16 "github.com/consensys/gnark/std/recursion/groth16"
)

// Proof, VerifyingKey and InnerWitness are the in-circuit representations of a
// BN254 Groth16 proof, fixed to gnark's sw_bn254 curve-element types so
// every recursive-wrap site in this repo -- BoardCircuit's outer proof,
// ShotCircuit's outer proof, ChannelOpen, ChannelIncrement, and
// ChannelClose -- shares one set of type parameters instead of each
// re-deriving them.
type (
	Proof         = recursive_groth16.Proof[sw_bn254.G1Affine, sw_bn254.G2Affine]
	VerifyingKey  = recursive_groth16.VerifyingKey[sw_bn254.G1Affine, sw_bn254.G2Affine, sw_bn254.GTEl]
	InnerWitness  = recursive_groth16.Witness[sw_bn254.ScalarField]
)

// Verifier recursively verifies a BN254 Groth16 proof inside another BN254
// circuit, via gnark's generic in-circuit verifier instantiated with the
// concrete sw_bn254 type parameters.
type Verifier struct {
	inner *recursive_groth16.Verifier[sw_bn254.ScalarField, sw_bn254.G1Affine, sw_bn254.G2Affine, sw_bn254.GTEl]
}

// NewVerifier constructs a Verifier bound to api. One is needed per
// recursive-verification site in a Define method.
func NewVerifier(api frontend.API) (*Verifier, error) {
	v, err := recursive_groth16.NewVerifier[sw_bn254.ScalarField, sw_bn254.G1Affine, sw_bn254.G2Affine, sw_bn254.GTEl](api)
	if err != nil {
		return nil, err
	}
	return &Verifier{inner: v}, nil
}

// AssertProof adds the constraints asserting that proof verifies against vk
// with the given public witness. If the sub-proof does not verify, the
// surrounding circuit becomes unsatisfiable: spec.md error kind 2,
// recursive verification failure.
func (v *Verifier) AssertProof(vk VerifyingKey, proof Proof, pub InnerWitness) error {
	return v.inner.AssertProof(vk, proof, pub)
}

// ValueOfProof converts a concrete Groth16 proof produced by a prover into
// its in-circuit assignment, for building the witness of a circuit that
// recursively verifies it.
func ValueOfProof(proof native_groth16.Proof) (Proof, error) {
	return recursive_groth16.ValueOfProof[sw_bn254.G1Affine, sw_bn254.G2Affine](proof)
}

// ValueOfVerifyingKey converts a concrete Groth16 verifying key into its
// in-circuit assignment.
func ValueOfVerifyingKey(vk native_groth16.VerifyingKey) (VerifyingKey, error) {
	return recursive_groth16.ValueOfVerifyingKey[sw_bn254.G1Affine, sw_bn254.G2Affine, sw_bn254.GTEl](vk)
}

// ValueOfPublicWitness converts a proof's public inputs into the in-circuit
// witness assignment a recursive AssertProof call consumes.
func ValueOfPublicWitness(pub witness.Witness) (InnerWitness, error) {
	return recursive_groth16.ValueOfWitness[sw_bn254.ScalarField](pub)
}

// PlaceholderProof, PlaceholderVerifyingKey and PlaceholderPublicWitness
// build correctly-shaped zero-value circuit fields for the recursively
// verified sub-circuit described by cd: gnark's in-circuit recursion types
// carry slices sized to the sub-circuit's constraint system, so an outer
// circuit's struct literal must be seeded with these rather than with bare
// zero values before frontend.Compile walks it.
func PlaceholderProof(cd *CommonData) Proof {
	return recursive_groth16.PlaceholderProof[sw_bn254.G1Affine, sw_bn254.G2Affine](cd.ConstraintSystem)
}

func PlaceholderVerifyingKey(cd *CommonData) VerifyingKey {
	return recursive_groth16.PlaceholderVerifyingKey[sw_bn254.G1Affine, sw_bn254.G2Affine, sw_bn254.GTEl](cd.ConstraintSystem)
}

func PlaceholderPublicWitness(cd *CommonData) InnerWitness {
	return recursive_groth16.PlaceholderWitness[sw_bn254.ScalarField](cd.ConstraintSystem)
}
