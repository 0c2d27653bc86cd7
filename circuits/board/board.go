package board

import (
	native_groth16 "github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"

	"github.com/nume-crypto/battlezip/battleship"
	"github.com/nume-crypto/battlezip/gadgets"
	"github.com/nume-crypto/battlezip/poseidon"
	"github.com/nume-crypto/battlezip/recursion"
)

// Circuit bundles the common data for InnerCircuit and OuterCircuit: the
// pair a board prover needs, cacheable and shareable across every prover of
// the same shape for the life of a game.
type Circuit struct {
	Inner *recursion.CommonData
	Outer *recursion.CommonData
}

// Build compiles and runs trusted setup for InnerCircuit, then for
// OuterCircuit. The outer circuit's placeholder proof/vk/witness fields are
// sized from the inner circuit's compiled constraint system, so inner must
// be built first.
func Build() (*Circuit, error) {
	inner, err := recursion.Build(&InnerCircuit{}, gadgets.InnerConfig())
	if err != nil {
		return nil, err
	}

	outerPlaceholder := &OuterCircuit{
		Proof:        recursion.PlaceholderProof(inner),
		VerifyingKey: recursion.PlaceholderVerifyingKey(inner),
		InnerPublic:  recursion.PlaceholderPublicWitness(inner),
	}
	outer, err := recursion.Build(outerPlaceholder, gadgets.OuterConfig())
	if err != nil {
		return nil, err
	}

	return &Circuit{Inner: inner, Outer: outer}, nil
}

// Outputs is the decoded public-input struct a board proof exposes:
// BoardCircuitOutputs from spec.md §6.
type Outputs struct {
	Commitment [poseidon.DigestSize]uint64
}

// ProveInner builds the inner (non-ZK) proof that b is a validly placed
// board, returning the proof and its public witness (the commitment).
func (c *Circuit) ProveInner(b battleship.Board) (native_groth16.Proof, witness.Witness, error) {
	fullWitness, err := recursion.BuildWitness(AssignInner(b))
	if err != nil {
		return nil, nil, err
	}
	proof, err := native_groth16.Prove(c.Inner.ConstraintSystem, c.Inner.ProvingKey, fullWitness)
	if err != nil {
		return nil, nil, err
	}
	pub, err := fullWitness.Public()
	if err != nil {
		return nil, nil, err
	}
	return proof, pub, nil
}

// ProveOuter recursively verifies an inner proof and re-exposes its
// commitment, producing the ZK-blinded proof an opponent actually sees.
// This is the ZK property from spec.md §4.2: InnerCircuit's witness (the
// ship placements) is hidden, only the commitment is visible.
func (c *Circuit) ProveOuter(innerProof native_groth16.Proof, innerPublic witness.Witness, commitment [poseidon.DigestSize]uint64) (native_groth16.Proof, witness.Witness, error) {
	recProof, err := recursion.ValueOfProof(innerProof)
	if err != nil {
		return nil, nil, err
	}
	recVK, err := recursion.ValueOfVerifyingKey(c.Inner.VerifyingKey)
	if err != nil {
		return nil, nil, err
	}
	recPub, err := recursion.ValueOfPublicWitness(innerPublic)
	if err != nil {
		return nil, nil, err
	}

	assignment := &OuterCircuit{Proof: recProof, VerifyingKey: recVK, InnerPublic: recPub}
	for i, v := range commitment {
		assignment.Commitment[i] = v
	}

	fullWitness, err := recursion.BuildWitness(assignment)
	if err != nil {
		return nil, nil, err
	}
	proof, err := native_groth16.Prove(c.Outer.ConstraintSystem, c.Outer.ProvingKey, fullWitness)
	if err != nil {
		return nil, nil, err
	}
	pub, err := fullWitness.Public()
	if err != nil {
		return nil, nil, err
	}
	return proof, pub, nil
}

// VerifyOuter checks an outer proof against its public witness.
func (c *Circuit) VerifyOuter(proof native_groth16.Proof, pub witness.Witness) error {
	if err := native_groth16.Verify(proof, c.Outer.VerifyingKey, pub); err != nil {
		return recursion.ErrRecursiveVerificationFailed
	}
	return nil
}

// Decode reads the Poseidon commitment out of an outer proof's public
// witness.
func Decode(pub witness.Witness) (Outputs, error) {
	values, err := recursion.PublicUint64s(pub)
	if err != nil {
		return Outputs{}, err
	}
	var out Outputs
	copy(out.Commitment[:], values)
	return out, nil
}
