package shot

import (
	native_groth16 "github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"

	"github.com/nume-crypto/battlezip/battleship"
	"github.com/nume-crypto/battlezip/gadgets"
	"github.com/nume-crypto/battlezip/poseidon"
	"github.com/nume-crypto/battlezip/recursion"
)

// Circuit bundles the common data for InnerCircuit and OuterCircuit.
type Circuit struct {
	Inner *recursion.CommonData
	Outer *recursion.CommonData
}

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

// Outputs is the decoded ShotCircuitOutputs struct from spec.md §6.
type Outputs struct {
	Shot       uint8
	Hit        bool
	Commitment [poseidon.DigestSize]uint64
}

func (c *Circuit) ProveInner(b battleship.Board, x, y uint8) (native_groth16.Proof, witness.Witness, error) {
	fullWitness, err := recursion.BuildWitness(AssignInner(b, x, y))
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

func (c *Circuit) ProveOuter(innerProof native_groth16.Proof, innerPublic witness.Witness, out Outputs) (native_groth16.Proof, witness.Witness, error) {
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

	hit := 0
	if out.Hit {
		hit = 1
	}
	assignment := &OuterCircuit{Proof: recProof, VerifyingKey: recVK, InnerPublic: recPub, Shot: out.Shot, Hit: hit}
	for i, v := range out.Commitment {
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

func (c *Circuit) VerifyOuter(proof native_groth16.Proof, pub witness.Witness) error {
	if err := native_groth16.Verify(proof, c.Outer.VerifyingKey, pub); err != nil {
		return recursion.ErrRecursiveVerificationFailed
	}
	return nil
}

// Decode reads (shot, hit, commitment) out of an outer proof's public
// witness, in the fixed declaration order [shot, hit, commitment[0..4]].
func Decode(pub witness.Witness) (Outputs, error) {
	values, err := recursion.PublicUint64s(pub)
	if err != nil {
		return Outputs{}, err
	}
	if len(values) != 2+poseidon.DigestSize {
		return Outputs{}, recursion.ErrConfigMismatch
	}
	out := Outputs{Shot: uint8(values[0]), Hit: values[1] != 0}
	copy(out.Commitment[:], values[2:])
	return out, nil
}
