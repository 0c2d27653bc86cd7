package recursion

import (
	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/nume-crypto/battlezip/gadgets"
)

// SchemaVersion tags the shape of CommonData this package builds. Bump it
// whenever a change to a circuit's Define would change its compiled
// constraint system without changing gadgets.Config (e.g. adding a gadget
// or reordering public inputs), so CheckCompatible can reject a stale
// cached CommonData before attempting the expensive pairing check.
var SchemaVersion = semver.MustParse("1.0.0")

// CommonData is the verifier-visible shape of a compiled circuit together
// with the Groth16 key pair its trusted setup derives: exactly the
// "common circuit data" / "verifier-only data" split spec.md's glossary
// names, bundled here because gnark's Setup produces them together. Its
// constraint system is a deterministic function of a circuit's Define, but
// each Setup run samples a fresh key pair, so one CommonData is built once
// per circuit kind (Board inner, Board outer,
// Shot inner, Shot outer, ChannelOpen, ChannelIncrement, ChannelClose) and
// shared read-only across every prover for the same game.
type CommonData struct {
	Schema           semver.Version
	Config           gadgets.Config
	ConstraintSystem constraint.ConstraintSystem
	ProvingKey       groth16.ProvingKey
	VerifyingKey     groth16.VerifyingKey
}

// Build compiles circuit over the BN254 scalar field and runs Groth16's
// trusted setup, returning the CommonData both a prover and any recursive
// verifier of its proofs need.
func Build(circuit frontend.Circuit, cfg gadgets.Config) (*CommonData, error) {
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, err
	}
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, err
	}
	return &CommonData{Schema: SchemaVersion, Config: cfg, ConstraintSystem: cs, ProvingKey: pk, VerifyingKey: vk}, nil
}

// CheckCompatible returns ErrConfigMismatch if c and other were built under
// different configs or schema versions: the case a recursive verifier must
// reject per spec.md error kind 4, detectable purely from the common-data
// triple without running the expensive pairing check.
func (c *CommonData) CheckCompatible(other *CommonData) error {
	if !c.Schema.EQ(other.Schema) {
		return ErrConfigMismatch
	}
	if c.Config != other.Config {
		return ErrConfigMismatch
	}
	if !verifyingKeysMatch(c.VerifyingKey, other.VerifyingKey) {
		return ErrConfigMismatch
	}
	return nil
}
