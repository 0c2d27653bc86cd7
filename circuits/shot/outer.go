package shot

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/battlezip/poseidon"
	"github.com/nume-crypto/battlezip/recursion"
)

// OuterCircuit recursively verifies an inner shot proof and re-exposes its
// three groups of public values (shot, hit, commitment) as its own,
// ZK-blinding the board limbs and shot coordinates the inner proof used.
// This is the proof ChannelIncrement consumes, preserving the opponent's
// board privacy.
type OuterCircuit struct {
	Proof        recursion.Proof
	VerifyingKey recursion.VerifyingKey
	InnerPublic  recursion.InnerWitness

	Shot       frontend.Variable                      `gnark:",public"`
	Hit        frontend.Variable                      `gnark:",public"`
	Commitment [poseidon.DigestSize]frontend.Variable `gnark:",public"`
}

func (c *OuterCircuit) Define(api frontend.API) error {
	verifier, err := recursion.NewVerifier(api)
	if err != nil {
		return err
	}
	if err := verifier.AssertProof(c.VerifyingKey, c.Proof, c.InnerPublic); err != nil {
		return err
	}

	want := len(c.Commitment) + 2
	if len(c.InnerPublic.Public) != want {
		return recursion.ErrConfigMismatch
	}
	field, err := recursion.NewField(api)
	if err != nil {
		return err
	}
	innerPublic := recursion.ToNativeSlice(api, field, c.InnerPublic.Public)
	api.AssertIsEqual(innerPublic[0], c.Shot)
	api.AssertIsEqual(innerPublic[1], c.Hit)
	for i := range c.Commitment {
		api.AssertIsEqual(innerPublic[2+i], c.Commitment[i])
	}
	return nil
}
