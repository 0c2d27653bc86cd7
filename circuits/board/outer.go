package board

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/battlezip/poseidon"
	"github.com/nume-crypto/battlezip/recursion"
)

// OuterCircuit is the ZK-blinded recursive wrap around InnerCircuit: it
// adds no new domain constraints, only a recursive verification of the
// inner proof plus a copy-constraint re-exposing the same commitment. Built
// under gadgets.OuterConfig, it is what an opponent actually receives --
// the ZK property is entirely a consequence of this wrap, not of anything
// InnerCircuit itself does.
type OuterCircuit struct {
	Proof        recursion.Proof
	VerifyingKey recursion.VerifyingKey
	InnerPublic  recursion.InnerWitness

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

	if len(c.InnerPublic.Public) != len(c.Commitment) {
		return recursion.ErrConfigMismatch
	}
	field, err := recursion.NewField(api)
	if err != nil {
		return err
	}
	for i := range c.Commitment {
		api.AssertIsEqual(recursion.ToNative(api, field, &c.InnerPublic.Public[i]), c.Commitment[i])
	}
	return nil
}
