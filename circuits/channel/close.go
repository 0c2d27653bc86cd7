package channel

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/battlezip/poseidon"
	"github.com/nume-crypto/battlezip/recursion"
)

// CloseCircuit is ChannelClose: recursively verifies the final state proof,
// asserts the end condition (one side's damage reaches TotalShipCells),
// and publishes the winner/loser commitment pair, per spec.md §4.6.
//
// The CURRENT ActorIsGuest value on the final state proof names whose
// board was the target of the increment that just completed, which is the
// inverse of the flip that increment itself performed: ActorIsGuest=true
// on the final proof means host's board was the one just hit (host's
// damage is the one that must equal TotalShipCells), so host loses and
// guest wins. This is the literal selection spec.md §4.6 specifies --
// winner = turn ? guest_commit : host_commit -- which is what this
// implementation follows.
type CloseCircuit struct {
	FinalProof  recursion.Proof
	FinalVK     recursion.VerifyingKey
	FinalPublic recursion.InnerWitness

	WinnerCommitment [poseidon.DigestSize]frontend.Variable `gnark:",public"`
	LoserCommitment  [poseidon.DigestSize]frontend.Variable `gnark:",public"`
}

func (c *CloseCircuit) Define(api frontend.API) error {
	verifier, err := recursion.NewVerifier(api)
	if err != nil {
		return err
	}
	if err := verifier.AssertProof(c.FinalVK, c.FinalProof, c.FinalPublic); err != nil {
		return err
	}

	field, err := recursion.NewField(api)
	if err != nil {
		return err
	}
	final, err := gameTargetsFromPublic(recursion.ToNativeSlice(api, field, c.FinalPublic.Public))
	if err != nil {
		return err
	}

	damageOfJustHitPlayer := api.Select(final.ActorIsGuest, final.HostDamage, final.GuestDamage)
	api.AssertIsEqual(damageOfJustHitPlayer, TotalShipCells)

	for i := 0; i < poseidon.DigestSize; i++ {
		winner := api.Select(final.ActorIsGuest, final.GuestCommitment[i], final.HostCommitment[i])
		loser := api.Select(final.ActorIsGuest, final.HostCommitment[i], final.GuestCommitment[i])
		api.AssertIsEqual(winner, c.WinnerCommitment[i])
		api.AssertIsEqual(loser, c.LoserCommitment[i])
	}
	return nil
}
