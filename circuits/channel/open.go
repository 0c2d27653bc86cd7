package channel

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/battlezip/gadgets"
	"github.com/nume-crypto/battlezip/poseidon"
	"github.com/nume-crypto/battlezip/recursion"
)

// OpenCircuit is ChannelOpen: recursively verifies both players' board
// outer proofs and commits the opening shot, establishing turn=false
// implicitly by construction -- spec.md §4.4. With ActorIsGuest=false the
// first increment evaluates the opening shot against host's board (see
// OpenIncrementCircuit and applyIncrement).
type OpenCircuit struct {
	HostProof   recursion.Proof
	HostVK      recursion.VerifyingKey
	HostPublic  recursion.InnerWitness

	GuestProof  recursion.Proof
	GuestVK     recursion.VerifyingKey
	GuestPublic recursion.InnerWitness

	OpeningX, OpeningY frontend.Variable

	HostCommitment  [poseidon.DigestSize]frontend.Variable `gnark:",public"`
	GuestCommitment [poseidon.DigestSize]frontend.Variable `gnark:",public"`
	OpeningShot     frontend.Variable                      `gnark:",public"`
}

func (c *OpenCircuit) Define(api frontend.API) error {
	hostVerifier, err := recursion.NewVerifier(api)
	if err != nil {
		return err
	}
	if err := hostVerifier.AssertProof(c.HostVK, c.HostProof, c.HostPublic); err != nil {
		return err
	}
	guestVerifier, err := recursion.NewVerifier(api)
	if err != nil {
		return err
	}
	if err := guestVerifier.AssertProof(c.GuestVK, c.GuestProof, c.GuestPublic); err != nil {
		return err
	}

	if len(c.HostPublic.Public) != poseidon.DigestSize || len(c.GuestPublic.Public) != poseidon.DigestSize {
		return recursion.ErrConfigMismatch
	}
	field, err := recursion.NewField(api)
	if err != nil {
		return err
	}
	hostPublic := recursion.ToNativeSlice(api, field, c.HostPublic.Public)
	guestPublic := recursion.ToNativeSlice(api, field, c.GuestPublic.Public)
	for i := 0; i < poseidon.DigestSize; i++ {
		api.AssertIsEqual(hostPublic[i], c.HostCommitment[i])
		api.AssertIsEqual(guestPublic[i], c.GuestCommitment[i])
	}

	shot := gadgets.SerializeShot(api, c.OpeningX, c.OpeningY)
	api.AssertIsEqual(shot, c.OpeningShot)
	return nil
}
