package channel

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/battlezip/gadgets"
	"github.com/nume-crypto/battlezip/poseidon"
	"github.com/nume-crypto/battlezip/recursion"
)

// applyIncrement synthesizes the constraints spec.md §4.5 lists under
// "Constraints synthesized", steps 2-7 (step 1, recursively verifying the
// two sub-proofs, is the caller's job, since the two ChannelIncrement
// entry points below verify different prior-proof shapes).
//
// shotPublic is a ShotCircuit outer proof's flattened public inputs, in
// order [shot, hit, commitment[0..4]].
func applyIncrement(api frontend.API, prev GameTargets, shotPublic []frontend.Variable, nextX, nextY frontend.Variable) (GameTargets, error) {
	if len(shotPublic) != 2+poseidon.DigestSize {
		return GameTargets{}, errWrongPublicInputCount
	}
	shotSerialized := shotPublic[0]
	hitBit := shotPublic[1]
	shotCommitment := shotPublic[2 : 2+poseidon.DigestSize]

	// 2. Commitment multiplexing: expected_commit = turn ? guest : host,
	// connected limb-by-limb to the shot proof's commitment. turn=false
	// means it is host's turn to be shot at, so the shot proof must have
	// been produced against host's committed board.
	for i := 0; i < poseidon.DigestSize; i++ {
		expected := api.Select(prev.ActorIsGuest, prev.GuestCommitment[i], prev.HostCommitment[i])
		api.AssertIsEqual(expected, shotCommitment[i])
	}

	// 3. Shot coordinate copy: the shot proof must evaluate the
	// coordinate the previous state declared.
	api.AssertIsEqual(prev.NextShot, shotSerialized)

	// 4. Damage update (mux).
	hostDamageNext := api.Select(prev.ActorIsGuest, prev.HostDamage, api.Add(prev.HostDamage, hitBit))
	guestDamageNext := api.Select(prev.ActorIsGuest, api.Add(prev.GuestDamage, hitBit), prev.GuestDamage)

	// 5. Turn flip: boolean negation.
	actorIsGuestNext := api.Sub(1, prev.ActorIsGuest)

	// 6. Next-shot serialization.
	nextShotSerialized := gadgets.SerializeShot(api, nextX, nextY)

	// 7. Commitments pass through unchanged.
	return GameTargets{
		HostCommitment:  prev.HostCommitment,
		GuestCommitment: prev.GuestCommitment,
		HostDamage:      hostDamageNext,
		GuestDamage:     guestDamageNext,
		ActorIsGuest:    actorIsGuestNext,
		NextShot:        nextShotSerialized,
	}, nil
}

func publishGameTargets(api frontend.API, g GameTargets, pub GameTargets) {
	for i := 0; i < poseidon.DigestSize; i++ {
		api.AssertIsEqual(g.HostCommitment[i], pub.HostCommitment[i])
		api.AssertIsEqual(g.GuestCommitment[i], pub.GuestCommitment[i])
	}
	api.AssertIsEqual(g.HostDamage, pub.HostDamage)
	api.AssertIsEqual(g.GuestDamage, pub.GuestDamage)
	api.AssertIsEqual(g.ActorIsGuest, pub.ActorIsGuest)
	api.AssertIsEqual(g.NextShot, pub.NextShot)
}

// OpenIncrementCircuit is the first ChannelIncrement of a game: its "prev
// state proof" is a ChannelOpen proof rather than a prior increment, since
// Open has no increment to recurse into yet. It synthesizes the implicit
// initial GameState (zero damage on both sides, ActorIsGuest=false, i.e.
// spec.md's turn=false) from the Open proof's public inputs before applying
// the same constraint sequence every later increment uses.
type OpenIncrementCircuit struct {
	OpenProof  recursion.Proof
	OpenVK     recursion.VerifyingKey
	OpenPublic recursion.InnerWitness

	ShotProof  recursion.Proof
	ShotVK     recursion.VerifyingKey
	ShotPublic recursion.InnerWitness

	NextX, NextY frontend.Variable

	Public GameTargets `gnark:",public"`
}

func (c *OpenIncrementCircuit) Define(api frontend.API) error {
	openVerifier, err := recursion.NewVerifier(api)
	if err != nil {
		return err
	}
	if err := openVerifier.AssertProof(c.OpenVK, c.OpenProof, c.OpenPublic); err != nil {
		return err
	}
	shotVerifier, err := recursion.NewVerifier(api)
	if err != nil {
		return err
	}
	if err := shotVerifier.AssertProof(c.ShotVK, c.ShotProof, c.ShotPublic); err != nil {
		return err
	}

	if len(c.OpenPublic.Public) != 2*poseidon.DigestSize+1 {
		return recursion.ErrConfigMismatch
	}
	field, err := recursion.NewField(api)
	if err != nil {
		return err
	}
	openPublic := recursion.ToNativeSlice(api, field, c.OpenPublic.Public)
	shotPublic := recursion.ToNativeSlice(api, field, c.ShotPublic.Public)

	var prev GameTargets
	copy(prev.HostCommitment[:], openPublic[0:4])
	copy(prev.GuestCommitment[:], openPublic[4:8])
	prev.HostDamage = 0
	prev.GuestDamage = 0
	prev.ActorIsGuest = 0
	prev.NextShot = openPublic[8]

	next, err := applyIncrement(api, prev, shotPublic, c.NextX, c.NextY)
	if err != nil {
		return err
	}
	publishGameTargets(api, next, c.Public)
	return nil
}

// IncrementCircuit is every ChannelIncrement after the first: its prev
// state proof is a prior IncrementCircuit (or OpenIncrementCircuit, which
// shares the same public GameTargets shape), decoded uniformly via
// gameTargetsFromPublic.
type IncrementCircuit struct {
	PrevProof  recursion.Proof
	PrevVK     recursion.VerifyingKey
	PrevPublic recursion.InnerWitness

	ShotProof  recursion.Proof
	ShotVK     recursion.VerifyingKey
	ShotPublic recursion.InnerWitness

	NextX, NextY frontend.Variable

	Public GameTargets `gnark:",public"`
}

func (c *IncrementCircuit) Define(api frontend.API) error {
	prevVerifier, err := recursion.NewVerifier(api)
	if err != nil {
		return err
	}
	if err := prevVerifier.AssertProof(c.PrevVK, c.PrevProof, c.PrevPublic); err != nil {
		return err
	}
	shotVerifier, err := recursion.NewVerifier(api)
	if err != nil {
		return err
	}
	if err := shotVerifier.AssertProof(c.ShotVK, c.ShotProof, c.ShotPublic); err != nil {
		return err
	}

	field, err := recursion.NewField(api)
	if err != nil {
		return err
	}
	prev, err := gameTargetsFromPublic(recursion.ToNativeSlice(api, field, c.PrevPublic.Public))
	if err != nil {
		return err
	}

	shotPublic := recursion.ToNativeSlice(api, field, c.ShotPublic.Public)
	next, err := applyIncrement(api, prev, shotPublic, c.NextX, c.NextY)
	if err != nil {
		return err
	}
	publishGameTargets(api, next, c.Public)
	return nil
}
