// Package channel implements the three state-channel circuits --
// ChannelOpen, ChannelIncrement, ChannelClose -- that recursively thread
// BoardCircuit and ShotCircuit proofs into a game's opening, per-turn, and
// closing transitions, per spec.md §4.4-4.6.
package channel

import (
	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/battlezip/poseidon"
)

// TotalShipCells is the sum of all five ship lengths (5+4+3+3+2); a
// player's damage counter reaching this value ends the game.
const TotalShipCells = 17

// GameTargets is the in-circuit GameState: the twelve public values
// ChannelIncrement publishes and ChannelClose consumes, per spec.md §3.
//
// ActorIsGuest renames the source's bare "turn" flag (spec.md §9 flags this
// naming as fragile): false means host's board is the one about to be shot
// at next, true means guest's is. The polarity is unchanged from the
// source, only the name.
type GameTargets struct {
	HostCommitment  [poseidon.DigestSize]frontend.Variable
	GuestCommitment [poseidon.DigestSize]frontend.Variable
	HostDamage      frontend.Variable
	GuestDamage     frontend.Variable
	ActorIsGuest    frontend.Variable
	NextShot        frontend.Variable
}

// publicSlice flattens GameTargets into the fixed 12-element order spec.md
// §3 stipulates: host_commit, guest_commit, host_damage, guest_damage,
// turn, shot.
func (g GameTargets) publicSlice() []frontend.Variable {
	out := make([]frontend.Variable, 0, 12)
	out = append(out, g.HostCommitment[:]...)
	out = append(out, g.GuestCommitment[:]...)
	out = append(out, g.HostDamage, g.GuestDamage, g.ActorIsGuest, g.NextShot)
	return out
}

// gameTargetsFromPublic reconstructs a GameTargets from a recursively
// verified sub-proof's flattened public-input slice, the decode step every
// ChannelIncrement/ChannelClose recursive-verification site performs on its
// "prev state proof" input.
func gameTargetsFromPublic(pub []frontend.Variable) (GameTargets, error) {
	if len(pub) != 12 {
		return GameTargets{}, errWrongPublicInputCount
	}
	var g GameTargets
	copy(g.HostCommitment[:], pub[0:4])
	copy(g.GuestCommitment[:], pub[4:8])
	g.HostDamage = pub[8]
	g.GuestDamage = pub[9]
	g.ActorIsGuest = pub[10]
	g.NextShot = pub[11]
	return g, nil
}
