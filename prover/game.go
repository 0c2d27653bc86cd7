package prover

import (
	native_groth16 "github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"

	"github.com/nume-crypto/battlezip/battleship"
	"github.com/nume-crypto/battlezip/circuits/channel"
	"github.com/nume-crypto/battlezip/circuits/shot"
	"github.com/nume-crypto/battlezip/recursion"
)

// GameState is the off-circuit mirror of channel.GameTargets: the decoded
// GameState public-input vector from spec.md §3, read back after a proof
// has been produced.
type GameState struct {
	HostCommitment, GuestCommitment [4]uint64
	HostDamage, GuestDamage         uint64
	ActorIsGuest                    bool
	NextShot                        uint8
}

func decodeGameState(pub witness.Witness) (GameState, error) {
	values, err := recursion.PublicUint64s(pub)
	if err != nil {
		return GameState{}, err
	}
	if len(values) != 12 {
		return GameState{}, recursion.ErrConfigMismatch
	}
	var g GameState
	copy(g.HostCommitment[:], values[0:4])
	copy(g.GuestCommitment[:], values[4:8])
	g.HostDamage = values[8]
	g.GuestDamage = values[9]
	g.ActorIsGuest = values[10] != 0
	g.NextShot = uint8(values[11])
	return g, nil
}

// Game drives one game's proof chain over a shared Cache: open, a
// sequence of increments, and close. It threads a single running state
// proof forward and is not safe for concurrent use by multiple goroutines.
type Game struct {
	cache *Cache

	hostBoard, guestBoard battleship.Board

	lastProof  native_groth16.Proof
	lastPublic witness.Witness
	lastVK     native_groth16.VerifyingKey
	lastState  GameState
	increments int
}

// NewGame constructs a Game bound to cache and the two players' boards.
func NewGame(cache *Cache, hostBoard, guestBoard battleship.Board) *Game {
	return &Game{cache: cache, hostBoard: hostBoard, guestBoard: guestBoard}
}

// Open produces both players' board proofs and the ChannelOpen proof,
// committing (openingX, openingY) as the coordinate the first increment
// evaluates against host's board (ActorIsGuest=false after Open).
func (g *Game) Open(openingX, openingY uint8) error {
	hostOuterProof, hostOuterPub, err := g.proveBoardOuter(g.hostBoard)
	if err != nil {
		return err
	}
	guestOuterProof, guestOuterPub, err := g.proveBoardOuter(g.guestBoard)
	if err != nil {
		return err
	}

	hostRecProof, err := recursion.ValueOfProof(hostOuterProof)
	if err != nil {
		return err
	}
	hostRecVK, err := recursion.ValueOfVerifyingKey(g.cache.Board.Outer.VerifyingKey)
	if err != nil {
		return err
	}
	hostRecPub, err := recursion.ValueOfPublicWitness(hostOuterPub)
	if err != nil {
		return err
	}
	guestRecProof, err := recursion.ValueOfProof(guestOuterProof)
	if err != nil {
		return err
	}
	guestRecVK, err := recursion.ValueOfVerifyingKey(g.cache.Board.Outer.VerifyingKey)
	if err != nil {
		return err
	}
	guestRecPub, err := recursion.ValueOfPublicWitness(guestOuterPub)
	if err != nil {
		return err
	}

	hostCommit, guestCommit := g.hostBoard.Hash(), g.guestBoard.Hash()
	openingShot := uint64(openingY)*10 + uint64(openingX)

	assignment := &channel.OpenCircuit{
		HostProof: hostRecProof, HostVK: hostRecVK, HostPublic: hostRecPub,
		GuestProof: guestRecProof, GuestVK: guestRecVK, GuestPublic: guestRecPub,
		OpeningX: openingX, OpeningY: openingY,
	}
	for i := range assignment.HostCommitment {
		assignment.HostCommitment[i] = hostCommit[i]
		assignment.GuestCommitment[i] = guestCommit[i]
	}
	assignment.OpeningShot = openingShot

	var proof native_groth16.Proof
	var pub witness.Witness
	err = Stage(KindChannelOpen, "prove", func() error {
		fullWitness, buildErr := recursion.BuildWitness(assignment)
		if buildErr != nil {
			return buildErr
		}
		var proveErr error
		proof, proveErr = native_groth16.Prove(g.cache.Open.ConstraintSystem, g.cache.Open.ProvingKey, fullWitness)
		if proveErr != nil {
			return proveErr
		}
		pub, proveErr = fullWitness.Public()
		return proveErr
	})
	if err != nil {
		return err
	}

	g.lastProof, g.lastPublic, g.lastVK = proof, pub, g.cache.Open.VerifyingKey
	g.lastState = GameState{
		HostCommitment: hostCommit, GuestCommitment: guestCommit,
		ActorIsGuest: false, NextShot: uint8(openingShot),
	}
	return nil
}

func (g *Game) proveBoardOuter(b battleship.Board) (native_groth16.Proof, witness.Witness, error) {
	var outerProof native_groth16.Proof
	var outerPub witness.Witness
	err := Stage(KindBoardOuter, "prove", func() error {
		innerProof, innerPub, err := g.cache.Board.ProveInner(b)
		if err != nil {
			return err
		}
		outerProof, outerPub, err = g.cache.Board.ProveOuter(innerProof, innerPub, b.Hash())
		return err
	})
	return outerProof, outerPub, err
}

// Increment proves the pending shot (the coordinate the current state
// declared) against whichever board is currently targeted, and folds it
// into the next state proof. nextX/nextY are witnessed as the coordinate
// the *following* increment must evaluate.
func (g *Game) Increment(nextX, nextY uint8) error {
	x, y := uint8(g.lastState.NextShot%10), uint8(g.lastState.NextShot/10)
	targetBoard := g.hostBoard
	if g.lastState.ActorIsGuest {
		targetBoard = g.guestBoard
	}

	var shotOuterProof native_groth16.Proof
	var shotOuterPub witness.Witness
	err := Stage(KindShotOuter, "prove", func() error {
		innerProof, innerPub, err := g.cache.Shot.ProveInner(targetBoard, x, y)
		if err != nil {
			return err
		}
		bits := targetBoard.Bits()
		outputs := shot.Outputs{Shot: uint8(g.lastState.NextShot), Hit: bits[g.lastState.NextShot], Commitment: targetBoard.Hash()}
		shotOuterProof, shotOuterPub, err = g.cache.Shot.ProveOuter(innerProof, innerPub, outputs)
		return err
	})
	if err != nil {
		return err
	}

	shotRecProof, err := recursion.ValueOfProof(shotOuterProof)
	if err != nil {
		return err
	}
	shotRecVK, err := recursion.ValueOfVerifyingKey(g.cache.Shot.Outer.VerifyingKey)
	if err != nil {
		return err
	}
	shotRecPub, err := recursion.ValueOfPublicWitness(shotOuterPub)
	if err != nil {
		return err
	}

	prevRecProof, err := recursion.ValueOfProof(g.lastProof)
	if err != nil {
		return err
	}
	prevRecPub, err := recursion.ValueOfPublicWitness(g.lastPublic)
	if err != nil {
		return err
	}
	prevRecVK, err := recursion.ValueOfVerifyingKey(g.lastVK)
	if err != nil {
		return err
	}

	var proof native_groth16.Proof
	var pub witness.Witness
	var nextVK native_groth16.VerifyingKey

	if g.increments == 0 {
		assignment := &channel.OpenIncrementCircuit{
			OpenProof: prevRecProof, OpenVK: prevRecVK, OpenPublic: prevRecPub,
			ShotProof: shotRecProof, ShotVK: shotRecVK, ShotPublic: shotRecPub,
			NextX: nextX, NextY: nextY,
		}
		err = Stage(KindChannelOpenIncr, "prove", func() error {
			fullWitness, buildErr := recursion.BuildWitness(assignment)
			if buildErr != nil {
				return buildErr
			}
			var proveErr error
			proof, proveErr = native_groth16.Prove(g.cache.OpenIncr.ConstraintSystem, g.cache.OpenIncr.ProvingKey, fullWitness)
			if proveErr != nil {
				return proveErr
			}
			pub, proveErr = fullWitness.Public()
			return proveErr
		})
		nextVK = g.cache.OpenIncr.VerifyingKey
	} else {
		assignment := &channel.IncrementCircuit{
			PrevProof: prevRecProof, PrevVK: prevRecVK, PrevPublic: prevRecPub,
			ShotProof: shotRecProof, ShotVK: shotRecVK, ShotPublic: shotRecPub,
			NextX: nextX, NextY: nextY,
		}
		err = Stage(KindChannelIncrement, "prove", func() error {
			fullWitness, buildErr := recursion.BuildWitness(assignment)
			if buildErr != nil {
				return buildErr
			}
			var proveErr error
			proof, proveErr = native_groth16.Prove(g.cache.Incr.ConstraintSystem, g.cache.Incr.ProvingKey, fullWitness)
			if proveErr != nil {
				return proveErr
			}
			pub, proveErr = fullWitness.Public()
			return proveErr
		})
		nextVK = g.cache.Incr.VerifyingKey
	}
	if err != nil {
		return err
	}

	state, err := decodeGameState(pub)
	if err != nil {
		return err
	}
	g.lastProof, g.lastPublic, g.lastVK = proof, pub, nextVK
	g.lastState = state
	g.increments++
	return nil
}

// CloseOutputs is spec.md §6's Close outputs: the winner and loser
// commitments.
type CloseOutputs struct {
	WinnerCommitment, LoserCommitment [4]uint64
}

// Close proves ChannelClose against the current state proof. It fails
// (spec.md scenario E) unless the targeted player's damage has reached
// channel.TotalShipCells.
func (g *Game) Close() (CloseOutputs, error) {
	prevRecProof, err := recursion.ValueOfProof(g.lastProof)
	if err != nil {
		return CloseOutputs{}, err
	}
	prevRecPub, err := recursion.ValueOfPublicWitness(g.lastPublic)
	if err != nil {
		return CloseOutputs{}, err
	}
	prevRecVK, err := recursion.ValueOfVerifyingKey(g.lastVK)
	if err != nil {
		return CloseOutputs{}, err
	}

	assignment := &channel.CloseCircuit{FinalProof: prevRecProof, FinalVK: prevRecVK, FinalPublic: prevRecPub}

	winner, loser := g.lastState.GuestCommitment, g.lastState.HostCommitment
	if !g.lastState.ActorIsGuest {
		winner, loser = g.lastState.HostCommitment, g.lastState.GuestCommitment
	}
	for i := range assignment.WinnerCommitment {
		assignment.WinnerCommitment[i] = winner[i]
		assignment.LoserCommitment[i] = loser[i]
	}

	var proof native_groth16.Proof
	var pub witness.Witness
	err = Stage(KindChannelClose, "prove", func() error {
		fullWitness, buildErr := recursion.BuildWitness(assignment)
		if buildErr != nil {
			return buildErr
		}
		var proveErr error
		proof, proveErr = native_groth16.Prove(g.cache.Close.ConstraintSystem, g.cache.Close.ProvingKey, fullWitness)
		if proveErr != nil {
			return proveErr
		}
		pub, proveErr = fullWitness.Public()
		return proveErr
	})
	if err != nil {
		return CloseOutputs{}, err
	}
	if err := native_groth16.Verify(proof, g.cache.Close.VerifyingKey, pub); err != nil {
		return CloseOutputs{}, recursion.ErrRecursiveVerificationFailed
	}

	return CloseOutputs{WinnerCommitment: winner, LoserCommitment: loser}, nil
}
