// Package board implements BoardCircuit: binding five ship placements to a
// validated 128-bit occupancy bitmap and its Poseidon commitment, in the
// inner (fast, non-ZK, random-access-capable) / outer (ZK-blinded,
// recursively verifies the inner proof) split spec.md §4.2 describes.
package board

import (
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/battlezip/battleship"
	"github.com/nume-crypto/battlezip/gadgets"
	"github.com/nume-crypto/battlezip/poseidon"
)

// Head is a ship's witnessed placement: head coordinates and orientation.
// Length is fixed per slot in InnerCircuit and is not part of the witness.
type Head struct {
	X, Y, Z frontend.Variable
}

// InnerCircuit folds PlaceShip over the five ships in fixed fleet order
// (carrier, battleship, cruiser, submarine, destroyer) and exposes the
// resulting board's Poseidon commitment as its sole public input. It is
// built under gadgets.InnerConfig: an enlarged routed-wire budget for the
// random-access lookups PlaceShip performs, and no ZK blinding.
type InnerCircuit struct {
	Carrier    Head
	Battleship Head
	Cruiser    Head
	Submarine  Head
	Destroyer  Head

	Commitment [poseidon.DigestSize]frontend.Variable `gnark:",public"`
}

func (c *InnerCircuit) Define(api frontend.API) error {
	heads := [5]Head{c.Carrier, c.Battleship, c.Cruiser, c.Submarine, c.Destroyer}
	lengths := [5]int{
		battleship.CarrierLength,
		battleship.BattleshipLength,
		battleship.CruiserLength,
		battleship.SubmarineLength,
		battleship.DestroyerLength,
	}

	var bits gadgets.BoardBits
	for i := range bits {
		bits[i] = 0
	}
	for i, h := range heads {
		bits = gadgets.PlaceShip(api, h.X, h.Y, h.Z, lengths[i], bits)
	}

	limbs := gadgets.RecomposeBoard(api, bits)
	digest := gadgets.HashBoard(api, limbs)
	for i := range digest {
		api.AssertIsEqual(digest[i], c.Commitment[i])
	}
	return nil
}

// AssignInner builds an InnerCircuit witness from a concrete Board, with
// the commitment filled in from the board's own off-circuit hash (the full
// field elements, not Board.Hash's 64-bit truncation).
func AssignInner(b battleship.Board) *InnerCircuit {
	limbs := b.Canonical()
	commitment := poseidon.HashHost(new(big.Int).SetUint64(limbs[0]), new(big.Int).SetUint64(limbs[1]))
	var pub [poseidon.DigestSize]frontend.Variable
	for i, v := range commitment {
		pub[i] = v
	}

	toHead := func(s battleship.Ship) Head {
		return Head{X: s.X, Y: s.Y, Z: s.Z}
	}
	ships := b.Ships()
	return &InnerCircuit{
		Carrier:    toHead(ships[0]),
		Battleship: toHead(ships[1]),
		Cruiser:    toHead(ships[2]),
		Submarine:  toHead(ships[3]),
		Destroyer:  toHead(ships[4]),
		Commitment: pub,
	}
}
