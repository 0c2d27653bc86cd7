// Package shot implements ShotCircuit: given a board's canonical limbs and
// a shot coordinate, constrains the hit bit via random access and exports
// (shot, hit, commitment), per spec.md §4.3, in the same inner/outer split
// as circuits/board.
package shot

import (
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/nume-crypto/battlezip/battleship"
	"github.com/nume-crypto/battlezip/gadgets"
	"github.com/nume-crypto/battlezip/poseidon"
)

// InnerCircuit witnesses a board's canonical limbs and a shot coordinate,
// and publishes the serialized shot, the hit bit, and the board's
// commitment -- six public elements in the fixed order spec.md §4.3
// stipulates.
type InnerCircuit struct {
	Low, High frontend.Variable
	X, Y      frontend.Variable

	Shot       frontend.Variable                      `gnark:",public"`
	Hit        frontend.Variable                      `gnark:",public"`
	Commitment [poseidon.DigestSize]frontend.Variable `gnark:",public"`
}

func (c *InnerCircuit) Define(api frontend.API) error {
	s := gadgets.SerializeShot(api, c.X, c.Y)
	api.AssertIsEqual(s, c.Shot)

	limbs := [2]frontend.Variable{c.Low, c.High}
	hit := gadgets.CheckHit(api, limbs, s)
	api.AssertIsEqual(hit, c.Hit)

	digest := gadgets.HashBoard(api, limbs)
	for i := range digest {
		api.AssertIsEqual(digest[i], c.Commitment[i])
	}
	return nil
}

// AssignInner builds an InnerCircuit witness for a shot (x,y) against b.
func AssignInner(b battleship.Board, x, y uint8) *InnerCircuit {
	limbs := b.Canonical()
	bits := b.Bits()
	s := uint64(y)*10 + uint64(x)

	commitment := poseidon.HashHost(new(big.Int).SetUint64(limbs[0]), new(big.Int).SetUint64(limbs[1]))
	var pub [poseidon.DigestSize]frontend.Variable
	for i, v := range commitment {
		pub[i] = v
	}

	hit := 0
	if bits[s] {
		hit = 1
	}

	return &InnerCircuit{
		Low: limbs[0], High: limbs[1],
		X: x, Y: y,
		Shot: s, Hit: hit,
		Commitment: pub,
	}
}
