package gadgets

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

type serializeShotCircuit struct {
	X, Y     frontend.Variable
	WantShot frontend.Variable `gnark:",public"`
}

func (c *serializeShotCircuit) Define(api frontend.API) error {
	s := SerializeShot(api, c.X, c.Y)
	api.AssertIsEqual(s, c.WantShot)
	return nil
}

func TestSerializeShot(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder serializeShotCircuit
	assert.ProverSucceeded(&placeholder, &serializeShotCircuit{X: 3, Y: 4, WantShot: 43}, test.WithCurves(ecc.BN254), test.NoFuzzing())
}

type checkHitCircuit struct {
	Low, High frontend.Variable
	Shot      frontend.Variable
	WantHit   frontend.Variable `gnark:",public"`
}

func (c *checkHitCircuit) Define(api frontend.API) error {
	hit := CheckHit(api, [2]frontend.Variable{c.Low, c.High}, c.Shot)
	api.AssertIsEqual(hit, c.WantHit)
	return nil
}

// TestCheckHitSoundness exercises testable property 5 at the gadget level:
// for a board with a single occupied cell (42), check_hit must return 1 at
// that cell and 0 at the neighbouring empty cell 43.
func TestCheckHitSoundness(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder checkHitCircuit

	occupied := new(big.Int).SetBit(new(big.Int), 42, 1)

	assert.ProverSucceeded(&placeholder, &checkHitCircuit{
		Low: occupied, High: 0, Shot: 42, WantHit: 1,
	}, test.WithCurves(ecc.BN254), test.NoFuzzing())

	assert.ProverSucceeded(&placeholder, &checkHitCircuit{
		Low: occupied, High: 0, Shot: 43, WantHit: 0,
	}, test.WithCurves(ecc.BN254), test.NoFuzzing())
}
