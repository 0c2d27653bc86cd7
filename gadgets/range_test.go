package gadgets

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
)

type lessThan10Circuit struct {
	V frontend.Variable
}

func (c *lessThan10Circuit) Define(api frontend.API) error {
	LessThan10(api, c.V)
	return nil
}

// TestLessThan10AdmitsNine pins the resolved off-by-one: the nine-factor
// product the source used only admits [0,8], silently rejecting 9. This
// gadget must accept it.
func TestLessThan10AdmitsNine(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder lessThan10Circuit
	assert.ProverSucceeded(&placeholder, &lessThan10Circuit{V: 9}, test.WithCurves(ecc.BN254), test.NoFuzzing())
}

func TestLessThan10AdmitsFullRange(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder lessThan10Circuit
	for v := 0; v < 10; v++ {
		assert.ProverSucceeded(&placeholder, &lessThan10Circuit{V: v}, test.WithCurves(ecc.BN254), test.NoFuzzing())
	}
}

func TestLessThan10RejectsTen(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder lessThan10Circuit
	assert.ProverFailed(&placeholder, &lessThan10Circuit{V: 10}, test.WithCurves(ecc.BN254), test.NoFuzzing())
}

func TestLessThan10RejectsFifty(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder lessThan10Circuit
	assert.ProverFailed(&placeholder, &lessThan10Circuit{V: 50}, test.WithCurves(ecc.BN254), test.NoFuzzing())
}
