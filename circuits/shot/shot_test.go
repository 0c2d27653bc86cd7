package shot

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/battlezip/battleship"
)

func hostBoard() battleship.Board {
	return battleship.NewBoard(
		battleship.NewShip(3, 4, false, battleship.CarrierLength),
		battleship.NewShip(9, 6, true, battleship.BattleshipLength),
		battleship.NewShip(0, 0, false, battleship.CruiserLength),
		battleship.NewShip(0, 6, false, battleship.SubmarineLength),
		battleship.NewShip(6, 1, true, battleship.DestroyerLength),
	)
}

// TestInnerCircuitScenarioAHit is spec.md scenario A: shot (0,0) against
// host_board is a hit (the cruiser's head occupies cell 0).
func TestInnerCircuitScenarioAHit(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder InnerCircuit
	assignment := AssignInner(hostBoard(), 0, 0)
	require.EqualValues(t, 0, assignment.Shot)
	require.EqualValues(t, 1, assignment.Hit)
	assert.ProverSucceeded(&placeholder, assignment, test.WithCurves(ecc.BN254), test.NoFuzzing())
}

// TestInnerCircuitScenarioBMiss is spec.md scenario B: shot (0,1) is a
// miss (shot=10).
func TestInnerCircuitScenarioBMiss(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder InnerCircuit
	assignment := AssignInner(hostBoard(), 0, 1)
	require.EqualValues(t, 10, assignment.Shot)
	require.EqualValues(t, 0, assignment.Hit)
	assert.ProverSucceeded(&placeholder, assignment, test.WithCurves(ecc.BN254), test.NoFuzzing())
}

// TestHitSoundnessEveryCell is testable property 5: for every cell of
// host_board, the hit bit equals the board's own occupancy bit.
func TestHitSoundnessEveryCell(t *testing.T) {
	assert := test.NewAssert(t)
	b := hostBoard()
	bits := b.Bits()
	var placeholder InnerCircuit
	for cell := 0; cell < 100; cell++ {
		x := uint8(cell % 10)
		y := uint8(cell / 10)
		assignment := AssignInner(b, x, y)
		wantHit := 0
		if bits[cell] {
			wantHit = 1
		}
		require.EqualValues(t, wantHit, assignment.Hit)
		assert.ProverSucceeded(&placeholder, assignment, test.WithCurves(ecc.BN254), test.NoFuzzing())
	}
}

// TestInnerCircuitRejectsWrongHit asserts that claiming the wrong hit bit
// for a known cell is unsatisfiable.
func TestInnerCircuitRejectsWrongHit(t *testing.T) {
	assert := test.NewAssert(t)
	placeholder := &InnerCircuit{}
	assignment := AssignInner(hostBoard(), 0, 0) // true hit
	assignment.Hit = 0
	assert.ProverFailed(placeholder, assignment, test.WithCurves(ecc.BN254), test.NoFuzzing())
}
