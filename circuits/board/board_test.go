package board

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/google/go-cmp/cmp"
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

func guestBoard() battleship.Board {
	return battleship.NewBoard(
		battleship.NewShip(3, 3, true, battleship.CarrierLength),
		battleship.NewShip(5, 4, false, battleship.BattleshipLength),
		battleship.NewShip(0, 1, false, battleship.CruiserLength),
		battleship.NewShip(0, 5, true, battleship.SubmarineLength),
		battleship.NewShip(6, 1, false, battleship.DestroyerLength),
	)
}

// TestInnerCircuitScenarioA is the gadget-level half of scenario A: the
// host board is a valid placement and InnerCircuit accepts it with the
// board's own off-circuit Poseidon hash as the public commitment
// (testable property 2, commitment determinism).
func TestInnerCircuitScenarioA(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder InnerCircuit
	assignment := AssignInner(hostBoard())
	assert.ProverSucceeded(&placeholder, assignment, test.WithCurves(ecc.BN254), test.NoFuzzing())
}

// TestInnerCircuitRejectsWrongCommitment checks that an inner proof cannot
// be produced against a commitment other than the true hash of the board.
func TestInnerCircuitRejectsWrongCommitment(t *testing.T) {
	assert := test.NewAssert(t)
	var placeholder InnerCircuit
	assignment := AssignInner(hostBoard())
	assignment.Commitment[0] = 0
	assert.ProverFailed(&placeholder, assignment, test.WithCurves(ecc.BN254), test.NoFuzzing())
}

// TestInnerCircuitScenarioCOverlapRejected replaces host_board's first
// cruiser with a placement that collides with the carrier and checks
// BoardCircuit rejects it (testable property 3).
func TestInnerCircuitScenarioCOverlapRejected(t *testing.T) {
	assert := test.NewAssert(t)
	placeholder := &InnerCircuit{}

	overlapping := battleship.NewBoard(
		battleship.NewShip(3, 4, false, battleship.CarrierLength),
		battleship.NewShip(9, 6, true, battleship.BattleshipLength),
		battleship.NewShip(3, 4, false, battleship.CruiserLength), // collides with carrier
		battleship.NewShip(0, 6, false, battleship.SubmarineLength),
		battleship.NewShip(6, 1, true, battleship.DestroyerLength),
	)
	assignment := AssignInner(overlapping)
	assert.ProverFailed(placeholder, assignment, test.WithCurves(ecc.BN254), test.NoFuzzing())
}

// TestBuildProveVerifyRoundTrip exercises the full inner -> outer ->
// verify -> decode pipeline end to end for the host board: scenario A's
// integration half.
func TestBuildProveVerifyRoundTrip(t *testing.T) {
	circuit, err := Build()
	require.NoError(t, err)

	b := hostBoard()
	innerProof, innerPub, err := circuit.ProveInner(b)
	require.NoError(t, err)

	outerProof, outerPub, err := circuit.ProveOuter(innerProof, innerPub, b.Hash())
	require.NoError(t, err)

	require.NoError(t, circuit.VerifyOuter(outerProof, outerPub))

	out, err := Decode(outerPub)
	require.NoError(t, err)
	want := Outputs{Commitment: b.Hash()}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("decoded outputs mismatch (-want +got):\n%s", diff)
	}
}

var _ frontend.Circuit = (*InnerCircuit)(nil)
var _ frontend.Circuit = (*OuterCircuit)(nil)
