// Package gadgets holds the circuit fragments shared by circuits/board,
// circuits/shot, and circuits/channel: range checks, board bit
// decomposition/recomposition, coordinate generation, ship placement,
// bit-flip interpolation, shot serialization, and hit lookup. Every gadget
// here takes a frontend.API and operates on frontend.Variable, so it can be
// called from either an inner or an outer circuit's Define.
package gadgets

// Config mirrors the two prover configurations BoardCircuit and ShotCircuit
// are built under: an inner config with an enlarged routed-wire budget for
// the random-access lookups PlaceShip and CheckHit perform, and an outer
// config that drops the wide wire budget but turns on ZK blinding. gnark's
// frontend does not expose a routed-wire knob directly (that lives inside
// the backend's constraint-system compilation), so Config is carried
// alongside circuit construction as documentation of which budget a given
// Define assumes. recursion.Build stores it on the CommonData it returns,
// and CommonData.CheckCompatible compares it between two builds; it is not
// checked against the compiled circuit itself.
type Config struct {
	// NumWires and NumRoutedWires record the prover wire budget this
	// config assumes. The inner board/shot circuits need NumRoutedWires
	// large enough to cover every random-access lookup into a 128-wide
	// bit vector in one level; 137/130 are the widths the source circuit
	// configures for exactly this purpose.
	NumWires, NumRoutedWires int
	// ZeroKnowledge is true for outer (ZK-blinded) circuits and false for
	// the inner, fast-to-prove circuits that feed them.
	ZeroKnowledge bool
}

// InnerConfig is the configuration BoardCircuit's and ShotCircuit's inner
// (non-ZK) variants are built under.
func InnerConfig() Config {
	return Config{NumWires: 137, NumRoutedWires: 130, ZeroKnowledge: false}
}

// OuterConfig is the configuration the recursive ZK-blinded wrapper around
// an inner proof is built under: the standard recursion widths.
func OuterConfig() Config {
	return Config{NumWires: 135, NumRoutedWires: 80, ZeroKnowledge: true}
}
