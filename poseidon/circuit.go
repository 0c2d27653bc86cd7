package poseidon

import (
	"github.com/consensys/gnark/frontend"
)

// Hash runs the same permutation as HashHost but over frontend.Variable,
// inside a circuit being built by api. It is the in-circuit counterpart of
// gadgets.hash_board from spec.md §4.1.4: no padding, two input limbs in,
// a four-element digest out.
func Hash(api frontend.API, in ...frontend.Variable) [DigestSize]frontend.Variable {
	if len(in) > Width {
		panic("poseidon: too many inputs for sponge width")
	}
	var state [Width]frontend.Variable
	for i := range state {
		state[i] = 0
	}
	copy(state[:], in)

	permuteCircuit(api, &state)

	var digest [DigestSize]frontend.Variable
	copy(digest[:], state[:DigestSize])
	return digest
}

func permuteCircuit(api frontend.API, state *[Width]frontend.Variable) {
	round := 0
	half := FullRounds / 2

	for r := 0; r < half; r++ {
		fullRoundCircuit(api, state, round)
		round++
	}
	for r := 0; r < PartialRounds; r++ {
		partialRoundCircuit(api, state, round)
		round++
	}
	for r := 0; r < half; r++ {
		fullRoundCircuit(api, state, round)
		round++
	}
}

func fullRoundCircuit(api frontend.API, state *[Width]frontend.Variable, round int) {
	for i := 0; i < Width; i++ {
		state[i] = api.Add(state[i], roundConstants[round][i])
		state[i] = sboxCircuit(api, state[i])
	}
	mixCircuit(api, state)
}

func partialRoundCircuit(api frontend.API, state *[Width]frontend.Variable, round int) {
	for i := 0; i < Width; i++ {
		state[i] = api.Add(state[i], roundConstants[round][i])
	}
	state[0] = sboxCircuit(api, state[0])
	mixCircuit(api, state)
}

func sboxCircuit(api frontend.API, x frontend.Variable) frontend.Variable {
	x2 := api.Mul(x, x)
	x4 := api.Mul(x2, x2)
	return api.Mul(x4, x)
}

func mixCircuit(api frontend.API, state *[Width]frontend.Variable) {
	var next [Width]frontend.Variable
	for i := 0; i < Width; i++ {
		acc := api.Mul(mds[i][0], state[0])
		for j := 1; j < Width; j++ {
			acc = api.MulAcc(acc, mds[i][j], state[j])
		}
		next[i] = acc
	}
	*state = next
}
