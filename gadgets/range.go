package gadgets

import "github.com/consensys/gnark/frontend"

// LessThan10 constrains v to lie in [0,9] by forcing the ten-factor product
// prod_{i=0..9}(i - v) to zero: the product vanishes exactly when v matches
// one of 0..9, and is guaranteed nonzero (over a field with more than ten
// elements) for every other value, including anything in [10, p-1].
//
// The source this was translated from used a nine-factor product (i
// ranging 0..8), which only admits v in [0,8] and silently rejects v=9.
// That is a bug, not a design choice: nine is not the number of values in
// [0,9]. This implementation uses all ten factors.
func LessThan10(api frontend.API, v frontend.Variable) {
	acc := api.Sub(0, v)
	for i := 1; i < 10; i++ {
		acc = api.Mul(acc, api.Sub(i, v))
	}
	api.AssertIsEqual(acc, 0)
}
