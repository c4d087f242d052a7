// Package ecp256 implements the P-256 elliptic-curve scalar-multiplication
// witness generator (spec components G and H): point add/double witnessed
// as modular-arithmetic identities, and the three scalar-multiplication
// algorithms (bit-by-bit, windowed, cached-windowed).
package ecp256

import (
	"math/big"
	"sync"
)

// Params holds the immutable P-256 curve constants. It is built lazily on
// first access and then never mutated, per the design note that promotes
// hidden mutable singletons to an explicit immutable context value.
type Params struct {
	P *big.Int // field modulus
	Q *big.Int // group order
	A *big.Int // curve coefficient a = p-3
	B *big.Int // curve coefficient b
	G Point    // generator
}

var (
	paramsOnce sync.Once
	params     Params
)

// CurveParams returns the process-wide P-256 constants given in the spec's
// numeric-constants table.
func CurveParams() Params {
	paramsOnce.Do(func() {
		p, _ := new(big.Int).SetString(
			"115792089210356248762697446949407573530086143415290314195533631308867097853951", 10)
		q, _ := new(big.Int).SetString(
			"115792089210356248762697446949407573529996955224135760342422259061068512044369", 10)
		b, _ := new(big.Int).SetString(
			"41058363725152142129326129780047268409114441015993725554835256314039467401291", 10)
		gx, _ := new(big.Int).SetString(
			"48439561293906451759052585252797914202762949526041747995844080717082404635286", 10)
		gy, _ := new(big.Int).SetString(
			"36134250956749795798585127919587881956611106672985015071877198253568414405109", 10)
		a := new(big.Int).Sub(p, big.NewInt(3))
		params = Params{
			P: p,
			Q: q,
			A: a,
			B: b,
			G: Point{X: gx, Y: gy},
		}
	})
	return params
}

// FieldModulus is the ambient prime p_F the witness sink's field elements
// live in — distinct from the secp256r1 primes P and Q above.
func FieldModulus() *big.Int {
	v, _ := new(big.Int).SetString(
		"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)
	return v
}
