// Package ed25519scalar supplies the Ed25519 group and scalar-field
// constants the EdDSA sigma driver needs, plus Scalar, a thin modular-
// arithmetic wrapper matching the shape of the standard library's own
// edwards25519.Scalar (Add/Subtract/Negate/Multiply/Reduce) but built on
// math/big instead of a fiat-crypto Montgomery-domain field, since every
// other scalar-field value in this module already flows through big.Int.
package ed25519scalar

import (
	"fmt"
	"math/big"
	"sync"
)

// Params holds the immutable Ed25519 curve and scalar-field constants.
type Params struct {
	P  *big.Int // field modulus, 2^255 - 19
	L  *big.Int // group order (scalar field modulus)
	D  *big.Int // curve equation constant
	Bx *big.Int // base point x
	By *big.Int // base point y
}

var (
	paramsOnce sync.Once
	params     Params
)

// CurveParams returns the process-wide Ed25519 constants.
func CurveParams() Params {
	paramsOnce.Do(func() {
		p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
		l, _ := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
		l.Add(l, new(big.Int).Lsh(big.NewInt(1), 252))
		d, _ := new(big.Int).SetString(
			"37095705934669439343138083508754565189542113879843219016388785533085940283555", 10)
		bx, _ := new(big.Int).SetString(
			"15112221349535400772501151409588531511454012693041857206046113283949847762202", 10)
		by, _ := new(big.Int).SetString(
			"46316835694926478169428394003475163141307993866256225615783033603165251855960", 10)
		params = Params{P: p, L: l, D: d, Bx: bx, By: by}
	})
	return params
}

// Scalar is an integer modulo L, the Ed25519 group order.
type Scalar struct {
	v *big.Int
}

// NewScalar reduces v modulo L and returns the resulting Scalar.
func NewScalar(v *big.Int) Scalar {
	l := CurveParams().L
	return Scalar{v: new(big.Int).Mod(v, l)}
}

// Add returns x + y mod L.
func (x Scalar) Add(y Scalar) Scalar {
	return NewScalar(new(big.Int).Add(x.v, y.v))
}

// Subtract returns x - y mod L.
func (x Scalar) Subtract(y Scalar) Scalar {
	return NewScalar(new(big.Int).Sub(x.v, y.v))
}

// Negate returns -x mod L.
func (x Scalar) Negate() Scalar {
	return NewScalar(new(big.Int).Neg(x.v))
}

// Multiply returns x * y mod L.
func (x Scalar) Multiply(y Scalar) Scalar {
	return NewScalar(new(big.Int).Mul(x.v, y.v))
}

// Int returns the canonical non-negative representative of x in [0, L).
func (x Scalar) Int() *big.Int {
	return new(big.Int).Set(x.v)
}

// SetUniformBytes reduces a 64-byte little-endian integer modulo L, the
// construction used to derive a scalar from a wide hash output (SHA-512 for
// EdDSA's nonce and challenge scalars).
func SetUniformBytes(wide []byte) (Scalar, error) {
	if len(wide) != 64 {
		return Scalar{}, fmt.Errorf("ed25519scalar: SetUniformBytes requires 64 bytes, got %d", len(wide))
	}
	le := make([]byte, len(wide))
	for i, b := range wide {
		le[len(wide)-1-i] = b
	}
	v := new(big.Int).SetBytes(le)
	return NewScalar(v), nil
}
