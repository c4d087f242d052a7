// Package field wraps the ambient prime field p_F that the verifier circuit
// is written over. p_F is the BLS12-381 scalar field order, so witness
// values are represented directly as fr.Element instead of hand-rolled
// modular arithmetic.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Modulus returns the ambient prime p_F, as given in the witness spec's
// numeric-constants table.
func Modulus() *big.Int {
	return fr.Modulus()
}

// FromBig reduces v modulo p_F and returns the corresponding field element.
// This is the concrete rendition of the external integer_to_field interface.
func FromBig(v *big.Int) fr.Element {
	var e fr.Element
	e.SetBigInt(v)
	return e
}

// ToBig returns the canonical non-negative representative of e in [0, p_F).
func ToBig(e fr.Element) *big.Int {
	var out big.Int
	e.BigInt(&out)
	return &out
}
