package bignat

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/zkwitness/sigwitness/field"
)

// bitVector returns the nBits low-order bits of v, least-significant first.
func bitVector(v *big.Int, nBits int) []bool {
	bits := make([]bool, nBits)
	for i := 0; i < nBits; i++ {
		bits[i] = v.Bit(i) == 1
	}
	return bits
}

func bitToField(b bool) fr.Element {
	if b {
		return field.FromBig(big.NewInt(1))
	}
	return field.FromBig(big.NewInt(0))
}
