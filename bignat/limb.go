package bignat

import (
	"fmt"
	"math/big"
)

// split extracts nLimbs base-2^width digits of v, least-significant first,
// padding with zeros on the high end. It fails if v needs more than nLimbs
// limbs to represent exactly.
func split(v *big.Int, width, nLimbs int) ([]*big.Int, error) {
	if v.Sign() < 0 {
		return nil, newError(InvalidParameters, "split", fmt.Errorf("negative value"))
	}
	base := new(big.Int).Lsh(big.NewInt(1), uint(width))
	remainder := new(big.Int).Set(v)
	limbs := make([]*big.Int, 0, nLimbs)
	mod := new(big.Int)
	for remainder.Sign() > 0 {
		limb := new(big.Int)
		limb.DivMod(remainder, base, mod)
		limbs = append(limbs, new(big.Int).Set(mod))
		remainder = limb
	}
	for len(limbs) < nLimbs {
		limbs = append(limbs, big.NewInt(0))
	}
	if len(limbs) != nLimbs {
		return nil, newError(InvalidParameters, "split",
			fmt.Errorf("value needs %d limbs, only %d available", len(limbs), nLimbs))
	}
	return limbs, nil
}

// recompose recombines limbs (least-significant first) into a single
// integer using base 2^width.
func recompose(limbs []*big.Int, width int) *big.Int {
	out := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		out.Lsh(out, uint(width))
		out.Add(out, limbs[i])
	}
	return out
}

// splitChunks applies split per sub-table chunk: each limb bound by < 2^w is
// further split into ceil(w/s) chunks of s bits for a lookup-argument
// sub-table of bit-width s.
func splitChunks(limb *big.Int, subtableWidth, width int) ([]*big.Int, error) {
	nChunks := ceilDiv(width, subtableWidth)
	return split(limb, subtableWidth, nChunks)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// ceilLog2 returns the smallest k such that 2^k >= v, for v > 0.
func ceilLog2(v *big.Int) int {
	if v.Sign() <= 0 {
		return 0
	}
	bitLen := v.BitLen()
	// v is already a power of two iff v has exactly one bit set.
	one := new(big.Int).Lsh(big.NewInt(1), uint(bitLen-1))
	if one.Cmp(v) == 0 {
		return bitLen - 1
	}
	return bitLen
}
