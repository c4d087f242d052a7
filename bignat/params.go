package bignat

import "math/big"

// Params describes the limb layout of a BigNat: the limb count, the common
// limb bit-width, and the per-limb declared upper bound (the max-word
// vector). MaxWord is the central invariant driver for every arithmetic
// operation below.
type Params struct {
	NLimbs    int
	LimbWidth int
	MaxWord   []*big.Int
}

// paramsFromWidth returns params whose bound on every limb is the loosest
// possible for the given width: 2^w - 1.
func paramsFromWidth(limbWidth, nLimbs int) Params {
	maxLimb := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(limbWidth)), big.NewInt(1))
	maxWord := make([]*big.Int, nLimbs)
	for i := range maxWord {
		maxWord[i] = new(big.Int).Set(maxLimb)
	}
	return Params{NLimbs: nLimbs, LimbWidth: limbWidth, MaxWord: maxWord}
}

// paramsFromLimbs returns params whose bound on each limb is exactly that
// limb's value — used when the BigNat is a compile-time constant, so
// downstream arithmetic gets the tightest possible bound.
func paramsFromLimbs(limbs []*big.Int, limbWidth int) Params {
	maxWord := make([]*big.Int, len(limbs))
	for i, l := range limbs {
		maxWord[i] = new(big.Int).Set(l)
	}
	return Params{NLimbs: len(limbs), LimbWidth: limbWidth, MaxWord: maxWord}
}

// paramsFromBound returns params whose bound on each limb is the
// corresponding limb of the given upper bound value.
func paramsFromBound(bound *big.Int, limbWidth, nLimbs int) (Params, error) {
	limbs, err := split(bound, limbWidth, nLimbs)
	if err != nil {
		return Params{}, err
	}
	return paramsFromLimbs(limbs, limbWidth), nil
}
