package bignat

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog/log"
)

// CW2 is the soft cap on carry bit-width mentioned in the spec's open
// questions: a carry wider than this is only a warning, since the
// downstream circuit constant may need bumping, not a hard failure.
const CW2 = 75

// CarryResult holds the per-group carry/aux witness produced by the
// carry-propagation identity of spec section 3.
type CarryResult struct {
	Carry     []*big.Int
	CarryBits []int
	Aux       []*big.Int
	// Warnings lists, by group index, carries whose bit-width exceeds CW2.
	Warnings []int
}

// carryAndAux implements spec component D: given two grouped BigNats of
// equal length, it produces the per-group max word, carry bit-widths,
// carry values, and aux constants satisfying
//
//	left_i + c_{i-1} + maxword_i - right_i = aux_i + c_i * 2^w_g
//
// with c_{-1} = 0. aux is derived purely from the maxword sequence (the
// prefix-sum-of-max-words quantity); a mismatch between the witnessed
// remainder and aux_i signals InternalInconsistency.
func carryAndAux(left, right *BigNat) (*CarryResult, error) {
	n := left.Params.NLimbs
	if right.Params.NLimbs < n {
		n = right.Params.NLimbs
	}
	if n == 0 {
		return &CarryResult{}, nil
	}
	wg := left.Params.LimbWidth
	base := new(big.Int).Lsh(big.NewInt(1), uint(wg))

	maxWord := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		m := left.Params.MaxWord[i]
		if right.Params.MaxWord[i].Cmp(m) > 0 {
			m = right.Params.MaxWord[i]
		}
		maxWord[i] = m
	}

	aux := computeAuxConst(maxWord, wg)

	carry := make([]*big.Int, n)
	carryBits := make([]int, n)
	var warnings []int
	carryIn := big.NewInt(0)
	for i := 0; i < n; i++ {
		twoMax := new(big.Int).Lsh(maxWord[i], 1)
		carryBits[i] = ceilLog2(twoMax) - wg
		if carryBits[i] < 0 {
			carryBits[i] = 0
		}
		if carryBits[i] > CW2 {
			warnings = append(warnings, i)
		}

		numerator := new(big.Int).Add(left.Limbs[i], carryIn)
		numerator.Add(numerator, maxWord[i])
		numerator.Sub(numerator, right.Limbs[i])

		carryOut := new(big.Int)
		remainder := new(big.Int)
		carryOut.DivMod(numerator, base, remainder)

		if remainder.Cmp(aux[i]) != 0 {
			return nil, newError(InternalInconsistency, "carryAndAux",
				fmt.Errorf("group %d: remainder %s != aux %s", i, remainder, aux[i]))
		}

		carry[i] = carryOut
		carryIn = carryOut
	}
	if carry[n-1].Cmp(aux[n]) != 0 {
		return nil, newError(InternalInconsistency, "carryAndAux",
			fmt.Errorf("last carry %s != top aux %s", carry[n-1], aux[n]))
	}

	for _, i := range warnings {
		log.Warn().
			Str("kind", CarryWidthExceedsCap.String()).
			Int("group", i).
			Int("carry_bits", carryBits[i]).
			Int("cap", CW2).
			Msg("carry width exceeds soft cap; downstream circuit constant may need widening")
	}

	return &CarryResult{Carry: carry, CarryBits: carryBits, Aux: aux, Warnings: warnings}, nil
}

// computeAuxConst returns the n+1 aux constants for a maxword sequence of
// length n: aux_i is the low w_g bits of the running prefix sum of maxword,
// and the final (n-th) entry is the accumulated high-word overflow.
func computeAuxConst(maxWord []*big.Int, wg int) []*big.Int {
	base := new(big.Int).Lsh(big.NewInt(1), uint(wg))
	aux := make([]*big.Int, len(maxWord)+1)
	accumulated := new(big.Int)
	for i, m := range maxWord {
		accumulated.Add(accumulated, m)
		low := new(big.Int)
		high := new(big.Int)
		high.DivMod(accumulated, base, low)
		aux[i] = low
		accumulated = high
	}
	aux[len(maxWord)] = accumulated
	return aux
}
