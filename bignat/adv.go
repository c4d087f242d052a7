package bignat

import (
	"math/big"

	"github.com/zkwitness/sigwitness/field"
	"github.com/zkwitness/sigwitness/witnessmap"
)

// ModMultAdvancedResult is the advanced range-check rendition of
// ModMultResult (spec component F): the carry and the quotient are
// pre-chunked into sub-table-width pieces for a lookup-argument instead of
// emitted bit by bit.
type ModMultAdvancedResult struct {
	*ModMultResult
	SubtableWidth int
	QuotientChunks [][]*big.Int
	RemainderChunks [][]*big.Int
	CarryChunks    [][]*big.Int
}

// ModMultAdvanced wraps ModMult and additionally chunks the quotient,
// remainder, and carry into subtableWidth-bit pieces. The final limb of the
// quotient is chunked separately since its declared bit-width need not be a
// multiple of the limb width; the remaining chunks of that limb must be
// zero (checked below).
func ModMultAdvanced(a, b, m *BigNat, quotientBits, groupSize, subtableWidth int, pF *big.Int) (*ModMultAdvancedResult, error) {
	base, err := ModMult(a, b, m, quotientBits, groupSize, pF)
	if err != nil {
		return nil, err
	}
	return advancedFromBase(base, subtableWidth)
}

// ModAdvanced is the advanced rendition of Mod.
func ModAdvanced(left, m *BigNat, quotientBits, groupSize, subtableWidth int, pF *big.Int) (*ModMultAdvancedResult, error) {
	base, err := Mod(left, m, quotientBits, groupSize, pF)
	if err != nil {
		return nil, err
	}
	return advancedFromBase(base, subtableWidth)
}

// ModWithRemainderAdvanced is the advanced rendition of ModWithRemainder.
func ModWithRemainderAdvanced(left, m, remainder *BigNat, quotientBits, groupSize, subtableWidth int, pF *big.Int) (*ModMultAdvancedResult, error) {
	base, err := ModWithRemainder(left, m, remainder, quotientBits, groupSize, pF)
	if err != nil {
		return nil, err
	}
	return advancedFromBase(base, subtableWidth)
}

func advancedFromBase(base *ModMultResult, subtableWidth int) (*ModMultAdvancedResult, error) {
	quotientChunks, err := chunkLimbs(base.Q, subtableWidth)
	if err != nil {
		return nil, err
	}
	remainderChunks, err := chunkLimbs(base.R, subtableWidth)
	if err != nil {
		return nil, err
	}
	carryChunks := make([][]*big.Int, len(base.Carry.Carry))
	for i, c := range base.Carry.Carry {
		chunks, err := splitChunks(c, subtableWidth, base.Carry.CarryBits[i])
		if err != nil {
			return nil, err
		}
		carryChunks[i] = chunks
	}
	return &ModMultAdvancedResult{
		ModMultResult:   base,
		SubtableWidth:   subtableWidth,
		QuotientChunks:  quotientChunks,
		RemainderChunks: remainderChunks,
		CarryChunks:     carryChunks,
	}, nil
}

// chunkLimbs splits every limb of n into subtableWidth-bit chunks. The
// last limb of a quotient-shaped BigNat may be intentionally shorter than a
// full limb width; in that case its extra chunks must be zero.
func chunkLimbs(n *BigNat, subtableWidth int) ([][]*big.Int, error) {
	out := make([][]*big.Int, len(n.Limbs))
	for i, l := range n.Limbs {
		width := n.Params.LimbWidth
		if i == len(n.Limbs)-1 {
			if b := n.Params.MaxWord[i].BitLen(); b > 0 && b < width {
				width = b
			}
		}
		chunks, err := splitChunks(l, subtableWidth, width)
		if err != nil {
			return nil, err
		}
		out[i] = chunks
	}
	return out, nil
}

// Emit writes the advanced encoding: z, v, chunked quotient/remainder, and
// chunked carries.
func (r *ModMultAdvancedResult) Emit(frame witnessmap.Frame) {
	r.Z.Emit(frame.Push("z"))
	r.V.Emit(frame.Push("v"))
	emitChunks(r.QuotientChunks, frame.Push("quotient_init"))
	emitChunks(r.RemainderChunks, frame.Push("remainder_init"))
	emitChunks(r.CarryChunks, frame.Push("carry_init"))
}

func emitChunks(chunks [][]*big.Int, frame witnessmap.Frame) {
	for i, limbChunks := range chunks {
		limbFrame := frame.Index(i).Push("limbs")
		for j, c := range limbChunks {
			limbFrame.Index(j).Set(field.FromBig(c))
		}
	}
}
