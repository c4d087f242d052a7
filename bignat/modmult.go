package bignat

import (
	"math/big"

	"github.com/zkwitness/sigwitness/witnessmap"
)

// ModMultResult synthesizes (q, r, v, carry) for a*b = q*m + r, per spec
// component E. Carry here is the plain bit-vector encoding; see
// ModMultAdvancedResult for the sub-table-chunked variant.
type ModMultResult struct {
	A, B, M   *BigNat
	Z         *BigNat // polynomial product a*b
	Q         *BigNat // quotient
	R         *BigNat // remainder
	V         *BigNat // polynomial product q*m
	GroupSize int
	Carry     *CarryResult
}

// ModMult synthesizes the witness for a*b = q*m + r. quotientBits declares
// the bit-width of the quotient; groupSize is the number of limbs folded
// per group before the carry identity is expressed; pF is the ambient
// prime the grouped limbs must stay under.
func ModMult(a, b, m *BigNat, quotientBits, groupSize int, pF *big.Int) (*ModMultResult, error) {
	if a.Params.LimbWidth != b.Params.LimbWidth || a.Params.LimbWidth != m.Params.LimbWidth {
		return nil, newError(InvalidParameters, "ModMult", nil)
	}
	if m.Value == nil || m.Value.Sign() == 0 {
		return nil, newError(InvalidParameters, "ModMult", nil)
	}

	z := a.Mul(b)

	qVal := new(big.Int)
	rVal := new(big.Int)
	qVal.DivMod(z.Value, m.Value, rVal)

	quotientBound := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(quotientBits)), big.NewInt(1))
	if qVal.Cmp(quotientBound) > 0 {
		return nil, newError(QuotientBoundExceeded, "ModMult", nil)
	}
	q, err := NewWithUpperBound(qVal, m.Params.LimbWidth, m.Params.NLimbs+1, quotientBound)
	if err != nil {
		return nil, err
	}

	remainderBound := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(m.Params.NLimbs*m.Params.LimbWidth)), big.NewInt(1))
	r, err := NewWithUpperBound(rVal, m.Params.LimbWidth, m.Params.NLimbs, remainderBound)
	if err != nil {
		return nil, err
	}

	if check := new(big.Int).Add(new(big.Int).Mul(qVal, m.Value), rVal); check.Cmp(z.Value) != 0 {
		return nil, newError(InternalInconsistency, "ModMult", nil)
	}

	v := q.Mul(m)
	right := v.Add(r)

	groupLeft, err := z.Group(groupSize, pF)
	if err != nil {
		return nil, err
	}
	groupRight, err := right.Group(groupSize, pF)
	if err != nil {
		return nil, err
	}
	carry, err := carryAndAux(groupLeft, groupRight)
	if err != nil {
		return nil, err
	}

	return &ModMultResult{
		A: a, B: b, M: m,
		Z: z, Q: q, R: r, V: v,
		GroupSize: groupSize,
		Carry:     carry,
	}, nil
}

// Mod synthesizes the witness for left = q*m + r, i.e. left mod m, starting
// from an already-computed left value instead of a polynomial product.
func Mod(left, m *BigNat, quotientBits, groupSize int, pF *big.Int) (*ModMultResult, error) {
	if left.Params.LimbWidth != m.Params.LimbWidth {
		return nil, newError(InvalidParameters, "Mod", nil)
	}
	qVal := new(big.Int)
	rVal := new(big.Int)
	qVal.DivMod(left.Value, m.Value, rVal)

	quotientBound := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(quotientBits)), big.NewInt(1))
	if qVal.Cmp(quotientBound) > 0 {
		return nil, newError(QuotientBoundExceeded, "Mod", nil)
	}
	q, err := NewWithUpperBound(qVal, m.Params.LimbWidth, m.Params.NLimbs+1, quotientBound)
	if err != nil {
		return nil, err
	}
	remainderBound := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(m.Params.NLimbs*m.Params.LimbWidth)), big.NewInt(1))
	r, err := NewWithUpperBound(rVal, m.Params.LimbWidth, m.Params.NLimbs, remainderBound)
	if err != nil {
		return nil, err
	}

	v := q.Mul(m)
	right := v.Add(r)

	groupLeft, err := left.Group(groupSize, pF)
	if err != nil {
		return nil, err
	}
	groupRight, err := right.Group(groupSize, pF)
	if err != nil {
		return nil, err
	}
	carry, err := carryAndAux(groupLeft, groupRight)
	if err != nil {
		return nil, err
	}

	return &ModMultResult{
		A: left, M: m,
		Z: left, Q: q, R: r, V: v,
		GroupSize: groupSize,
		Carry:     carry,
	}, nil
}

// ModWithRemainder is like Mod but accepts a caller-supplied remainder
// instead of computing left mod m directly — used by the EC point-add/
// double identities, whose remainder is one of m, x3, y3 computed from the
// curve formula rather than a literal modulo.
func ModWithRemainder(left, m, remainder *BigNat, quotientBits, groupSize int, pF *big.Int) (*ModMultResult, error) {
	qVal := new(big.Int).Sub(left.Value, remainder.Value)
	qVal.Div(qVal, m.Value)

	quotientBound := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(quotientBits)), big.NewInt(1))
	if qVal.Cmp(quotientBound) > 0 {
		return nil, newError(QuotientBoundExceeded, "ModWithRemainder", nil)
	}
	q, err := NewWithUpperBound(qVal, m.Params.LimbWidth, m.Params.NLimbs+1, quotientBound)
	if err != nil {
		return nil, err
	}
	if check := new(big.Int).Add(new(big.Int).Mul(qVal, m.Value), remainder.Value); check.Cmp(left.Value) != 0 {
		return nil, newError(InternalInconsistency, "ModWithRemainder", nil)
	}

	v := q.Mul(m)
	right := v.Add(remainder)

	groupLeft, err := left.Group(groupSize, pF)
	if err != nil {
		return nil, err
	}
	groupRight, err := right.Group(groupSize, pF)
	if err != nil {
		return nil, err
	}
	carry, err := carryAndAux(groupLeft, groupRight)
	if err != nil {
		return nil, err
	}

	return &ModMultResult{
		A: left, M: m,
		Z: left, Q: q, R: remainder, V: v,
		GroupSize: groupSize,
		Carry:     carry,
	}, nil
}

// Emit writes z, v, the quotient, the remainder, and the carry bits to the
// witness sink rooted at frame.
func (r *ModMultResult) Emit(frame witnessmap.Frame) {
	r.Z.Emit(frame.Push("z"))
	r.V.Emit(frame.Push("v"))
	r.Q.Emit(frame.Push("quotient"))
	r.R.Emit(frame.Push("remainder"))
	emitCarryBits(r.Carry, frame.Push("carry"))
}

// emitCarryBits writes the plain bit-vector encoding of each carry value.
func emitCarryBits(c *CarryResult, frame witnessmap.Frame) {
	for i, v := range c.Carry {
		bits := bitVector(v, c.CarryBits[i])
		bitsFrame := frame.Index(i)
		for j, bit := range bits {
			bitsFrame.Index(j).Set(bitToField(bit))
		}
	}
}
