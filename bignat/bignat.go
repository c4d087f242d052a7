// Package bignat implements limbed big-natural arithmetic with per-limb
// max-value tracking (spec components A-F): splitting, addition, polynomial
// multiplication, grouping, carry/aux-constant generation, and modular
// reduction witness synthesis. Every operation is pure, synchronous, and
// returns by value; failures surface as a tagged *Error, never a panic.
package bignat

import (
	"math/big"

	"github.com/zkwitness/sigwitness/field"
	"github.com/zkwitness/sigwitness/witnessmap"
)

// BigNat is a big natural number represented as limbs plus a known
// per-limb upper bound. Value and Limbs are always kept in sync; Value is
// carried for convenience in witness-time bookkeeping and is never emitted
// directly to the witness sink.
type BigNat struct {
	Limbs  []*big.Int
	Value  *big.Int
	Params Params
}

// New splits value into nLimbs limbs of limbWidth bits. If constant is true
// the declared bound on each limb is that limb's own value (the tightest
// possible bound for a compile-time constant); otherwise the bound is the
// loosest possible, 2^limbWidth - 1.
func New(value *big.Int, limbWidth, nLimbs int, constant bool) (*BigNat, error) {
	limbs, err := split(value, limbWidth, nLimbs)
	if err != nil {
		return nil, err
	}
	var params Params
	if constant {
		params = paramsFromLimbs(limbs, limbWidth)
	} else {
		params = paramsFromWidth(limbWidth, nLimbs)
	}
	return &BigNat{Limbs: limbs, Value: new(big.Int).Set(value), Params: params}, nil
}

// NewWithUpperBound is like New but the declared per-limb bound comes from
// the limbs of an explicit upper-bound value instead of the loosest
// possible bound for limbWidth.
func NewWithUpperBound(value *big.Int, limbWidth, nLimbs int, bound *big.Int) (*BigNat, error) {
	limbs, err := split(value, limbWidth, nLimbs)
	if err != nil {
		return nil, err
	}
	params, err := paramsFromBound(bound, limbWidth, nLimbs)
	if err != nil {
		return nil, err
	}
	return &BigNat{Limbs: limbs, Value: new(big.Int).Set(value), Params: params}, nil
}

// NBits returns the maximum number of bits a value represented by this
// BigNat's params could require.
func (b *BigNat) NBits() int {
	if b.Params.NLimbs == 0 {
		return 0
	}
	top := b.Params.MaxWord[b.Params.NLimbs-1]
	return b.Params.LimbWidth*(b.Params.NLimbs-1) + top.BitLen()
}

// Add computes the componentwise sum of self and other, zero-extending the
// shorter operand. The max-word vector sums componentwise too; the
// resulting overflow is deliberate and absorbed by a later Group.
func (a *BigNat) Add(b *BigNat) *BigNat {
	n := a.Params.NLimbs
	if b.Params.NLimbs > n {
		n = b.Params.NLimbs
	}
	limbs := make([]*big.Int, n)
	maxWord := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		limbs[i] = new(big.Int)
		maxWord[i] = new(big.Int)
		if i < a.Params.NLimbs {
			limbs[i].Add(limbs[i], a.Limbs[i])
			maxWord[i].Add(maxWord[i], a.Params.MaxWord[i])
		}
		if i < b.Params.NLimbs {
			limbs[i].Add(limbs[i], b.Limbs[i])
			maxWord[i].Add(maxWord[i], b.Params.MaxWord[i])
		}
	}
	var value *big.Int
	if a.Value != nil && b.Value != nil {
		value = new(big.Int).Add(a.Value, b.Value)
	}
	width := a.Params.LimbWidth
	return &BigNat{
		Limbs: limbs,
		Value: value,
		Params: Params{
			NLimbs:    n,
			LimbWidth: width,
			MaxWord:   maxWord,
		},
	}
}

// Mul computes the polynomial convolution of self and other: result has
// length n_a+n_b-1, no carries are propagated, and the max-word vector is
// the same convolution applied to the two bound vectors.
func (a *BigNat) Mul(b *BigNat) *BigNat {
	n := a.Params.NLimbs + b.Params.NLimbs - 1
	limbs := make([]*big.Int, n)
	maxWord := make([]*big.Int, n)
	for i := range limbs {
		limbs[i] = new(big.Int)
		maxWord[i] = new(big.Int)
	}
	for i, la := range a.Limbs {
		for j, lb := range b.Limbs {
			limbs[i+j].Add(limbs[i+j], new(big.Int).Mul(la, lb))
		}
	}
	for i, ma := range a.Params.MaxWord {
		for j, mb := range b.Params.MaxWord {
			maxWord[i+j].Add(maxWord[i+j], new(big.Int).Mul(ma, mb))
		}
	}
	var value *big.Int
	if a.Value != nil && b.Value != nil {
		value = new(big.Int).Mul(a.Value, b.Value)
	}
	return &BigNat{
		Limbs: limbs,
		Value: value,
		Params: Params{
			NLimbs:    n,
			LimbWidth: a.Params.LimbWidth,
			MaxWord:   maxWord,
		},
	}
}

// ScalarMul multiplies every limb and every bound by the integer k.
func (a *BigNat) ScalarMul(k *big.Int) *BigNat {
	limbs := make([]*big.Int, a.Params.NLimbs)
	maxWord := make([]*big.Int, a.Params.NLimbs)
	for i := range limbs {
		limbs[i] = new(big.Int).Mul(a.Limbs[i], k)
		maxWord[i] = new(big.Int).Mul(a.Params.MaxWord[i], k)
	}
	var value *big.Int
	if a.Value != nil {
		value = new(big.Int).Mul(a.Value, k)
	}
	return &BigNat{
		Limbs: limbs,
		Value: value,
		Params: Params{
			NLimbs:    a.Params.NLimbs,
			LimbWidth: a.Params.LimbWidth,
			MaxWord:   maxWord,
		},
	}
}

// Group coalesces k consecutive limbs into one larger field digit by Horner
// evaluation with base 2^w. It fails with GroupTooLarge if any coalesced
// max value would reach the ambient prime pF.
func (a *BigNat) Group(k int, pF *big.Int) (*BigNat, error) {
	steps := make([]int, 0, ceilDiv(a.Params.NLimbs, k))
	for remaining := a.Params.NLimbs; remaining > 0; remaining -= k {
		step := k
		if step > remaining {
			step = remaining
		}
		steps = append(steps, step)
	}
	return a.GroupSteps(steps, pF)
}

// GroupSteps coalesces limbs per an explicit step vector (each entry is the
// number of limbs folded into that output position).
func (a *BigNat) GroupSteps(steps []int, pF *big.Int) (*BigNat, error) {
	base := new(big.Int).Lsh(big.NewInt(1), uint(a.Params.LimbWidth))
	limbs := make([]*big.Int, 0, len(steps))
	maxWord := make([]*big.Int, 0, len(steps))
	idx := 0
	for _, step := range steps {
		val := new(big.Int)
		bound := new(big.Int)
		shift := big.NewInt(1)
		for j := 0; j < step && idx+j < a.Params.NLimbs; j++ {
			term := new(big.Int).Mul(a.Limbs[idx+j], shift)
			val.Add(val, term)
			boundTerm := new(big.Int).Mul(a.Params.MaxWord[idx+j], shift)
			bound.Add(bound, boundTerm)
			shift.Mul(shift, base)
		}
		if pF != nil && bound.Cmp(pF) >= 0 {
			return nil, newError(GroupTooLarge, "Group", nil)
		}
		limbs = append(limbs, val)
		maxWord = append(maxWord, bound)
		idx += step
	}
	return &BigNat{
		Limbs: limbs,
		Value: a.Value,
		Params: Params{
			NLimbs:    len(limbs),
			LimbWidth: a.Params.LimbWidth * stepOrDefault(steps),
			MaxWord:   maxWord,
		},
	}, nil
}

// stepOrDefault reports the nominal group size used to label the grouped
// LimbWidth; it is cosmetic (grouped limb widths differ per step for a
// ragged last group) and only used for a uniform step vector.
func stepOrDefault(steps []int) int {
	if len(steps) == 0 {
		return 0
	}
	return steps[0]
}

// FindStepsForGroup performs the greedy scan of spec component C
// (find_n_limbs_for_each_gp): it returns the maximum run of limbs, scanning
// left to right, whose accumulated max-word (taking the elementwise max of
// self's and other's bounds) stays strictly below pF.
func (a *BigNat) FindStepsForGroup(other *BigNat, pF *big.Int) []int {
	base := new(big.Int).Lsh(big.NewInt(1), uint(a.Params.LimbWidth))
	n := a.Params.NLimbs
	if other.Params.NLimbs < n {
		n = other.Params.NLimbs
	}
	var steps []int
	i := 0
	for i < n {
		acc := new(big.Int)
		shift := big.NewInt(1)
		run := 0
		for i+run < n {
			maxAtI := a.Params.MaxWord[i+run]
			if other.Params.MaxWord[i+run].Cmp(maxAtI) > 0 {
				maxAtI = other.Params.MaxWord[i+run]
			}
			candidate := new(big.Int).Add(acc, new(big.Int).Mul(maxAtI, shift))
			if candidate.Cmp(pF) >= 0 && run > 0 {
				break
			}
			acc = candidate
			shift.Mul(shift, base)
			run++
		}
		if run == 0 {
			run = 1
		}
		steps = append(steps, run)
		i += run
	}
	return steps
}

// Clone returns a deep copy.
func (a *BigNat) Clone() *BigNat {
	limbs := make([]*big.Int, len(a.Limbs))
	for i, l := range a.Limbs {
		limbs[i] = new(big.Int).Set(l)
	}
	maxWord := make([]*big.Int, len(a.Params.MaxWord))
	for i, m := range a.Params.MaxWord {
		maxWord[i] = new(big.Int).Set(m)
	}
	var value *big.Int
	if a.Value != nil {
		value = new(big.Int).Set(a.Value)
	}
	return &BigNat{
		Limbs: limbs,
		Value: value,
		Params: Params{
			NLimbs:    a.Params.NLimbs,
			LimbWidth: a.Params.LimbWidth,
			MaxWord:   maxWord,
		},
	}
}

// Emit writes each limb of self to frame.limbs.<i> as a field element.
func (a *BigNat) Emit(frame witnessmap.Frame) {
	limbsFrame := frame.Push("limbs")
	for i, l := range a.Limbs {
		limbsFrame.Index(i).Set(field.FromBig(l))
	}
}
