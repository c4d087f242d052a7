package bignat

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitRecompose(t *testing.T) {
	v := big.NewInt(123456789)
	limbs, err := split(v, 8, 8)
	require.NoError(t, err)
	got := recompose(limbs, 8)
	require.Zero(t, got.Cmp(v), "recompose(split(v)) = %s, want %s", got, v)
}

func TestAddValueAndBound(t *testing.T) {
	a, err := New(big.NewInt(100), 32, 4, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := New(big.NewInt(200), 32, 4, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := a.Add(b)
	if sum.Value.Cmp(big.NewInt(300)) != 0 {
		t.Errorf("sum.Value = %s, want 300", sum.Value)
	}
	for i := range sum.Params.MaxWord {
		want := new(big.Int).Add(a.Params.MaxWord[i], b.Params.MaxWord[i])
		if sum.Params.MaxWord[i].Cmp(want) != 0 {
			t.Errorf("sum.Params.MaxWord[%d] = %s, want %s", i, sum.Params.MaxWord[i], want)
		}
	}
}

func TestMulIsPolynomialConvolution(t *testing.T) {
	a, _ := New(big.NewInt(7), 32, 2, false)
	b, _ := New(big.NewInt(9), 32, 2, false)
	prod := a.Mul(b)
	if prod.Value.Cmp(big.NewInt(63)) != 0 {
		t.Errorf("prod.Value = %s, want 63", prod.Value)
	}
	if prod.Params.NLimbs != a.Params.NLimbs+b.Params.NLimbs-1 {
		t.Errorf("prod.Params.NLimbs = %d, want %d", prod.Params.NLimbs, a.Params.NLimbs+b.Params.NLimbs-1)
	}
}

func TestGroupPreservesValue(t *testing.T) {
	v, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	a, err := New(v, 32, 8, false)
	require.NoError(t, err)

	// Group by 4, giving a uniform step vector (4, 4) over 8 limbs, so the
	// grouped value recomposes at a single base of 2^(4*32).
	grouped, err := a.Group(4, fieldModulus())
	require.NoError(t, err)

	got := recompose(grouped.Limbs, 4*32)
	require.Zero(t, got.Cmp(v), "grouping changed value: got %s, want %s", got, v)
}

func TestModMultIdentity(t *testing.T) {
	a, _ := New(big.NewInt(100), 32, 8, false)
	b, _ := New(big.NewInt(200), 32, 8, false)
	q, ok := new(big.Int).SetString("115792089210356248762697446949407573530086143415290314195533631308867097853951", 10)
	require.True(t, ok)
	m, err := New(q, 32, 8, true)
	require.NoError(t, err)

	res, err := ModMult(a, b, m, 256, 6, fieldModulus())
	require.NoError(t, err)

	require.Zero(t, res.R.Value.Cmp(big.NewInt(20000)), "remainder = %s, want 20000", res.R.Value)
	require.Zero(t, res.Q.Value.Sign(), "quotient = %s, want 0", res.Q.Value)
	for i, c := range res.Carry.Carry {
		require.Zero(t, c.Sign(), "carry[%d] = %s, want 0", i, c)
	}

	check := new(big.Int).Add(new(big.Int).Mul(res.Q.Value, m.Value), res.R.Value)
	require.Zero(t, check.Cmp(res.Z.Value), "q*m+r = %s, want z = %s", check, res.Z.Value)
	require.True(t, res.R.Value.Cmp(m.Value) < 0, "remainder %s not less than modulus %s", res.R.Value, m.Value)
}

func fieldModulus() *big.Int {
	v, _ := new(big.Int).SetString(
		"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)
	return v
}
