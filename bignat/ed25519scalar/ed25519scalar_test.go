package ed25519scalar

import (
	"math/big"
	"testing"
)

func TestNewScalarReducesModL(t *testing.T) {
	l := CurveParams().L
	aboveL := new(big.Int).Add(l, big.NewInt(5))
	s := NewScalar(aboveL)
	if s.Int().Cmp(big.NewInt(5)) != 0 {
		t.Errorf("NewScalar(L+5) = %s, want 5", s.Int())
	}
}

func TestAddSubtractRoundTrip(t *testing.T) {
	a := NewScalar(big.NewInt(17))
	b := NewScalar(big.NewInt(42))
	sum := a.Add(b)
	back := sum.Subtract(b)
	if back.Int().Cmp(a.Int()) != 0 {
		t.Errorf("(a+b)-b = %s, want %s", back.Int(), a.Int())
	}
}

func TestNegateIsAdditiveInverse(t *testing.T) {
	a := NewScalar(big.NewInt(123))
	sum := a.Add(a.Negate())
	if sum.Int().Sign() != 0 {
		t.Errorf("a + (-a) = %s, want 0", sum.Int())
	}
}

func TestMultiplyMatchesBigIntModL(t *testing.T) {
	l := CurveParams().L
	x := big.NewInt(999999937)
	y := big.NewInt(123456789)
	want := new(big.Int).Mod(new(big.Int).Mul(x, y), l)

	got := NewScalar(x).Multiply(NewScalar(y))
	if got.Int().Cmp(want) != 0 {
		t.Errorf("x*y mod L = %s, want %s", got.Int(), want)
	}
}

func TestSetUniformBytesRejectsWrongLength(t *testing.T) {
	if _, err := SetUniformBytes(make([]byte, 32)); err == nil {
		t.Errorf("expected an error for a non-64-byte input")
	}
}

func TestSetUniformBytesIsBelowL(t *testing.T) {
	wide := make([]byte, 64)
	for i := range wide {
		wide[i] = 0xff
	}
	s, err := SetUniformBytes(wide)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Int().Cmp(CurveParams().L) >= 0 {
		t.Errorf("SetUniformBytes result %s is not reduced below L", s.Int())
	}
}
