package ecp256

import (
	"math/big"
	"testing"
)

// affineDouble and affineAdd are independent, modular-inverse-based
// reference implementations of the P-256 group law, used only to check the
// witness-producing PointDouble/PointAdd against ground truth.
func affineDouble(p Point, cp Params) Point {
	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, cp.A)
	den := new(big.Int).Lsh(p.Y, 1)
	den.ModInverse(den, cp.P)
	m := new(big.Int).Mul(num, den)
	m.Mod(m, cp.P)

	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, new(big.Int).Lsh(p.X, 1))
	x3.Mod(x3, cp.P)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, cp.P)

	return Point{X: x3, Y: y3}
}

func affineAdd(p1, p2 Point, cp Params) Point {
	num := new(big.Int).Sub(p2.Y, p1.Y)
	den := new(big.Int).Sub(p2.X, p1.X)
	den.Mod(den, cp.P)
	den.ModInverse(den, cp.P)
	m := new(big.Int).Mul(num, den)
	m.Mod(m, cp.P)

	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, p1.X)
	x3.Sub(x3, p2.X)
	x3.Mod(x3, cp.P)

	y3 := new(big.Int).Sub(p1.X, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, p1.Y)
	y3.Mod(y3, cp.P)

	return Point{X: x3, Y: y3}
}

func TestPointDoubleOfGMatchesAffineFormula(t *testing.T) {
	cp := CurveParams()
	want := affineDouble(cp.G, cp)

	got, err := PointDouble(cp.G, 32, 8, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ResPoint.X.Cmp(want.X) != 0 || got.ResPoint.Y.Cmp(want.Y) != 0 {
		t.Errorf("PointDouble(G) = (%s, %s), want (%s, %s)",
			got.ResPoint.X, got.ResPoint.Y, want.X, want.Y)
	}
	if !got.ResPoint.IsOnCurve(cp) {
		t.Errorf("PointDouble(G) result is not on curve")
	}
}

func TestPointAddOfGAndDoubleGMatchesAffineFormula(t *testing.T) {
	cp := CurveParams()
	twoG := affineDouble(cp.G, cp)
	want := affineAdd(cp.G, twoG, cp)

	got, err := PointAdd(cp.G, twoG, 32, 8, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ResPoint.X.Cmp(want.X) != 0 || got.ResPoint.Y.Cmp(want.Y) != 0 {
		t.Errorf("PointAdd(G, 2G) = (%s, %s), want (%s, %s)",
			got.ResPoint.X, got.ResPoint.Y, want.X, want.Y)
	}
	if !got.ResPoint.IsOnCurve(cp) {
		t.Errorf("PointAdd(G, 2G) result is not on curve")
	}
}

func TestPointAddRejectsIncompleteCase(t *testing.T) {
	cp := CurveParams()
	neg := cp.G.Neg(cp)
	if _, err := PointAdd(cp.G, neg, 32, 8, 6); err == nil {
		t.Errorf("expected an IncompleteAddHit error adding G to -G, got nil")
	}
	if _, err := PointAdd(cp.G, cp.G, 32, 8, 6); err != nil {
		t.Errorf("PointAdd(G, G) should not hit the incomplete case: %v", err)
	}
}
