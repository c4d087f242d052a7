package ecp256

import (
	"math/big"
	"testing"
)

// scalarMultAffine is an independent reference for k*base, using plain
// double-and-add over the affine formulas in point_test.go.
func scalarMultAffine(k *big.Int, base Point, cp Params) Point {
	acc := Point{Infinity: true}
	addend := base
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			if acc.Infinity {
				acc = addend
			} else if acc.Equal(addend) {
				acc = affineDouble(acc, cp)
			} else {
				acc = affineAdd(acc, addend, cp)
			}
		}
		addend = affineDouble(addend, cp)
	}
	return acc
}

func TestScalarMultBitByBitMatchesReference(t *testing.T) {
	cp := CurveParams()
	k := new(big.Int).SetInt64(12345)
	want := scalarMultAffine(k, cp.G, cp)

	got, err := ScalarMultBitByBit(k, cp.G, 256, 32, 8, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Result.X.Cmp(want.X) != 0 || got.Result.Y.Cmp(want.Y) != 0 {
		t.Errorf("ScalarMultBitByBit(%s) = (%s, %s), want (%s, %s)",
			k, got.Result.X, got.Result.Y, want.X, want.Y)
	}
}

func TestScalarMultWindowMatchesReference(t *testing.T) {
	cp := CurveParams()
	k := new(big.Int).SetInt64(987654321)
	want := scalarMultAffine(k, cp.G, cp)

	got, err := ScalarMultWindow(k, cp.G, 256, 6, 32, 8, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Result.X.Cmp(want.X) != 0 || got.Result.Y.Cmp(want.Y) != 0 {
		t.Errorf("ScalarMultWindow(%s) = (%s, %s), want (%s, %s)",
			k, got.Result.X, got.Result.Y, want.X, want.Y)
	}
}

// TestScalarMultCachedWindowMatchesReference checks the cached-window
// algorithm against the scenario in the testable-properties table: W=6,
// nBits=256 (43 window positions), k = 2^128+1.
//
// Every window position after the one that seeds the accumulator folds in
// an add, whether or not its value is zero: the table's index-0 entry is a
// point-at-infinity placeholder that PointAddComplete resolves back to the
// untouched accumulator, so the witness's row count is fixed by nBits and
// W alone, never by k. For 43 window positions that is 42 adds. Doublings
// are always zero, since the whole point of the cached-window table is to
// precompute them offline.
func TestScalarMultCachedWindowMatchesReference(t *testing.T) {
	cp := CurveParams()
	k := new(big.Int).Lsh(big.NewInt(1), 128)
	k.Add(k, big.NewInt(1))
	want := scalarMultAffine(k, cp.G, cp)

	got, err := ScalarMultCachedWindow(k, cp.G, 256, 6, 32, 8, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Result.X.Cmp(want.X) != 0 || got.Result.Y.Cmp(want.Y) != 0 {
		t.Errorf("ScalarMultCachedWindow(2^128+1) = (%s, %s), want (%s, %s)",
			got.Result.X, got.Result.Y, want.X, want.Y)
	}

	doublings := 0
	adds := 0
	for _, row := range got.Rows {
		doublings += len(row.Doubles)
		if row.Add != nil {
			adds++
		}
	}
	if doublings != 0 {
		t.Errorf("ScalarMultCachedWindow emitted %d doublings, want 0", doublings)
	}
	if adds != 42 {
		t.Errorf("ScalarMultCachedWindow emitted %d adds, want 42 (one per window position after the leading one)", adds)
	}
}

func TestScalarMultAlgorithmsAgree(t *testing.T) {
	cp := CurveParams()
	k, _ := new(big.Int).SetString("115792089210356248762697446949407573529996955224135760342422259061068512044368", 10)

	bitByBit, err := ScalarMultBitByBit(k, cp.G, 256, 32, 8, 6)
	if err != nil {
		t.Fatalf("ScalarMultBitByBit: %v", err)
	}
	windowed, err := ScalarMultWindow(k, cp.G, 256, 6, 32, 8, 6)
	if err != nil {
		t.Fatalf("ScalarMultWindow: %v", err)
	}
	cached, err := ScalarMultCachedWindow(k, cp.G, 256, 6, 32, 8, 6)
	if err != nil {
		t.Fatalf("ScalarMultCachedWindow: %v", err)
	}

	if !bitByBit.Result.Equal(windowed.Result) {
		t.Errorf("bit-by-bit and windowed results disagree: (%s,%s) vs (%s,%s)",
			bitByBit.Result.X, bitByBit.Result.Y, windowed.Result.X, windowed.Result.Y)
	}
	if !bitByBit.Result.Equal(cached.Result) {
		t.Errorf("bit-by-bit and cached-window results disagree: (%s,%s) vs (%s,%s)",
			bitByBit.Result.X, bitByBit.Result.Y, cached.Result.X, cached.Result.Y)
	}
}
