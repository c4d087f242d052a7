package field

import (
	"math/big"
	"testing"
)

func TestFromBigToBigRoundTrip(t *testing.T) {
	v := big.NewInt(123456789)
	e := FromBig(v)
	got := ToBig(e)
	if got.Cmp(v) != 0 {
		t.Errorf("ToBig(FromBig(v)) = %s, want %s", got, v)
	}
}

func TestFromBigReducesModulus(t *testing.T) {
	above := new(big.Int).Add(Modulus(), big.NewInt(7))
	e := FromBig(above)
	got := ToBig(e)
	if got.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("FromBig(p_F+7) = %s, want 7", got)
	}
}

func TestFromBigNegativeWrapsToCanonicalRepresentative(t *testing.T) {
	e := FromBig(big.NewInt(-1))
	got := ToBig(e)
	want := new(big.Int).Sub(Modulus(), big.NewInt(1))
	if got.Cmp(want) != 0 {
		t.Errorf("FromBig(-1) = %s, want p_F-1 = %s", got, want)
	}
}
