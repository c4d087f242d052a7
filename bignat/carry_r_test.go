package bignat

import (
	"math/big"
	"testing"
)

// p256Prime and p256Order are the P-256 field prime and group order, kept
// local to this test rather than importing ecp256 to avoid a cycle.
func p256Prime() *big.Int {
	v, _ := new(big.Int).SetString(
		"115792089210356248762697446949407573530086143415290314195533631308867097853951", 10)
	return v
}

func p256Order() *big.Int {
	v, _ := new(big.Int).SetString(
		"115792089210356248762697446949407573529996955224135760342422259061068512044369", 10)
	return v
}

func TestCarryRMatchesFormula(t *testing.T) {
	p := p256Prime()
	q := p256Order()
	r, _ := new(big.Int).SetString("12345678901234567890123456789012345678901234567890", 10)

	got, err := CarryR(p, q, r, 127)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := new(big.Int).Sub(p, q)
	want.Sub(want, big.NewInt(1))
	want.Sub(want, r)
	if want.Sign() < 0 {
		want.SetInt64(0)
	}

	if got.Cmp(want) != 0 {
		t.Errorf("CarryR = %s, want %s", got, want)
	}
	if got.Sign() < 0 {
		t.Errorf("CarryR returned a negative witness: %s", got)
	}
	if got.BitLen() > 127 {
		t.Errorf("CarryR = %s uses %d bits, want at most 127", got, got.BitLen())
	}
}

// TestCarryRP256GapFitsIn127Bits checks the property the gadget exists to
// serve: because the P-256 field prime and group order are within 2^128 of
// each other, carry_r for any valid r stays within the 127-bit range the
// downstream gadget checks, even for r = 0.
func TestCarryRP256GapFitsIn127Bits(t *testing.T) {
	p := p256Prime()
	q := p256Order()

	got, err := CarryR(p, q, big.NewInt(0), 127)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BitLen() > 127 {
		t.Errorf("CarryR(r=0) = %s uses %d bits, want at most 127", got, got.BitLen())
	}
}

func TestCarryRRejectsROutOfRange(t *testing.T) {
	p := big.NewInt(1000)
	q := big.NewInt(100)
	if _, err := CarryR(p, q, big.NewInt(150), 16); err == nil {
		t.Errorf("expected an error when r >= q")
	}
	if _, err := CarryR(p, q, big.NewInt(-1), 16); err == nil {
		t.Errorf("expected an error when r is negative")
	}
}

func TestCarryRRejectsOverwideResult(t *testing.T) {
	p := big.NewInt(1000)
	q := big.NewInt(10)
	if _, err := CarryR(p, q, big.NewInt(0), 4); err == nil {
		t.Errorf("expected an error when the carry_r witness does not fit in nBits")
	}
}
