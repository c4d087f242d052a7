package bignat

import "math/big"

// CarryR is the allocation gadget used wherever a witnessed remainder r
// must be proven strictly less than a modulus q that is itself represented
// in a field (or a larger modulus) bounded above by p: it returns
// t = max(0, (p - q - 1) - r). It rejects r outside [0, q) and a t wider
// than nBits bits. The caller range-checks t over nBits bits alongside r's own range check.
// For P-256 callers p is the curve's base-field prime and nBits is 127,
// matching the gap between the field prime and the (very close) group
// order; callers without a separate containing field pass their modulus's
// own representable bound as p.
func CarryR(p, q, r *big.Int, nBits int) (*big.Int, error) {
	if r.Sign() < 0 || r.Cmp(q) >= 0 {
		return nil, newError(InternalInconsistency, "CarryR", nil)
	}
	t := new(big.Int).Sub(p, q)
	t.Sub(t, big.NewInt(1))
	t.Sub(t, r)
	if t.Sign() < 0 {
		t.SetInt64(0)
	}
	if t.BitLen() > nBits {
		return nil, newError(InternalInconsistency, "CarryR", nil)
	}
	return t, nil
}
