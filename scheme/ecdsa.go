package scheme

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/zkwitness/sigwitness/bignat"
	"github.com/zkwitness/sigwitness/bignat/ecp256"
	"github.com/zkwitness/sigwitness/field"
	"github.com/zkwitness/sigwitness/witnessmap"
)

const (
	ecdsaLimbWidth  = 32
	ecdsaNLimbs     = 8 // only w=32, n=8 is exercised for P-256
	ecdsaGroupSize  = 6
	ecdsaWindowBits = 6
	ecdsaScalarBits = 256
	carryRBits      = 127 // width of the gap between the P-256 field prime and group order
)

// buildECDSAPlain emits a = H*s^-1 mod q, b = r*s^-1 mod q (two BigNatModMult
// blocks), the scalar-mult/add witness for a*G + b*VK, and the carry_r
// gadget proving the resulting point's x-coordinate, as an integer, is a
// value strictly below q before it is compared against r.
func buildECDSAPlain(frame witnessmap.Frame, pub *ecdsa.PublicKey, sig ECDSASignature, message []byte) error {
	cp := ecp256.CurveParams()
	q, err := bignat.New(cp.Q, ecdsaLimbWidth, ecdsaNLimbs, true)
	if err != nil {
		return fmt.Errorf("scheme: building curve order: %v", err)
	}

	r := new(big.Int).SetBytes(sig.R)
	s := new(big.Int).SetBytes(sig.S)
	if s.Sign() == 0 {
		return fmt.Errorf("scheme: ECDSA signature has zero s")
	}
	sInv := new(big.Int).ModInverse(s, cp.Q)
	if sInv == nil {
		return fmt.Errorf("scheme: s is not invertible mod q")
	}

	digest := sha256.Sum256(message)
	h := new(big.Int).SetBytes(digest[:])
	h.Mod(h, cp.Q)

	hBig, err := bignat.New(h, ecdsaLimbWidth, ecdsaNLimbs, false)
	if err != nil {
		return fmt.Errorf("scheme: building message hash: %v", err)
	}
	rBig, err := bignat.New(r, ecdsaLimbWidth, ecdsaNLimbs, false)
	if err != nil {
		return fmt.Errorf("scheme: building signature r: %v", err)
	}
	sInvBig, err := bignat.New(sInv, ecdsaLimbWidth, ecdsaNLimbs, false)
	if err != nil {
		return fmt.Errorf("scheme: building s^-1: %v", err)
	}

	pF := field.Modulus()
	aMod, err := bignat.ModMult(hBig, sInvBig, q, ecdsaScalarBits, ecdsaGroupSize, pF)
	if err != nil {
		return fmt.Errorf("scheme: computing a = H*s^-1 mod q: %v", err)
	}
	bMod, err := bignat.ModMult(rBig, sInvBig, q, ecdsaScalarBits, ecdsaGroupSize, pF)
	if err != nil {
		return fmt.Errorf("scheme: computing b = r*s^-1 mod q: %v", err)
	}
	a := aMod.R.Value
	b := bMod.R.Value

	aG, err := ecp256.ScalarMultCachedWindow(a, cp.G, ecdsaScalarBits, ecdsaWindowBits,
		ecdsaLimbWidth, ecdsaNLimbs, ecdsaGroupSize)
	if err != nil {
		return fmt.Errorf("scheme: computing a*G: %v", err)
	}
	vk := ecp256.Point{X: pub.X, Y: pub.Y}
	bVK, err := ecp256.ScalarMultCachedWindow(b, vk, ecdsaScalarBits, ecdsaWindowBits,
		ecdsaLimbWidth, ecdsaNLimbs, ecdsaGroupSize)
	if err != nil {
		return fmt.Errorf("scheme: computing b*VK: %v", err)
	}
	sum, err := ecp256.PointAdd(aG.Result, bVK.Result, ecdsaLimbWidth, ecdsaNLimbs, ecdsaGroupSize)
	if err != nil {
		return fmt.Errorf("scheme: computing a*G + b*VK: %v", err)
	}

	if sum.ResPoint.X.Cmp(r) != 0 {
		return fmt.Errorf("scheme: ECDSA signature does not verify against message")
	}
	carryR, err := bignat.CarryR(cp.P, cp.Q, r, carryRBits)
	if err != nil {
		return fmt.Errorf("scheme: carry_r gadget: %v", err)
	}

	ecdsaFrame := frame.Push("ecdsa_plain")
	aMod.Emit(ecdsaFrame.Push("a"))
	bMod.Emit(ecdsaFrame.Push("b"))
	aG.Emit(ecdsaFrame.Push("a_times_g"))
	bVK.Emit(ecdsaFrame.Push("b_times_vk"))
	sum.Emit(ecdsaFrame.Push("sum"))
	ecdsaFrame.Push("carry_r").Set(field.FromBig(carryR))
	return nil
}
