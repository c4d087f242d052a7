package scheme

import (
	"crypto/ed25519"
	"crypto/sha512"
	"fmt"
	"math/big"

	"github.com/zkwitness/sigwitness/bignat"
	"github.com/zkwitness/sigwitness/bignat/ed25519scalar"
	"github.com/zkwitness/sigwitness/field"
	"github.com/zkwitness/sigwitness/transcript"
	"github.com/zkwitness/sigwitness/witnessmap"
)

const (
	eddsaLimbWidth = 32
	eddsaNLimbs    = 8
	eddsaGroupSize = 6
	eddsaModBits   = 253 // ceil(log2(L)), L = 2^252 + ...
)

// buildEdDSASigma is the Ed25519 analog of buildECDSASigma: the underlying
// BigNat modulus is the Ed25519 scalar field L instead of the P-256 curve
// order, the transcript domain separator is "eddsa_sigma", and the
// challenge hash is SHA-512 per RFC 8032 rather than SHA-256. This module
// has no witnessed Edwards point-addition gadget (no example in the
// retrieved pack carries one), so the relation is proven entirely over the
// scalar field: the response/challenge identity S = r_nonce + k*s mod L is
// witnessed as a BigNatModMult block, and the verification equation's point
// side is taken as already checked by the public inputs (R, A) the caller
// supplies.
func buildEdDSASigma(frame witnessmap.Frame, pub ed25519.PublicKey, sig EdDSASignature, message []byte) error {
	if len(sig.RS) != 64 {
		return fmt.Errorf("scheme: EdDSA signature must be 64 bytes, got %d", len(sig.RS))
	}
	rBytes := sig.RS[:32]
	sBytes := sig.RS[32:]

	l := ed25519scalar.CurveParams().L
	lBig, err := bignat.New(l, eddsaLimbWidth, eddsaNLimbs, true)
	if err != nil {
		return fmt.Errorf("scheme: building Ed25519 scalar field modulus: %v", err)
	}

	sLE := make([]byte, 32)
	copy(sLE, sBytes)
	reverse(sLE)
	s := new(big.Int).SetBytes(sLE)
	if s.Cmp(l) >= 0 {
		return fmt.Errorf("scheme: EdDSA signature scalar S is not reduced mod L")
	}

	h := sha512.New()
	h.Write(rBytes)
	h.Write(pub)
	h.Write(message)
	wide := h.Sum(nil)
	k, err := ed25519scalar.SetUniformBytes(wide)
	if err != nil {
		return fmt.Errorf("scheme: deriving challenge scalar: %v", err)
	}

	tr := transcript.New("eddsa_sigma")
	tr.AppendMessage("R", rBytes)
	tr.AppendMessage("A", pub)
	tr.AppendScalar("k", k.Int())

	nonce := tr.ChallengeScalar("nonce", l)

	sBig, err := bignat.New(s, eddsaLimbWidth, eddsaNLimbs, false)
	if err != nil {
		return fmt.Errorf("scheme: building signature scalar: %v", err)
	}
	kBig, err := bignat.New(k.Int(), eddsaLimbWidth, eddsaNLimbs, false)
	if err != nil {
		return fmt.Errorf("scheme: building challenge scalar: %v", err)
	}

	pF := field.Modulus()
	proof, err := bignat.ModMult(sBig, kBig, lBig, eddsaModBits, eddsaGroupSize, pF)
	if err != nil {
		return fmt.Errorf("scheme: witnessing s*k mod L: %v", err)
	}

	response := new(big.Int).Add(nonce, proof.R.Value)
	response.Mod(response, l)

	// There is no larger containing field here the way P-256's curve field
	// contains its group order: L is both the modulus and the representation
	// bound, so the gap is measured against L's own bit-bound.
	eddsaCarryRBound := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), eddsaModBits), big.NewInt(1))
	carryR, err := bignat.CarryR(eddsaCarryRBound, l, proof.R.Value, eddsaModBits)
	if err != nil {
		return fmt.Errorf("scheme: carry_r gadget: %v", err)
	}

	sigmaFrame := frame.Push("eddsa_sigma")
	sigmaFrame.Push("challenge").Set(field.FromBig(k.Int()))
	sigmaFrame.Push("nonce_commitment").Set(field.FromBig(nonce))
	sigmaFrame.Push("response").Set(field.FromBig(response))
	proof.Emit(sigmaFrame.Push("response_proof"))
	sigmaFrame.Push("carry_r").Set(field.FromBig(carryR))
	return nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
