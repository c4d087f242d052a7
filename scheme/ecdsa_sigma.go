package scheme

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/zkwitness/sigwitness/bignat"
	"github.com/zkwitness/sigwitness/bignat/ecp256"
	"github.com/zkwitness/sigwitness/field"
	"github.com/zkwitness/sigwitness/transcript"
	"github.com/zkwitness/sigwitness/witnessmap"
)

// buildECDSASigma proves knowledge of a, b, s^-1 (the same three exponents
// the plain driver reduces the ECDSA check to) via a 3-round sigma
// protocol instead of revealing them: the prover commits to fresh nonces,
// derives a Fiat-Shamir challenge over those commitments, and answers with
// one linear response per exponent. Only the response/challenge relation is
// witnessed here (three a*s=q*m+h proofs); the nonces and secret exponents
// themselves never reach the witness sink.
func buildECDSASigma(frame witnessmap.Frame, pub *ecdsa.PublicKey, sig ECDSASignature, message []byte) error {
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
	h := new(big.Int).Mod(new(big.Int).SetBytes(digest[:]), cp.Q)
	a := new(big.Int).Mod(new(big.Int).Mul(h, sInv), cp.Q)
	b := new(big.Int).Mod(new(big.Int).Mul(r, sInv), cp.Q)

	secrets := []*big.Int{a, b, sInv}

	tr := transcript.New("ECDSA_Sigma_Prior")
	tr.AppendPoint("vk", pub.X, pub.Y)
	tr.AppendScalar("r", r)

	tr2 := transcript.New("ecdsa_sigma")
	nonces := make([]*big.Int, len(secrets))
	commitments := make([]ecp256.Point, len(secrets))
	for i, x := range secrets {
		k := tr.ChallengeScalar(fmt.Sprintf("nonce_%d", i), cp.Q)
		nonces[i] = k
		commit, err := ecp256.ScalarMultCachedWindow(k, cp.G, ecdsaScalarBits, ecdsaWindowBits,
			ecdsaLimbWidth, ecdsaNLimbs, ecdsaGroupSize)
		if err != nil {
			return fmt.Errorf("scheme: committing nonce %d: %v", i, err)
		}
		commitments[i] = commit.Result
		tr2.AppendPoint(fmt.Sprintf("commitment_%d", i), commit.Result.X, commit.Result.Y)
		_ = x
	}

	c := tr2.ChallengeScalar("challenge", cp.Q)

	pF := field.Modulus()
	cBig, err := bignat.New(c, ecdsaLimbWidth, ecdsaNLimbs, false)
	if err != nil {
		return fmt.Errorf("scheme: building challenge: %v", err)
	}

	responseProofs := make([]*bignat.ModMultResult, len(secrets))
	responses := make([]*big.Int, len(secrets))
	for i, x := range secrets {
		xBig, err := bignat.New(x, ecdsaLimbWidth, ecdsaNLimbs, false)
		if err != nil {
			return fmt.Errorf("scheme: building exponent %d: %v", i, err)
		}
		proof, err := bignat.ModMult(cBig, xBig, q, ecdsaScalarBits, ecdsaGroupSize, pF)
		if err != nil {
			return fmt.Errorf("scheme: witnessing c*x_%d mod q: %v", i, err)
		}
		responseProofs[i] = proof
		z := new(big.Int).Add(nonces[i], proof.R.Value)
		z.Mod(z, cp.Q)
		responses[i] = z
	}

	// K^v: a cached-window scalar-mult of the first commitment by the
	// third response, standing in for the "opened exponent" scalar-mul
	// step of the relation proof.
	kv, err := ecp256.ScalarMultCachedWindow(responses[2], commitments[0], ecdsaScalarBits,
		ecdsaWindowBits, ecdsaLimbWidth, ecdsaNLimbs, ecdsaGroupSize)
	if err != nil {
		return fmt.Errorf("scheme: computing K^v: %v", err)
	}

	// Partial add K^-1*v + C = R, closing the relation against the public
	// key as the second commitment point.
	negK0, err := ecp256.ScalarMultCachedWindow(responses[2], commitments[0].Neg(cp), ecdsaScalarBits,
		ecdsaWindowBits, ecdsaLimbWidth, ecdsaNLimbs, ecdsaGroupSize)
	if err != nil {
		return fmt.Errorf("scheme: computing K^-1*v: %v", err)
	}
	closing, err := ecp256.PointAdd(negK0.Result, commitments[1], ecdsaLimbWidth, ecdsaNLimbs, ecdsaGroupSize)
	if err != nil {
		return fmt.Errorf("scheme: closing partial add: %v", err)
	}
	carryR, err := bignat.CarryR(cp.P, cp.Q, r, carryRBits)
	if err != nil {
		return fmt.Errorf("scheme: carry_r gadget: %v", err)
	}

	sigmaFrame := frame.Push("ecdsa_sigma")
	sigmaFrame.Push("challenge").Set(field.FromBig(c))
	commitFrame := sigmaFrame.Push("commitments")
	for i, pt := range commitments {
		pt.Emit(commitFrame.Index(i))
	}
	responsesFrame := sigmaFrame.Push("responses")
	for i, z := range responses {
		responsesFrame.Index(i).Set(field.FromBig(z))
	}
	proofsFrame := sigmaFrame.Push("response_proofs")
	for i, p := range responseProofs {
		p.Emit(proofsFrame.Index(i))
	}
	kv.Emit(sigmaFrame.Push("k_pow_v"))
	closing.Emit(sigmaFrame.Push("closing"))
	sigmaFrame.Push("carry_r").Set(field.FromBig(carryR))
	return nil
}
