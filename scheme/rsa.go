package scheme

import (
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/zkwitness/sigwitness/bignat"
	"github.com/zkwitness/sigwitness/field"
	"github.com/zkwitness/sigwitness/witnessmap"
)

const (
	rsaLimbWidth    = 32
	rsaGroupSize    = 6
	rsaExpSquarings = 16 // e = 65537 = 2^16 + 1
)

// buildRSA emits the 17-block BigNatModMult exponentiation chain computing
// s^65537 mod N (16 squarings and one closing multiply), then checks the
// resulting remainder limb-wise against the PKCS#1 v1.5 DigestInfo encoding
// of SHA-256(message).
func buildRSA(frame witnessmap.Frame, pub *rsa.PublicKey, sig RSASignature, message []byte, nLimbs int) error {
	pF := field.Modulus()
	quotientBits := nLimbs * rsaLimbWidth

	n, err := bignat.New(pub.N, rsaLimbWidth, nLimbs, true)
	if err != nil {
		return fmt.Errorf("scheme: building RSA modulus: %v", err)
	}
	s, err := bignat.New(new(big.Int).SetBytes(sig.S), rsaLimbWidth, nLimbs, false)
	if err != nil {
		return fmt.Errorf("scheme: building RSA signature: %v", err)
	}

	cur := s
	blocks := make([]*bignat.ModMultResult, 0, rsaExpSquarings+1)
	for i := 0; i < rsaExpSquarings; i++ {
		res, err := bignat.ModMult(cur, cur, n, quotientBits, rsaGroupSize, pF)
		if err != nil {
			return fmt.Errorf("scheme: RSA squaring %d: %v", i, err)
		}
		blocks = append(blocks, res)
		cur = res.R
	}
	final, err := bignat.ModMult(cur, s, n, quotientBits, rsaGroupSize, pF)
	if err != nil {
		return fmt.Errorf("scheme: RSA closing multiply: %v", err)
	}
	blocks = append(blocks, final)

	digest := sha256.Sum256(message)
	encoded := pkcs1v15Encode(digest[:], nLimbs*rsaLimbWidth/8)
	expected, err := bignat.New(new(big.Int).SetBytes(encoded), rsaLimbWidth, nLimbs, false)
	if err != nil {
		return fmt.Errorf("scheme: building expected PKCS#1 v1.5 encoding: %v", err)
	}

	if final.R.Value.Cmp(expected.Value) != 0 {
		return fmt.Errorf("scheme: RSA signature does not verify against message")
	}

	rsaFrame := frame.Push("rsa")
	blocksFrame := rsaFrame.Push("blocks")
	for i, b := range blocks {
		b.Emit(blocksFrame.Index(i))
	}
	expected.Emit(rsaFrame.Push("expected_digest_info"))
	return nil
}
