// Package scheme orchestrates the bignat/ecp256/transcript primitives into
// one witness-emission pass per signature scheme. Kind is a closed enum;
// Build is the single dispatch point, matching the Design Note that steers
// away from open-ended dynamic dispatch over signature algorithm.
package scheme

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"fmt"

	"github.com/zkwitness/sigwitness/witnessmap"
)

// Kind selects one of the four supported signature-verification drivers.
type Kind int

const (
	RSA2048 Kind = iota
	RSA4096
	ECDSAP256
	ECDSASigma
	EdDSASigma
)

func (k Kind) String() string {
	switch k {
	case RSA2048:
		return "RSA2048"
	case RSA4096:
		return "RSA4096"
	case ECDSAP256:
		return "ECDSAP256"
	case ECDSASigma:
		return "ECDSASigma"
	case EdDSASigma:
		return "EdDSASigma"
	default:
		return "Unknown"
	}
}

// RSASignature is a raw PKCS#1 v1.5 signature.
type RSASignature struct {
	S []byte
}

// ECDSASignature is a decoded (r, s) pair.
type ECDSASignature struct {
	R, S []byte
}

// EdDSASignature is a raw 64-byte Ed25519 signature (R || S).
type EdDSASignature struct {
	RS []byte
}

// Build is the single entry point: given a scheme kind, a verification key,
// a signature, and a message, it emits the complete witness for "I know a
// valid signature" into a fresh witnessmap.Map.
func Build(kind Kind, vk any, sig any, message []byte) (*witnessmap.Map, error) {
	sink := witnessmap.New()
	frame := witnessmap.Root(sink)

	switch kind {
	case RSA2048, RSA4096:
		pub, ok := vk.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("scheme: %s requires an *rsa.PublicKey verification key", kind)
		}
		signature, ok := sig.(RSASignature)
		if !ok {
			return nil, fmt.Errorf("scheme: %s requires an RSASignature", kind)
		}
		nLimbs := 64
		if kind == RSA4096 {
			nLimbs = 128
		}
		if err := buildRSA(frame, pub, signature, message, nLimbs); err != nil {
			return nil, err
		}
	case ECDSAP256:
		pub, ok := vk.(*ecdsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("scheme: %s requires an *ecdsa.PublicKey verification key", kind)
		}
		signature, ok := sig.(ECDSASignature)
		if !ok {
			return nil, fmt.Errorf("scheme: %s requires an ECDSASignature", kind)
		}
		if err := buildECDSAPlain(frame, pub, signature, message); err != nil {
			return nil, err
		}
	case ECDSASigma:
		pub, ok := vk.(*ecdsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("scheme: %s requires an *ecdsa.PublicKey verification key", kind)
		}
		signature, ok := sig.(ECDSASignature)
		if !ok {
			return nil, fmt.Errorf("scheme: %s requires an ECDSASignature", kind)
		}
		if err := buildECDSASigma(frame, pub, signature, message); err != nil {
			return nil, err
		}
	case EdDSASigma:
		pub, ok := vk.(ed25519.PublicKey)
		if !ok {
			return nil, fmt.Errorf("scheme: %s requires an ed25519.PublicKey verification key", kind)
		}
		signature, ok := sig.(EdDSASignature)
		if !ok {
			return nil, fmt.Errorf("scheme: %s requires an EdDSASignature", kind)
		}
		if err := buildEdDSASigma(frame, pub, signature, message); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("scheme: unknown kind %d", int(kind))
	}

	return sink, nil
}
