// Command sigwitness reads a verification key, a signature, and a message
// from disk, builds the witness for "I know a valid signature" via the
// scheme package, and writes the resulting witness map (and, optionally, a
// Zokrates constants file, and a PLONK proof committing to the witness map)
// to disk.
package main

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc"

	"github.com/zkwitness/sigwitness/internal/algoplonk"
	"github.com/zkwitness/sigwitness/internal/algoplonk/setup"
	"github.com/zkwitness/sigwitness/scheme"
	"github.com/zkwitness/sigwitness/witnessmap"
)

func main() {
	schemeName := flag.String("scheme", "", "signature scheme: rsa2048, rsa4096, ecdsa256, ecdsa-sigma, eddsa-sigma")
	vkPath := flag.String("vk", "", "path to the PEM-encoded verification key (raw 32 bytes for eddsa-sigma)")
	sigPath := flag.String("sig", "", "path to the raw signature bytes")
	msgPath := flag.String("msg", "", "path to the signed message")
	outPath := flag.String("out", "", "path to write the gob-encoded witness map")
	zokPath := flag.String("zok", "", "optional path to append Zokrates constant declarations")
	plonkProofPath := flag.String("plonk-proof", "", "optional path to write a PLONK proof committing to the witness map")
	plonkPublicInputsPath := flag.String("plonk-public-inputs", "", "path to write the PLONK proof's public inputs (required with -plonk-proof)")
	flag.Parse()

	kind, err := parseKind(*schemeName)
	if err != nil {
		log.Fatalf("sigwitness: %v", err)
	}

	message, err := os.ReadFile(*msgPath)
	if err != nil {
		log.Fatalf("sigwitness: reading message: %v", err)
	}
	sigBytes, err := os.ReadFile(*sigPath)
	if err != nil {
		log.Fatalf("sigwitness: reading signature: %v", err)
	}

	vk, sig, err := loadVKAndSignature(kind, *vkPath, sigBytes)
	if err != nil {
		log.Fatalf("sigwitness: %v", err)
	}

	fmt.Printf("Building witness for %s\n", kind)
	witness, err := scheme.Build(kind, vk, sig, message)
	if err != nil {
		log.Fatalf("sigwitness: building witness: %v", err)
	}
	fmt.Printf("Witness has %d entries\n", witness.Len())

	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("sigwitness: creating %s: %v", *outPath, err)
		}
		defer f.Close()
		if _, err := witness.WriteTo(f); err != nil {
			log.Fatalf("sigwitness: writing witness map: %v", err)
		}
		fmt.Printf("Wrote witness map to %s\n", *outPath)
	}

	if *zokPath != "" {
		if err := writeZokratesConstants(*zokPath, witness); err != nil {
			log.Fatalf("sigwitness: %v", err)
		}
		fmt.Printf("Wrote Zokrates constants to %s\n", *zokPath)
	}

	if *plonkProofPath != "" {
		if *plonkPublicInputsPath == "" {
			log.Fatalf("sigwitness: -plonk-public-inputs is required with -plonk-proof")
		}
		if err := provePlonkCommitment(witness, *plonkProofPath, *plonkPublicInputsPath); err != nil {
			log.Fatalf("sigwitness: %v", err)
		}
		fmt.Printf("Wrote PLONK commitment proof to %s and public inputs to %s\n",
			*plonkProofPath, *plonkPublicInputsPath)
	}
}

// provePlonkCommitment compiles a WitnessCommitmentCircuit sized to witness's
// entry count, proves knowledge of witness's field elements against their
// MiMC commitment, and exports the proof and public inputs for a downstream
// verifier. It uses a TestOnly KZG setup: no trusted-ceremony parameters for
// BLS12-381 are bundled with this build.
func provePlonkCommitment(witness *witnessmap.Map, proofPath, publicInputsPath string) error {
	circuit := algoplonk.NewWitnessCommitmentCircuit(witness.Len())
	compiled, err := algoplonk.Compile(circuit, ecc.BLS12_381, setup.TestOnly)
	if err != nil {
		return fmt.Errorf("compiling witness commitment circuit: %v", err)
	}

	assignment, err := algoplonk.AssignmentOf(witness)
	if err != nil {
		return fmt.Errorf("building witness commitment assignment: %v", err)
	}

	verifiedProof, err := compiled.Verify(assignment)
	if err != nil {
		return fmt.Errorf("proving witness commitment: %v", err)
	}

	return verifiedProof.ExportProofAndPublicInputs(proofPath, publicInputsPath)
}

func parseKind(name string) (scheme.Kind, error) {
	switch name {
	case "rsa2048":
		return scheme.RSA2048, nil
	case "rsa4096":
		return scheme.RSA4096, nil
	case "ecdsa256":
		return scheme.ECDSAP256, nil
	case "ecdsa-sigma":
		return scheme.ECDSASigma, nil
	case "eddsa-sigma":
		return scheme.EdDSASigma, nil
	default:
		return 0, fmt.Errorf("unknown -scheme %q", name)
	}
}

// derSignature is the ASN.1 DER encoding of an ECDSA (r, s) pair.
type derSignature struct {
	R, S *big.Int
}

func loadVKAndSignature(kind scheme.Kind, vkPath string, sigBytes []byte) (vk any, sig any, err error) {
	switch kind {
	case scheme.RSA2048, scheme.RSA4096:
		pub, err := readRSAPublicKey(vkPath)
		if err != nil {
			return nil, nil, err
		}
		return pub, scheme.RSASignature{S: sigBytes}, nil

	case scheme.ECDSAP256, scheme.ECDSASigma:
		pub, err := readECDSAPublicKey(vkPath)
		if err != nil {
			return nil, nil, err
		}
		var parsed derSignature
		if _, err := asn1.Unmarshal(sigBytes, &parsed); err != nil {
			return nil, nil, fmt.Errorf("decoding DER ECDSA signature: %v", err)
		}
		return pub, scheme.ECDSASignature{R: parsed.R.Bytes(), S: parsed.S.Bytes()}, nil

	case scheme.EdDSASigma:
		raw, err := os.ReadFile(vkPath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading Ed25519 public key: %v", err)
		}
		if len(raw) != ed25519.PublicKeySize {
			return nil, nil, fmt.Errorf("Ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
		}
		return ed25519.PublicKey(raw), scheme.EdDSASignature{RS: sigBytes}, nil

	default:
		return nil, nil, fmt.Errorf("unhandled scheme %s", kind)
	}
}

func readRSAPublicKey(path string) (*rsa.PublicKey, error) {
	key, err := readPKIXPublicKey(path)
	if err != nil {
		return nil, err
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%s does not contain an RSA public key", path)
	}
	return pub, nil
}

func readECDSAPublicKey(path string) (*ecdsa.PublicKey, error) {
	key, err := readPKIXPublicKey(path)
	if err != nil {
		return nil, err
	}
	pub, ok := key.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%s does not contain an ECDSA public key", path)
	}
	return pub, nil
}

func readPKIXPublicKey(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("%s is not PEM-encoded", path)
	}
	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parsing public key in %s: %v", path, err)
	}
	return key, nil
}

func writeZokratesConstants(path string, witness *witnessmap.Map) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %v", path, err)
	}
	defer f.Close()

	for _, key := range witness.Keys() {
		value, ok := witness.Get(key)
		if !ok {
			continue
		}
		line := fmt.Sprintf("const field %s = %s;", sanitizeZokratesName(key), value.String())
		if _, err := fmt.Fprintln(f, line); err != nil {
			return fmt.Errorf("writing %s: %v", path, err)
		}
	}
	return nil
}

func sanitizeZokratesName(key string) string {
	out := make([]byte, len(key))
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			out[i] = '_'
		} else {
			out[i] = key[i]
		}
	}
	return string(out)
}
