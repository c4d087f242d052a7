// package utils contains functions and types to aid compilation and serialization /
// deserialization
package utils

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/plonk"
	ap "github.com/zkwitness/sigwitness/internal/algoplonk"
)

// ShouldRecompile returns true if any of the files in sourcePaths is more recent
// than targetPath or if it encounters any error
func ShouldRecompile(targetPath string, sourcePaths ...string) bool {
	targetFile, err := os.Stat(targetPath)
	if err != nil {
		return true
	}
	targetModTime := targetFile.ModTime()

	for _, sourcePath := range sourcePaths {
		sourceFile, err := os.Stat(sourcePath)
		if err != nil {
			return true
		}
		sourceModTime := sourceFile.ModTime()
		if sourceModTime.After(targetModTime) {
			return true
		}
	}
	return false
}

// CompiledCircuitBytes contains the compiled circuit pre-serialized to bytes
type CompiledCircuitBytes struct {
	Ccs   []byte
	Pk    []byte
	Vk    []byte
	Curve ecc.ID
}

// SerializeCompiledCircuit serializes a compiled circuit to file
func SerializeCompiledCircuit(cc *ap.CompiledCircuit, filepath string) error {
	var ccsB, pkb, vkb bytes.Buffer
	cc.Ccs.WriteTo(&ccsB)
	cc.Pk.WriteTo(&pkb)
	cc.Vk.WriteTo(&vkb)

	c := CompiledCircuitBytes{
		Ccs:   ccsB.Bytes(),
		Pk:    pkb.Bytes(),
		Vk:    vkb.Bytes(),
		Curve: cc.Curve,
	}
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("error encoding compiled circuit: %v", err)
	}

	err := os.WriteFile(filepath, buf.Bytes(), 0644)
	if err != nil {
		return fmt.Errorf("error writing compiled circuit to file: %v", err)
	}

	return nil
}

// DeserializeCompiledCircuit deserializes a compiled circuit from file
func DeserializeCompiledCircuit(filepath string) (*ap.CompiledCircuit, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading compiled circuit file: %v", err)
	}

	var c CompiledCircuitBytes
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decoding compiled circuit: %v", err)
	}

	cc := &ap.CompiledCircuit{
		Ccs:   plonk.NewCS(c.Curve),
		Pk:    plonk.NewProvingKey(c.Curve),
		Vk:    plonk.NewVerifyingKey(c.Curve),
		Curve: c.Curve,
	}
	ccsReader := bytes.NewReader(c.Ccs)
	pkReader := bytes.NewReader(c.Pk)
	vkReader := bytes.NewReader(c.Vk)

	if _, err := cc.Ccs.ReadFrom(ccsReader); err != nil {
		return nil, fmt.Errorf("error reading CCS data: %v", err)
	}
	if _, err := cc.Pk.ReadFrom(pkReader); err != nil {
		return nil, fmt.Errorf("error reading PK data: %v", err)
	}
	if _, err := cc.Vk.ReadFrom(vkReader); err != nil {
		return nil, fmt.Errorf("error reading VK data: %v", err)
	}

	return cc, nil
}

// Chunk32 splits a proof or public-input binary blob into 32-byte words,
// the granularity every field-element-oriented downstream verifier expects.
// It panics if the input slice is not 32-byte aligned.
func Chunk32(data []byte) [][]byte {
	if len(data)%32 != 0 {
		panic("data must be 32-byte aligned")
	}
	var out [][]byte
	for i := 0; i < len(data); i += 32 {
		out = append(out, data[i:i+32])
	}
	return out
}
