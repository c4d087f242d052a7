package algoplonk

import (
	"fmt"

	crypto_mimc "github.com/consensys/gnark-crypto/ecc/bls12-381/fr/mimc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"

	"github.com/zkwitness/sigwitness/witnessmap"
)

// WitnessCommitmentCircuit proves knowledge of the private field elements
// behind a public MiMC commitment, without revealing them. Values holds one
// slot per witness-map entry, in the map's insertion order; Commitment is
// the sequential MiMC hash of those slots, the same hash-then-assert
// pattern examples/merkle uses to fold a Merkle path into a single root.
type WitnessCommitmentCircuit struct {
	Values     []frontend.Variable
	Commitment frontend.Variable `gnark:",public"`
}

func (c *WitnessCommitmentCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return fmt.Errorf("error instantiating in-circuit mimc: %v", err)
	}
	for _, v := range c.Values {
		h.Write(v)
	}
	api.AssertIsEqual(h.Sum(), c.Commitment)
	return nil
}

// NewWitnessCommitmentCircuit returns an unassigned circuit shaped for n
// witness-map entries, for passing to Compile. n must match the entry
// count of any witnessmap.Map later passed to AssignmentOf against the
// resulting CompiledCircuit.
func NewWitnessCommitmentCircuit(n int) *WitnessCommitmentCircuit {
	return &WitnessCommitmentCircuit{Values: make([]frontend.Variable, n)}
}

// AssignmentOf builds a WitnessCommitmentCircuit assignment from a witness
// map: Values holds the map's field elements in Keys() order, and
// Commitment is their off-circuit MiMC hash, computed the same way
// examples/merkle's mimcHash helper hashes a leaf, so the in-circuit and
// off-circuit digests agree bit for bit.
func AssignmentOf(m *witnessmap.Map) (*WitnessCommitmentCircuit, error) {
	keys := m.Keys()
	values := make([]frontend.Variable, len(keys))
	h := crypto_mimc.NewMiMC()
	for i, k := range keys {
		v, ok := m.Get(k)
		if !ok {
			return nil, fmt.Errorf("witness map key %q listed by Keys but missing from Get", k)
		}
		b := v.Bytes()
		if _, err := h.Write(b[:]); err != nil {
			return nil, fmt.Errorf("hashing witness entry %q: %v", k, err)
		}
		values[i] = b[:]
	}
	return &WitnessCommitmentCircuit{Values: values, Commitment: h.Sum(nil)}, nil
}
