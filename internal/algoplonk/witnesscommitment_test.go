package algoplonk

import (
	"testing"

	crypto_mimc "github.com/consensys/gnark-crypto/ecc/bls12-381/fr/mimc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/zkwitness/sigwitness/witnessmap"
)

func elementOf(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func TestNewWitnessCommitmentCircuitShapesValuesSlice(t *testing.T) {
	c := NewWitnessCommitmentCircuit(5)
	if len(c.Values) != 5 {
		t.Errorf("len(Values) = %d, want 5", len(c.Values))
	}
	if c.Commitment != nil {
		t.Errorf("Commitment = %v, want nil (unassigned)", c.Commitment)
	}
}

func TestAssignmentOfMatchesKeysOrder(t *testing.T) {
	m := witnessmap.New()
	m.Set("b", elementOf(2))
	m.Set("a", elementOf(1))
	m.Set("c", elementOf(3))

	assignment, err := AssignmentOf(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignment.Values) != 3 {
		t.Fatalf("len(Values) = %d, want 3", len(assignment.Values))
	}

	want := []int64{2, 1, 3}
	for i, w := range want {
		e := elementOf(w)
		b := e.Bytes()
		got, ok := assignment.Values[i].([]byte)
		if !ok {
			t.Fatalf("Values[%d] is %T, want []byte", i, assignment.Values[i])
		}
		if string(got) != string(b[:]) {
			t.Errorf("Values[%d] = %x, want %x (witness map's Keys() order: b, a, c)", i, got, b)
		}
	}
}

func TestAssignmentOfCommitmentMatchesOffCircuitMiMC(t *testing.T) {
	m := witnessmap.New()
	m.Set("only", elementOf(42))

	assignment, err := AssignmentOf(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := elementOf(42)
	b := e.Bytes()
	h := crypto_mimc.NewMiMC()
	h.Write(b[:])
	want := h.Sum(nil)

	got, ok := assignment.Commitment.([]byte)
	if !ok {
		t.Fatalf("Commitment is %T, want []byte", assignment.Commitment)
	}
	if string(got) != string(want) {
		t.Errorf("Commitment = %x, want %x", got, want)
	}
}

func TestAssignmentOfEmptyMapProducesEmptyHash(t *testing.T) {
	m := witnessmap.New()
	assignment, err := AssignmentOf(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignment.Values) != 0 {
		t.Errorf("len(Values) = %d, want 0", len(assignment.Values))
	}
	h := crypto_mimc.NewMiMC()
	want := h.Sum(nil)
	got, ok := assignment.Commitment.([]byte)
	if !ok {
		t.Fatalf("Commitment is %T, want []byte", assignment.Commitment)
	}
	if string(got) != string(want) {
		t.Errorf("Commitment = %x, want %x (mimc of no writes)", got, want)
	}
}
