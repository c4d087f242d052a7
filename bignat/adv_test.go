package bignat

import (
	"math/big"
	"testing"
)

func TestModMultAdvancedChunksRecomposeToBase(t *testing.T) {
	a, _ := New(big.NewInt(100), 32, 8, false)
	b, _ := New(big.NewInt(200), 32, 8, false)
	q, _ := new(big.Int).SetString(
		"115792089210356248762697446949407573530086143415290314195533631308867097853951", 10)
	m, err := New(q, 32, 8, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	adv, err := ModMultAdvanced(a, b, m, 256, 6, 8, fieldModulus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, limb := range adv.R.Limbs {
		got := recompose(adv.RemainderChunks[i], 8)
		if got.Cmp(limb) != 0 {
			t.Errorf("remainder limb %d: chunks recompose to %s, want %s", i, got, limb)
		}
	}
	for i, limb := range adv.Q.Limbs {
		got := recompose(adv.QuotientChunks[i], 8)
		if got.Cmp(limb) != 0 {
			t.Errorf("quotient limb %d: chunks recompose to %s, want %s", i, got, limb)
		}
	}
}

func TestChunkLimbsLastLimbShorterWidth(t *testing.T) {
	n, err := New(big.NewInt(5), 32, 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks, err := chunkLimbs(n, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 limb's worth of chunks, got %d", len(chunks))
	}
	got := recompose(chunks[0], 8)
	if got.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("chunked limb recomposes to %s, want 5", got)
	}
}
