package transcript

import (
	"math/big"
	"testing"
)

func TestChallengeScalarDeterministic(t *testing.T) {
	m := big.NewInt(1000000007)

	t1 := New("ecdsa_sigma")
	t1.AppendPoint("commitment", big.NewInt(1), big.NewInt(2))
	c1 := t1.ChallengeScalar("challenge", m)

	t2 := New("ecdsa_sigma")
	t2.AppendPoint("commitment", big.NewInt(1), big.NewInt(2))
	c2 := t2.ChallengeScalar("challenge", m)

	if c1.Cmp(c2) != 0 {
		t.Errorf("same transcript of calls produced different challenges: %s vs %s", c1, c2)
	}
	if c1.Sign() < 0 || c1.Cmp(m) >= 0 {
		t.Errorf("challenge %s not reduced mod %s", c1, m)
	}
}

func TestChallengeScalarDivergesOnDifferentMessage(t *testing.T) {
	m := big.NewInt(1000000007)

	t1 := New("eddsa_sigma")
	t1.AppendScalar("nonce", big.NewInt(42))
	c1 := t1.ChallengeScalar("challenge", m)

	t2 := New("eddsa_sigma")
	t2.AppendScalar("nonce", big.NewInt(43))
	c2 := t2.ChallengeScalar("challenge", m)

	if c1.Cmp(c2) == 0 {
		t.Errorf("different appended messages produced the same challenge")
	}
}

func TestChallengeScalarAdvancesState(t *testing.T) {
	m := big.NewInt(1000000007)
	tr := New("GK_Membership_Proof")
	c1 := tr.ChallengeScalar("challenge_tau", m)
	c2 := tr.ChallengeScalar("challenge_tau", m)
	if c1.Cmp(c2) == 0 {
		t.Errorf("successive challenges with the same label collided")
	}
}
