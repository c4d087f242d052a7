package setup

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
)

// addCircuit is the smallest circuit that produces at least one constraint,
// enough to exercise Run's SRS sizing against a real constraint.ConstraintSystem.
type addCircuit struct {
	X, Y frontend.Variable
	Sum  frontend.Variable `gnark:",public"`
}

func (c *addCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Add(c.X, c.Y), c.Sum)
	return nil
}

func TestRunTestOnlyBN254(t *testing.T) {
	ccs, err := scs.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &addCircuit{})
	if err != nil {
		t.Fatalf("compiling circuit: %v", err)
	}
	pk, vk, err := Run(ccs, ecc.BN254, TestOnly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pk == nil || vk == nil {
		t.Fatalf("expected non-nil proving and verifying keys")
	}
}

func TestRunTestOnlyBLS12381(t *testing.T) {
	ccs, err := scs.Compile(ecc.BLS12_381.ScalarField(), scs.NewBuilder, &addCircuit{})
	if err != nil {
		t.Fatalf("compiling circuit: %v", err)
	}
	pk, vk, err := Run(ccs, ecc.BLS12_381, TestOnly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pk == nil || vk == nil {
		t.Fatalf("expected non-nil proving and verifying keys")
	}
}

// TestRunTrustedUnavailable documents that neither curve ships trusted
// ceremony parameters in this build: the BLS12-381 ceremony transcripts
// (Dusk, Ethereum KZG) are multi-gigabyte downloads audited and converted
// by the tools in DuskBLS12_381/ and EethereumKzgCeremonyBLS12_381/, not
// bundled binaries, and no equivalent conversion has been run for BN254.
func TestRunTrustedUnavailable(t *testing.T) {
	ccs, err := scs.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &addCircuit{})
	if err != nil {
		t.Fatalf("compiling circuit: %v", err)
	}

	if _, _, err := Run(ccs, ecc.BN254, Trusted); err == nil {
		t.Errorf("expected an error requesting a trusted BN254 setup")
	}
	if _, _, err := Run(ccs, ecc.BLS12_381, Trusted); err == nil {
		t.Errorf("expected an error requesting a trusted BLS12-381 setup")
	}
}

func TestRunUnsupportedCurve(t *testing.T) {
	ccs, err := scs.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &addCircuit{})
	if err != nil {
		t.Fatalf("compiling circuit: %v", err)
	}
	if _, _, err := Run(ccs, ecc.BW6_761, TestOnly); err == nil {
		t.Errorf("expected an error for an unsupported curve")
	}
}
