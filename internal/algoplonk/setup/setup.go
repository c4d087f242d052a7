package setup

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	kzg_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
	kzg_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/consensys/gnark-crypto/kzg"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
)

// Conf specified what setup to run, either trusted as per doc.go or a test only
// setup not suitable for production.
type Conf int

const (
	Trusted Conf = iota
	TestOnly
)

// Run sets up a plonk system using either a trusted or test only setup,
// as specified by the setup parameter.
func Run(ccs constraint.ConstraintSystem, curve ecc.ID, setup Conf) (
	plonk.ProvingKey, plonk.VerifyingKey, error) {

	numGates := uint64(ccs.GetNbConstraints() + ccs.GetNbPublicVariables())
	numGates = ecc.NextPowerOfTwo(numGates)

	var srs kzg.SRS
	var err error

	switch curve {
	case ecc.BLS12_381:
		if setup == Trusted {
			return nil, nil, fmt.Errorf("trusted setup parameters for BLS12-381 are not bundled with this build")
		} else if setup == TestOnly {
			srs, err = kzg_bls12381.NewSRS(numGates+5, big.NewInt(-1))
		}
	case ecc.BN254:
		if setup == Trusted {
			return nil, nil, fmt.Errorf("trusted setup not available for BN254")
		} else if setup == TestOnly {
			srs, err = kzg_bn254.NewSRS(numGates+5, big.NewInt(-1))
		}
	default:
		return nil, nil, fmt.Errorf("unsupported curve: %v", curve)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("error creating SRS:  %v", err)
	}

	return plonk.Setup(ccs, srs)
}
