package bignat

import "fmt"

// Kind is the closed taxonomy of failures the arithmetic core can report,
// per the error-handling design: no panics on caller-controllable inputs,
// every fallible operation returns a tagged result instead.
type Kind int

const (
	// InvalidParameters covers mismatched limb widths, a zero modulus, or
	// inconsistent sub-table widths. Always fatal, never recoverable locally.
	InvalidParameters Kind = iota
	// GroupTooLarge means the requested grouping step overflows the ambient
	// prime; the caller must retry with a smaller group size.
	GroupTooLarge
	// QuotientBoundExceeded means a witnessed quotient does not fit the
	// declared bit-width; this indicates a bug in the caller's bit-width
	// table and is fatal.
	QuotientBoundExceeded
	// CarryWidthExceedsCap is warn-only: the downstream circuit may need a
	// wider range-check than CW2.
	CarryWidthExceedsCap
	// PointNotOnCurve signals a computed EC point failed the curve
	// equation, indicating an arithmetic bug. Fatal.
	PointNotOnCurve
	// IncompleteAddHit means an incomplete-add witness was invoked with
	// P1 = ±P2, violating its precondition. Fatal.
	IncompleteAddHit
	// InternalInconsistency is raised when a derived identity fails to
	// hold; it should never trigger if the arithmetic is implemented
	// correctly.
	InternalInconsistency
)

func (k Kind) String() string {
	switch k {
	case InvalidParameters:
		return "InvalidParameters"
	case GroupTooLarge:
		return "GroupTooLarge"
	case QuotientBoundExceeded:
		return "QuotientBoundExceeded"
	case CarryWidthExceedsCap:
		return "CarryWidthExceedsCap"
	case PointNotOnCurve:
		return "PointNotOnCurve"
	case IncompleteAddHit:
		return "IncompleteAddHit"
	case InternalInconsistency:
		return "InternalInconsistency"
	default:
		return "Unknown"
	}
}

// Error is a tagged result carrying the failure Kind and the phase in which
// it occurred (e.g. "scalar-mul row 17"), matching the CLI's user-visible
// diagnostic format.
type Error struct {
	Kind  Kind
	Phase string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Phase, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Phase, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds a tagged Error for the given phase.
func newError(kind Kind, phase string, wrapped error) *Error {
	return &Error{Kind: kind, Phase: phase, Err: wrapped}
}

// NewPointNotOnCurveError is the exported constructor the ecp256 package
// uses when a computed result point fails the curve equation.
func NewPointNotOnCurveError() *Error {
	return newError(PointNotOnCurve, "PointAdd/PointDouble", nil)
}

// NewIncompleteAddHitError is the exported constructor used when an
// incomplete-add witness is invoked with P1 = ±P2.
func NewIncompleteAddHitError() *Error {
	return newError(IncompleteAddHit, "PointAdd", nil)
}
