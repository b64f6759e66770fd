package lattice

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for the contract violations spec'd as fatal: a caller
// that hits one has broken a precondition of the interface, not triggered
// a recoverable analysis outcome. Each is wrapped with call-site context
// via github.com/pkg/errors before being handed to panic, mirroring how
// the teacher's checkLatticeMatch panics on a lattice mismatch rather than
// threading an error return through every lattice method.
var (
	ErrWidthMismatch      = errors.New("lattice: width mismatch")
	ErrInvalidShiftAmount = errors.New("lattice: invalid shift amount")
	ErrDivisionByZero     = errors.New("lattice: division by interval containing zero")
	ErrTruncTargetTooWide = errors.New("lattice: truncation target width must be smaller than source")
	ErrExtendTargetNarrow = errors.New("lattice: extension target width must be larger than source")
)

var errGeneralizedJoinEmpty = errors.New("lattice: GeneralizedJoin called with no elements")

func errWidthMismatch(a, b Width) error {
	return errors.Wrapf(ErrWidthMismatch, "got %s and %s", a, b)
}

// ErrInvalidShift wraps ErrInvalidShiftAmount with the offending shift
// amount and width, for callers outside this package (ops.BitBinOp) that
// hit the same contract violation the package's own shift logic would.
func ErrInvalidShift(shift MachineInt, w Width) error {
	return errors.Wrapf(ErrInvalidShiftAmount, "shift amount %s at width %s", shift, w)
}

// ErrDivByZero wraps ErrDivisionByZero with the offending operator name.
func ErrDivByZero(op string) error {
	return errors.Wrapf(ErrDivisionByZero, "operator %s", op)
}

// ErrTruncTooWide wraps ErrTruncTargetTooWide with the offending widths.
func ErrTruncTooWide(src, target Width) error {
	return errors.Wrapf(ErrTruncTargetTooWide, "from %s to %s", src, target)
}

// ErrExtendNarrow wraps ErrExtendTargetNarrow with the offending widths.
func ErrExtendNarrow(src, target Width) error {
	return errors.Wrapf(ErrExtendTargetNarrow, "from %s to %s", src, target)
}

// overflowCounter is invoked whenever a total operation (jump-set
// widening, add/sub/mul, truncation) is forced to answer Top because the
// mathematically exact result does not fit the wrapped-interval shape.
// It is not an error: producing Top on overflow is defined behavior, not
// a contract violation. The default is a no-op so the core stays free of
// side effects unless a caller opts in via WithOverflowCounter.
var overflowCounter = func() {}

// WithOverflowCounter installs f to be called on every overflow-to-Top
// event and returns the previous counter so callers can restore it.
func WithOverflowCounter(f func()) (previous func()) {
	if f == nil {
		f = func() {}
	}
	previous = overflowCounter
	overflowCounter = f
	return previous
}

func countOverflow() { overflowCounter() }

// NotifyOverflow lets other packages in this module (ops) feed their own
// overflow-to-Top events into the same counter Widen uses, so a caller
// sees one consistent overflow count regardless of which package produced
// the Top.
func NotifyOverflow() { overflowCounter() }

func fatal(err error) {
	panic(fmt.Sprint(err))
}
