package lattice

import "fmt"

// Width is a supported machine integer bit width. The domain only ever
// operates on powers of two between 1 and 64; 1-bit widths show up as the
// result of Compare and as the operand type of FromBool.
type Width uint8

const (
	W1  Width = 1
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

func (w Width) valid() bool {
	switch w {
	case W1, W8, W16, W32, W64:
		return true
	}
	return false
}

func (w Width) check() {
	if !w.valid() {
		panic(fmt.Sprintf("lattice: unsupported width %d", uint8(w)))
	}
}

// String renders the width the way the printer annotates it in diagnostic
// output, e.g. "i32".
func (w Width) String() string {
	return fmt.Sprintf("i%d", uint8(w))
}

func checkWidthMatch(a, b Width) {
	if a != b {
		panic(errWidthMismatch(a, b))
	}
}

// MustSameWidth panics with ErrWidthMismatch if a and b were built at
// different widths, and returns their common width otherwise. Packages
// outside lattice (ops, classical, irbridge) use this to enforce the same
// width-mismatch contract violation at their own API boundary.
func MustSameWidth(a, b Wrapped) Width {
	checkWidthMatch(a.w, b.w)
	return a.w
}
