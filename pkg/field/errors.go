package field

import (
	"github.com/cockroachdb/errors"
)

// Error kinds shared by every field implementation and table generator.
// Construction errors wrap one of these with context; arithmetic returns
// them bare so that the hot path never allocates. Test with errors.Is.
var (
	// ErrInvalidPolynomial reports a polynomial whose degree does not match
	// the declared width, or one that failed a requested irreducibility check.
	ErrInvalidPolynomial = errors.New("invalid field polynomial")

	// ErrNotPrimitive is raised only by operations that need a generator of
	// the multiplicative group.
	ErrNotPrimitive = errors.New("polynomial is not primitive")

	// ErrDivisionByZero is returned by Inv(0) and Div(a, 0).
	ErrDivisionByZero = errors.New("division by zero")

	// ErrTableTooLarge is a policy guard raised by table generators.
	ErrTableTooLarge = errors.New("table too large for width")

	// ErrUnsupportedWidth reports a width outside 1..MaxWidth, or an element
	// type too narrow to hold the width.
	ErrUnsupportedWidth = errors.New("unsupported field width")

	// ErrNotInvertible is only reachable through an unchecked, reducible
	// polynomial, where some nonzero values share a factor with it.
	ErrNotInvertible = errors.New("element has no inverse")

	// ErrInvalidFragment reports a fragment width that does not divide the
	// field width or exceeds what a table kind supports.
	ErrInvalidFragment = errors.New("invalid fragment width")
)
