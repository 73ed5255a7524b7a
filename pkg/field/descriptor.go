package field

import (
	"fmt"
	"math/bits"

	"github.com/cockroachdb/errors"
)

// MaxWidth is the widest field supported. Products of two elements are
// accumulated in 64 bits, so the width can not exceed half of that.
const MaxWidth = 32

// Check selects optional validation performed by NewCheckedDescriptor.
type Check uint8

const (
	// CheckIrreducible rejects reducible polynomials with ErrInvalidPolynomial.
	CheckIrreducible Check = 1 << iota
	// CheckPrimitive rejects polynomials for which x does not generate the
	// multiplicative group with ErrNotPrimitive. Implies CheckIrreducible.
	CheckPrimitive
)

// Descriptor identifies a binary field GF(2^width) together with the
// polynomial that defines its reduction rule. The zero value is not a
// valid descriptor; use NewDescriptor. Descriptors are comparable and
// cheap to copy.
type Descriptor struct {
	width int
	poly  uint64
}

// NewDescriptor returns the descriptor for GF(2^width) reduced modulo poly.
// poly is given in full, including the x^width term.
func NewDescriptor(width int, poly uint64) (Descriptor, error) {
	if width < 1 || width > MaxWidth {
		return Descriptor{}, errors.Wrapf(ErrUnsupportedWidth, "width %d not in 1..%d", width, MaxWidth)
	}
	if deg := bits.Len64(poly) - 1; deg != width {
		return Descriptor{}, errors.Wrapf(ErrInvalidPolynomial,
			"polynomial %#x has degree %d, want %d", poly, deg, width)
	}
	return Descriptor{width: width, poly: poly}, nil
}

// NewCheckedDescriptor is NewDescriptor followed by the requested checks.
func NewCheckedDescriptor(width int, poly uint64, checks Check) (Descriptor, error) {
	d, err := NewDescriptor(width, poly)
	if err != nil {
		return Descriptor{}, err
	}
	if checks&(CheckIrreducible|CheckPrimitive) != 0 && !d.IsIrreducible() {
		return Descriptor{}, errors.Wrapf(ErrInvalidPolynomial, "%s is reducible", d)
	}
	if checks&CheckPrimitive != 0 && !d.IsPrimitive() {
		return Descriptor{}, errors.Wrapf(ErrNotPrimitive, "x does not generate %s", d)
	}
	return d, nil
}

// MustDescriptor is like NewDescriptor but panics on error. It is meant
// for package-level tables of well-known fields.
func MustDescriptor(width int, poly uint64) Descriptor {
	d, err := NewDescriptor(width, poly)
	if err != nil {
		panic(err)
	}
	return d
}

// Width returns the number of bits in an element.
func (d Descriptor) Width() int { return d.width }

// FullPoly returns the field polynomial including its x^width term.
func (d Descriptor) FullPoly() uint64 { return d.poly }

// Poly returns the field polynomial with the implicit x^width term stripped.
func (d Descriptor) Poly() uint64 { return d.poly &^ (1 << d.width) }

// Order returns the number of elements in the field, 2^width.
func (d Descriptor) Order() uint64 { return 1 << d.width }

// GroupOrder returns the order of the multiplicative group, 2^width - 1.
func (d Descriptor) GroupOrder() uint64 { return d.Order() - 1 }

// Mask has the low width bits set.
func (d Descriptor) Mask() uint64 { return d.Order() - 1 }

// IsZero reports whether d is the zero value rather than a constructed descriptor.
func (d Descriptor) IsZero() bool { return d.width == 0 }

func (d Descriptor) String() string {
	return fmt.Sprintf("GF(2^%d)/%#x", d.width, d.poly)
}

// CheckElement verifies that E is wide enough to hold elements of d.
func CheckElement[E Element](d Descriptor) error {
	if d.IsZero() {
		return errors.Wrap(ErrUnsupportedWidth, "zero descriptor")
	}
	if size := ElementBits[E](); d.width > size {
		return errors.Wrapf(ErrUnsupportedWidth, "%s does not fit in a %d-bit element", d, size)
	}
	return nil
}
