// Package field defines binary field descriptors, the arithmetic contract
// shared by every backend, and the reference implementation that all
// backends are checked against.
package field

import (
	"unsafe"
)

// Element is the storage type of a field element. Only the exact
// unsigned types are allowed so that table data can be shared between
// backends without conversion.
type Element interface {
	uint8 | uint16 | uint32
}

// ElementBits returns the size of E in bits.
func ElementBits[E Element]() int {
	var e E
	return int(unsafe.Sizeof(e)) * 8
}

// Kind names a backend strategy.
type Kind string

const (
	KindReference     Kind = "reference"
	KindLogExp        Kind = "log-exp"
	KindFullTable     Kind = "full-table"
	KindMullReduction Kind = "mull-reduction"
)

// Kinds lists every backend kind in a stable order.
var Kinds = []Kind{KindReference, KindLogExp, KindFullTable, KindMullReduction}

// ParseKind converts a kind name back into a Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Field is arithmetic in a fixed GF(2^n). Every implementation built for
// the same Descriptor returns identical results for identical inputs.
// Implementations hold no mutable state and are safe for concurrent use.
//
// Operands must be below Order(); values with bits set above the field
// width give unspecified results.
type Field[E Element] interface {
	Descriptor() Descriptor
	Kind() Kind

	Order() uint64
	Zero() E
	One() E

	Add(a, b E) E
	Mul(a, b E) E
	// Div returns a/b, or ErrDivisionByZero when b is zero.
	Div(a, b E) (E, error)
	// Inv returns the multiplicative inverse of a, or ErrDivisionByZero
	// when a is zero.
	Inv(a E) (E, error)
	// Pow returns a^k, with a^0 == 1 for every a including zero.
	Pow(a E, k uint64) E
}

// Multiplier is the part of Field needed for exponentiation.
type Multiplier[E Element] interface {
	Mul(a, b E) E
}

// SquareAndMultiply computes a^k with m's multiplication. a^0 is 1 for
// every a, including zero.
func SquareAndMultiply[E Element](m Multiplier[E], a E, k uint64) E {
	result := E(1)
	for k != 0 {
		if k&1 != 0 {
			result = m.Mul(result, a)
		}
		k >>= 1
		if k != 0 {
			a = m.Mul(a, a)
		}
	}
	return result
}
