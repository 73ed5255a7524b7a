package backend

import (
	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

// FullTable looks every product and inverse up directly. It is only
// practical for small fields.
type FullTable[E field.Element] struct {
	desc  field.Descriptor
	width int
	mul   []E
	inv   []E
}

var _ field.Field[uint8] = (*FullTable[uint8])(nil)

// NewFullTable wraps a multiplication and an inverse table for the same field.
func NewFullTable[E field.Element](mul *tables.FullMul[E], inv *tables.FullInv[E]) (*FullTable[E], error) {
	if mul == nil || inv == nil {
		return nil, errors.AssertionFailedf("nil full tables")
	}
	d := mul.Desc
	if inv.Desc != d {
		return nil, errors.AssertionFailedf("multiplication table is for %s, inverse table for %s", d, inv.Desc)
	}
	if err := field.CheckElement[E](d); err != nil {
		return nil, err
	}
	if uint64(len(mul.Table)) != d.Order()*d.Order() || uint64(len(inv.Table)) != d.Order() {
		return nil, errors.AssertionFailedf("full tables for %s have %d and %d entries", d, len(mul.Table), len(inv.Table))
	}
	return &FullTable[E]{desc: d, width: d.Width(), mul: mul.Table, inv: inv.Table}, nil
}

func (f *FullTable[E]) Descriptor() field.Descriptor { return f.desc }
func (f *FullTable[E]) Kind() field.Kind             { return field.KindFullTable }
func (f *FullTable[E]) Order() uint64                { return f.desc.Order() }
func (f *FullTable[E]) Zero() E                      { return 0 }
func (f *FullTable[E]) One() E                       { return 1 }
func (f *FullTable[E]) Add(a, b E) E                 { return a ^ b }

func (f *FullTable[E]) Mul(a, b E) E {
	return f.mul[uint(a)<<f.width|uint(b)]
}

func (f *FullTable[E]) Inv(a E) (E, error) {
	if a == 0 {
		return 0, field.ErrDivisionByZero
	}
	return f.inv[a], nil
}

func (f *FullTable[E]) Div(a, b E) (E, error) {
	if b == 0 {
		return 0, field.ErrDivisionByZero
	}
	return f.Mul(a, f.inv[b]), nil
}

func (f *FullTable[E]) Pow(a E, k uint64) E {
	return field.SquareAndMultiply[E](f, a, k)
}
