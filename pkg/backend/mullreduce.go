package backend

import (
	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

// MullReduction assembles carry-less products from a table of fragment
// products and folds them back into the field with a reduction table.
//
// Inverses are not tabulated. They go through the reference extended
// Euclidean algorithm, which needs no table at any width.
type MullReduction[E field.Element] struct {
	desc  field.Descriptor
	bits  int
	frags int
	mask  uint32
	mull  []uint16
	red   *tables.Reduction[E]
	ref   *field.Reference[E]
}

var _ field.Field[uint32] = (*MullReduction[uint32])(nil)

// NewMullReduction combines a fragment product table with a reduction
// table. The Mull fragment width must divide the field width; the two
// fragment widths are independent.
func NewMullReduction[E field.Element](m *tables.Mull, r *tables.Reduction[E]) (*MullReduction[E], error) {
	if m == nil || r == nil {
		return nil, errors.AssertionFailedf("nil mull or reduction table")
	}
	d := r.Desc
	ref, err := field.NewReference[E](d)
	if err != nil {
		return nil, err
	}
	if m.Bits < 1 || m.Bits > tables.MaxMullBits || !m.Fits(d.Width()) || len(m.Table) != 1<<(2*m.Bits) {
		return nil, errors.AssertionFailedf("%d-bit mull table can not serve %s", m.Bits, d)
	}
	if r.Bits < 1 || d.Width()%r.Bits != 0 || len(r.Table) != 1<<r.Bits {
		return nil, errors.AssertionFailedf("%d-bit reduction table can not serve %s", r.Bits, d)
	}
	return &MullReduction[E]{
		desc:  d,
		bits:  m.Bits,
		frags: d.Width() / m.Bits,
		mask:  1<<m.Bits - 1,
		mull:  m.Table,
		red:   r,
		ref:   ref,
	}, nil
}

func (f *MullReduction[E]) Descriptor() field.Descriptor { return f.desc }
func (f *MullReduction[E]) Kind() field.Kind             { return field.KindMullReduction }
func (f *MullReduction[E]) Order() uint64                { return f.desc.Order() }
func (f *MullReduction[E]) Zero() E                      { return 0 }
func (f *MullReduction[E]) One() E                       { return 1 }
func (f *MullReduction[E]) Add(a, b E) E                 { return a ^ b }

// clmul computes the carry-less product of a and b fragment by fragment.
func (f *MullReduction[E]) clmul(a, b E) uint64 {
	var p uint64
	for i := 0; i < f.frags; i++ {
		ai := uint32(a)>>(i*f.bits)&f.mask
		if ai == 0 {
			continue
		}
		row := f.mull[ai<<f.bits : (ai+1)<<f.bits]
		for j := 0; j < f.frags; j++ {
			bj := uint32(b)>>(j*f.bits)&f.mask
			p ^= uint64(row[bj]) << ((i + j) * f.bits)
		}
	}
	return p
}

func (f *MullReduction[E]) Mul(a, b E) E {
	return f.red.Reduce(f.clmul(a, b))
}

func (f *MullReduction[E]) Inv(a E) (E, error) {
	return f.ref.Inv(a)
}

func (f *MullReduction[E]) Div(a, b E) (E, error) {
	inv, err := f.ref.Inv(b)
	if err != nil {
		return 0, err
	}
	return f.Mul(a, inv), nil
}

func (f *MullReduction[E]) Pow(a E, k uint64) E {
	return field.SquareAndMultiply[E](f, a, k)
}
