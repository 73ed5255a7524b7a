package tables

import (
	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
)

// FullMul is the complete multiplication table of a small field, indexed
// by a<<n | b.
type FullMul[E field.Element] struct {
	Desc  field.Descriptor
	Table []E
}

// FullInv maps every nonzero element to its inverse. Table[0] is zero and
// is never consulted.
type FullInv[E field.Element] struct {
	Desc  field.Descriptor
	Table []E
}

// BuildFullMul multiplies every pair of elements with the reference
// implementation.
func BuildFullMul[E field.Element](d field.Descriptor, lim Limits) (*FullMul[E], error) {
	ref, err := field.NewReference[E](d)
	if err != nil {
		return nil, err
	}
	if err := lim.Allow(KindFullMul, d.Width(), 0); err != nil {
		return nil, err
	}

	n := d.Width()
	order := d.Order()
	t := &FullMul[E]{Desc: d, Table: make([]E, order*order)}
	for a := uint64(0); a < order; a++ {
		row := t.Table[a<<n : (a+1)<<n]
		for b := range row {
			row[b] = ref.Mul(E(a), E(b))
		}
	}
	return t, nil
}

// BuildFullInv inverts every nonzero element with the reference
// implementation. It fails with ErrNotInvertible when the polynomial is
// reducible.
func BuildFullInv[E field.Element](d field.Descriptor, lim Limits) (*FullInv[E], error) {
	ref, err := field.NewReference[E](d)
	if err != nil {
		return nil, err
	}
	if err := lim.Allow(KindFullInv, d.Width(), 0); err != nil {
		return nil, err
	}

	t := &FullInv[E]{Desc: d, Table: make([]E, d.Order())}
	for a := 1; a < len(t.Table); a++ {
		inv, err := ref.Inv(E(a))
		if err != nil {
			return nil, errors.Wrapf(err, "inverse of %#x in %s", a, d)
		}
		t.Table[a] = inv
	}
	return t, nil
}

func (t *FullMul[E]) Meta() Meta {
	return Meta{
		Kind:     KindFullMul,
		Width:    t.Desc.Width(),
		Poly:     t.Desc.FullPoly(),
		ElemBits: field.ElementBits[E](),
		Entries:  len(t.Table),
	}
}

func (t *FullMul[E]) Len() int        { return len(t.Table) }
func (t *FullMul[E]) At(i int) uint64 { return uint64(t.Table[i]) }
func (t *FullMul[E]) Digest() Digest  { return computeDigest(t) }

func (t *FullInv[E]) Meta() Meta {
	return Meta{
		Kind:     KindFullInv,
		Width:    t.Desc.Width(),
		Poly:     t.Desc.FullPoly(),
		ElemBits: field.ElementBits[E](),
		Entries:  len(t.Table),
	}
}

func (t *FullInv[E]) Len() int        { return len(t.Table) }
func (t *FullInv[E]) At(i int) uint64 { return uint64(t.Table[i]) }
func (t *FullInv[E]) Digest() Digest  { return computeDigest(t) }
