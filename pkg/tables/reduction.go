package tables

import (
	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/gf2"
)

// Reduction folds Bits-wide fragments of a product back into the field:
// Table[h] = (h * x^n) mod P. A 2n-bit product is reduced by looking up
// its high fragments from the most significant down, XOR-ing each result
// in at the fragment's offset.
type Reduction[E field.Element] struct {
	Desc  field.Descriptor
	Bits  int
	Table []E
}

func checkReductionBits(d field.Descriptor, bits int) error {
	if bits < 1 || bits > d.Width() || d.Width()%bits != 0 {
		return errors.Wrapf(field.ErrInvalidFragment, "%d-bit reduction fragments do not divide %s", bits, d)
	}
	return nil
}

// BuildReduction computes the reduction table for bits-wide fragments,
// which must divide the field width.
func BuildReduction[E field.Element](d field.Descriptor, bits int, lim Limits) (*Reduction[E], error) {
	if err := field.CheckElement[E](d); err != nil {
		return nil, err
	}
	if err := checkReductionBits(d, bits); err != nil {
		return nil, err
	}
	if err := lim.Allow(KindReduction, d.Width(), bits); err != nil {
		return nil, err
	}

	n := d.Width()
	t := &Reduction[E]{Desc: d, Bits: bits, Table: make([]E, 1<<bits)}
	for h := range t.Table {
		t.Table[h] = E(gf2.Reduce(uint64(h)<<n, d.FullPoly()))
	}
	return t, nil
}

// Reduce folds a carry-less product of two field elements into the field.
func (t *Reduction[E]) Reduce(p uint64) E {
	n, r := t.Desc.Width(), t.Bits
	mask := uint64(1)<<r - 1
	for s := n - r; s >= 0; s -= r {
		h := (p >> (n + s)) & mask
		p ^= h << (n + s)
		p ^= uint64(t.Table[h]) << s
	}
	return E(p)
}

func (t *Reduction[E]) Meta() Meta {
	return Meta{
		Kind:     KindReduction,
		Width:    t.Desc.Width(),
		Poly:     t.Desc.FullPoly(),
		Bits:     t.Bits,
		ElemBits: field.ElementBits[E](),
		Entries:  len(t.Table),
	}
}

func (t *Reduction[E]) Len() int        { return len(t.Table) }
func (t *Reduction[E]) At(i int) uint64 { return uint64(t.Table[i]) }
func (t *Reduction[E]) Digest() Digest  { return computeDigest(t) }
