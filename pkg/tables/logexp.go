package tables

import (
	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/gf2"
)

// LogExp holds discrete logarithms and powers of Generator.
//
// Log has 2^n entries; Log[0] holds the sentinel 2^n-1 because zero has no
// logarithm. Exp has 2*(2^n-1) entries with Exp[i] = g^(i mod 2^n-1), so the
// sum of two logarithms can index it without a modular reduction.
type LogExp[E field.Element] struct {
	Desc      field.Descriptor
	Generator E
	Log       []E
	Exp       []E
}

// BuildLogExp builds log/exp tables over the powers of x. The polynomial
// must be primitive.
func BuildLogExp[E field.Element](d field.Descriptor, lim Limits) (*LogExp[E], error) {
	if d.IsZero() {
		return nil, errors.Wrap(field.ErrUnsupportedWidth, "zero descriptor")
	}
	t, err := BuildLogExpWithGenerator[E](d, E(gf2.Reduce(2, d.FullPoly())), lim)
	if err != nil {
		return nil, errors.Wrapf(err, "log/exp tables over x for %s", d)
	}
	return t, nil
}

// BuildLogExpWithGenerator builds log/exp tables over the powers of g,
// which lets fields with an irreducible but non-primitive polynomial use
// logarithms too. It fails with ErrNotPrimitive unless g generates the
// multiplicative group.
func BuildLogExpWithGenerator[E field.Element](d field.Descriptor, g E, lim Limits) (*LogExp[E], error) {
	ref, err := field.NewReference[E](d)
	if err != nil {
		return nil, err
	}
	if err := lim.Allow(KindLogExp, d.Width(), 0); err != nil {
		return nil, err
	}

	m := d.GroupOrder()
	unset := E(m)
	t := &LogExp[E]{
		Desc:      d,
		Generator: g,
		Log:       make([]E, d.Order()),
		Exp:       make([]E, 2*m),
	}
	for i := range t.Log {
		t.Log[i] = unset
	}

	v := E(1)
	for i := uint64(0); i < m; i++ {
		if v == 0 || t.Log[v] != unset || (v == 1 && i != 0) {
			return nil, errors.Wrapf(field.ErrNotPrimitive, "%#x has order %d in %s", g, i, d)
		}
		t.Exp[i] = v
		t.Exp[i+m] = v
		t.Log[v] = E(i)
		v = ref.Mul(v, g)
	}
	if v != 1 {
		return nil, errors.Wrapf(field.ErrNotPrimitive, "%#x does not generate %s", g, d)
	}
	return t, nil
}

func (t *LogExp[E]) Meta() Meta {
	return Meta{
		Kind:      KindLogExp,
		Width:     t.Desc.Width(),
		Poly:      t.Desc.FullPoly(),
		Generator: uint64(t.Generator),
		ElemBits:  field.ElementBits[E](),
		Entries:   t.Len(),
	}
}

func (t *LogExp[E]) Len() int { return len(t.Log) + len(t.Exp) }

func (t *LogExp[E]) At(i int) uint64 {
	if i < len(t.Log) {
		return uint64(t.Log[i])
	}
	return uint64(t.Exp[i-len(t.Log)])
}

func (t *LogExp[E]) Digest() Digest { return computeDigest(t) }
