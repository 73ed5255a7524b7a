// Package backend implements table-driven field arithmetic and the
// switchboard that picks an implementation for a field.
//
// Every backend produces the same results as field.Reference for the same
// descriptor. None of them is guaranteed to be faster than the reference
// for every width; the switchboard's preference order is a policy, not a
// promise.
package backend

import (
	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

// LogExp multiplies by adding discrete logarithms.
type LogExp[E field.Element] struct {
	desc field.Descriptor
	m    uint64
	log  []E
	exp  []E
}

var _ field.Field[uint8] = (*LogExp[uint8])(nil)

// NewLogExp wraps log/exp tables. The tables are shared, not copied.
func NewLogExp[E field.Element](t *tables.LogExp[E]) (*LogExp[E], error) {
	if t == nil {
		return nil, errors.AssertionFailedf("nil log/exp tables")
	}
	d := t.Desc
	if err := field.CheckElement[E](d); err != nil {
		return nil, err
	}
	m := d.GroupOrder()
	if uint64(len(t.Log)) != d.Order() || uint64(len(t.Exp)) != 2*m {
		return nil, errors.AssertionFailedf("log/exp tables for %s have %d and %d entries, want %d and %d",
			d, len(t.Log), len(t.Exp), d.Order(), 2*m)
	}
	return &LogExp[E]{desc: d, m: m, log: t.Log, exp: t.Exp}, nil
}

func (f *LogExp[E]) Descriptor() field.Descriptor { return f.desc }
func (f *LogExp[E]) Kind() field.Kind             { return field.KindLogExp }
func (f *LogExp[E]) Order() uint64                { return f.desc.Order() }
func (f *LogExp[E]) Zero() E                      { return 0 }
func (f *LogExp[E]) One() E                       { return 1 }
func (f *LogExp[E]) Add(a, b E) E                 { return a ^ b }

func (f *LogExp[E]) Mul(a, b E) E {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[uint64(f.log[a])+uint64(f.log[b])]
}

func (f *LogExp[E]) Inv(a E) (E, error) {
	if a == 0 {
		return 0, field.ErrDivisionByZero
	}
	return f.exp[f.m-uint64(f.log[a])], nil
}

func (f *LogExp[E]) Div(a, b E) (E, error) {
	if b == 0 {
		return 0, field.ErrDivisionByZero
	}
	if a == 0 {
		return 0, nil
	}
	return f.exp[uint64(f.log[a])+f.m-uint64(f.log[b])], nil
}

func (f *LogExp[E]) Pow(a E, k uint64) E {
	if k == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	return f.exp[(uint64(f.log[a])*(k%f.m))%f.m]
}
