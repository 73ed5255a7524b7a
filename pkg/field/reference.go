package field

import (
	"github.com/Davincible/guff/pkg/gf2"
)

// Reference is the straightforward implementation of field arithmetic:
// carry-less multiplication followed by bit-serial reduction, and the
// extended Euclidean algorithm for inverses. It needs no tables and works
// for every supported width, which makes it the oracle every other
// backend is validated against.
type Reference[E Element] struct {
	desc Descriptor
}

var _ Field[uint8] = (*Reference[uint8])(nil)

// NewReference returns the reference implementation for d.
func NewReference[E Element](d Descriptor) (*Reference[E], error) {
	if err := CheckElement[E](d); err != nil {
		return nil, err
	}
	return &Reference[E]{desc: d}, nil
}

func (r *Reference[E]) Descriptor() Descriptor { return r.desc }
func (r *Reference[E]) Kind() Kind             { return KindReference }
func (r *Reference[E]) Order() uint64          { return r.desc.Order() }
func (r *Reference[E]) Zero() E                { return 0 }
func (r *Reference[E]) One() E                 { return 1 }

func (r *Reference[E]) Add(a, b E) E {
	return a ^ b
}

func (r *Reference[E]) Mul(a, b E) E {
	return E(gf2.Reduce(gf2.CarrylessMul(uint32(a), uint32(b)), r.desc.poly))
}

func (r *Reference[E]) Inv(a E) (E, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	inv, ok := gf2.InvMod(gf2.Poly(a), gf2.Poly(r.desc.poly))
	if !ok {
		return 0, ErrNotInvertible
	}
	return E(inv), nil
}

func (r *Reference[E]) Div(a, b E) (E, error) {
	inv, err := r.Inv(b)
	if err != nil {
		return 0, err
	}
	return r.Mul(a, inv), nil
}

func (r *Reference[E]) Pow(a E, k uint64) E {
	return SquareAndMultiply[E](r, a, k)
}
