package field

import (
	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/gf2"
)

// IsIrreducible reports whether the field polynomial has no factor of
// degree 1 through width/2. Any reducible polynomial has one.
func (d Descriptor) IsIrreducible() bool {
	if d.IsZero() {
		return false
	}
	p := gf2.Poly(d.poly)
	limit := gf2.Poly(1) << (d.width/2 + 1)
	for q := gf2.Poly(2); q < limit; q++ {
		if p.Mod(q) == 0 {
			return false
		}
	}
	return true
}

// IsPrimitive reports whether x generates the multiplicative group of
// the field. Only the maximal proper divisors (2^n-1)/p of the group
// order need to be checked: any smaller order divides one of them.
func (d Descriptor) IsPrimitive() bool {
	if !d.IsIrreducible() {
		return false
	}
	x := gf2.Reduce(2, d.poly)
	return x != 0 && d.isGenerator(x, gf2.Factor(d.GroupOrder()))
}

// ElementOrder returns the multiplicative order of g: the smallest k > 0
// with g^k == 1. It returns 0 for zero and for values that are not units,
// which only exist under a reducible polynomial.
func (d Descriptor) ElementOrder(g uint64) uint64 {
	g &= d.Mask()
	m := d.GroupOrder()
	if g == 0 || d.pow(g, m) != 1 {
		return 0
	}
	ord := m
	for _, p := range gf2.Factor(m) {
		for ord%p == 0 && d.pow(g, ord/p) == 1 {
			ord /= p
		}
	}
	return ord
}

// IsGenerator reports whether g generates the multiplicative group.
func (d Descriptor) IsGenerator(g uint64) bool {
	return g != 0 && g <= d.Mask() && d.isGenerator(g, gf2.Factor(d.GroupOrder()))
}

// FindGenerator returns the smallest generator of the multiplicative
// group. The polynomial must be irreducible.
func (d Descriptor) FindGenerator() (uint64, error) {
	if !d.IsIrreducible() {
		return 0, errors.Wrapf(ErrInvalidPolynomial, "%s is reducible and has no generator", d)
	}
	primes := gf2.Factor(d.GroupOrder())
	for g := uint64(1); g <= d.Mask(); g++ {
		if d.isGenerator(g, primes) {
			return g, nil
		}
	}
	return 0, errors.AssertionFailedf("irreducible %s has no generator", d)
}

func (d Descriptor) isGenerator(g uint64, primes []uint64) bool {
	m := d.GroupOrder()
	if d.pow(g, m) != 1 {
		return false
	}
	for _, p := range primes {
		if d.pow(g, m/p) == 1 {
			return false
		}
	}
	return true
}

func (d Descriptor) mul(a, b uint64) uint64 {
	return gf2.Reduce(gf2.CarrylessMul(uint32(a), uint32(b)), d.poly)
}

func (d Descriptor) pow(a, k uint64) uint64 {
	result := uint64(1)
	for ; k != 0; k >>= 1 {
		if k&1 != 0 {
			result = d.mul(result, a)
		}
		a = d.mul(a, a)
	}
	return result
}
