// Package gf2 implements arithmetic on polynomials over GF(2), packed
// into machine words with bit i holding the coefficient of x^i.
package gf2

import (
	"math/bits"
)

// Poly is a polynomial over GF(2) of degree at most 63.
type Poly uint64

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return bits.Len64(uint64(p)) - 1
}

// Add returns p + q, which over GF(2) is the same as p - q.
func (p Poly) Add(q Poly) Poly {
	return p ^ q
}

// Mul returns the carry-less product of p and q, truncated to 64 bits.
func (p Poly) Mul(q Poly) Poly {
	var prod Poly
	for p != 0 && q != 0 {
		if q&1 != 0 {
			prod ^= p
		}
		q >>= 1
		p <<= 1
	}
	return prod
}

// DivMod returns the quotient and remainder of p divided by m.
// It panics if m is zero.
func (p Poly) DivMod(m Poly) (quo, rem Poly) {
	dm := m.Degree()
	if dm < 0 {
		panic("gf2: division by the zero polynomial")
	}
	rem = p
	for d := rem.Degree(); d >= dm; d = rem.Degree() {
		quo |= 1 << (d - dm)
		rem ^= m << (d - dm)
	}
	return quo, rem
}

// Mod returns p modulo m. It panics if m is zero.
func (p Poly) Mod(m Poly) Poly {
	_, rem := p.DivMod(m)
	return rem
}

// CarrylessMul multiplies a and b as binary polynomials. The product of
// two 32-bit operands always fits in 64 bits, so nothing is lost.
func CarrylessMul(a, b uint32) uint64 {
	x := uint64(a)
	var prod uint64
	for b != 0 {
		if b&1 != 0 {
			prod ^= x
		}
		b >>= 1
		x <<= 1
	}
	return prod
}

// Reduce folds p back below the degree of poly by XOR-ing shifted copies
// of poly into it, one bit position at a time. The result has degree
// strictly less than that of poly. It panics if poly is zero.
func Reduce(p, poly uint64) uint64 {
	n := bits.Len64(poly) - 1
	if n < 0 {
		panic("gf2: reduction modulo the zero polynomial")
	}
	for d := bits.Len64(p) - 1; d >= n; d = bits.Len64(p) - 1 {
		p ^= poly << (d - n)
	}
	return p
}

// InvMod returns the inverse of a modulo m, found with the extended
// Euclidean algorithm. ok is false when gcd(a, m) != 1, which for an
// irreducible m only happens when a is a multiple of m.
func InvMod(a, m Poly) (inv Poly, ok bool) {
	if m.Degree() < 1 {
		return 0, false
	}
	// s0*a ≡ r0 and s1*a ≡ r1 (mod m) hold on every iteration.
	r0, r1 := m, a.Mod(m)
	var s0, s1 Poly = 0, 1
	for r1 != 0 {
		q, r := r0.DivMod(r1)
		r0, r1 = r1, r
		s0, s1 = s1, s0^q.Mul(s1)
	}
	if r0 != 1 {
		return 0, false
	}
	return s0.Mod(m), true
}

// Factor returns the distinct prime factors of n in increasing order.
func Factor(n uint64) []uint64 {
	var primes []uint64
	for d := uint64(2); d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		primes = append(primes, d)
		for n%d == 0 {
			n /= d
		}
	}
	if n > 1 {
		primes = append(primes, n)
	}
	return primes
}
