package backend

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
)

// DefaultSelfCheckSamples is the number of random pairs the switchboard
// compares against the reference before accepting a backend.
const DefaultSelfCheckSamples = 4096

// Validate compares f with ref. When every pair of elements fits in
// samples the comparison is exhaustive; otherwise samples pseudo-random
// pairs from a fixed seed are checked together with the edge elements 0,
// 1 and 2^n-1. The first disagreement is returned.
func Validate[E field.Element](f, ref field.Field[E], samples int) error {
	d := f.Descriptor()
	if ref.Descriptor() != d {
		return errors.AssertionFailedf("validating %s against a reference for %s", d, ref.Descriptor())
	}
	v := validator[E]{f: f, ref: ref, d: d}

	mask := d.Mask()
	if d.Width() <= 16 && d.Order()*d.Order() <= uint64(samples) {
		for a := uint64(0); a <= mask; a++ {
			if err := v.unary(E(a)); err != nil {
				return err
			}
			for b := uint64(0); b <= mask; b++ {
				if err := v.binary(E(a), E(b)); err != nil {
					return err
				}
			}
		}
		return nil
	}

	edges := []E{0, 1, E(mask)}
	for _, a := range edges {
		if err := v.unary(a); err != nil {
			return err
		}
		for _, b := range edges {
			if err := v.binary(a, b); err != nil {
				return err
			}
		}
	}

	rng := rand.New(rand.NewPCG(0x67756666, uint64(d.FullPoly())))
	for i := 0; i < samples; i++ {
		a, b := E(rng.Uint64()&mask), E(rng.Uint64()&mask)
		if err := v.unary(a); err != nil {
			return err
		}
		if err := v.binary(a, b); err != nil {
			return err
		}
	}
	return nil
}

type validator[E field.Element] struct {
	f, ref field.Field[E]
	d      field.Descriptor
}

func (v validator[E]) mismatch(op string, args []E, got, want any) error {
	return errors.AssertionFailedf("%s backend for %s: %s%#x = %v, reference gives %v",
		v.f.Kind(), v.d, op, args, got, want)
}

func (v validator[E]) unary(a E) error {
	got, gotErr := v.f.Inv(a)
	want, wantErr := v.ref.Inv(a)
	if !sameResult(got, gotErr, want, wantErr) {
		return v.mismatch("inv", []E{a}, result(got, gotErr), result(want, wantErr))
	}

	for _, k := range []uint64{0, 1, 2, v.d.GroupOrder(), v.d.GroupOrder() + 1, 1<<63 + 5} {
		if got, want := v.f.Pow(a, k), v.ref.Pow(a, k); got != want {
			return v.mismatch("pow", []E{a, E(k)}, got, want)
		}
	}
	return nil
}

func (v validator[E]) binary(a, b E) error {
	if got, want := v.f.Add(a, b), v.ref.Add(a, b); got != want {
		return v.mismatch("add", []E{a, b}, got, want)
	}
	if got, want := v.f.Mul(a, b), v.ref.Mul(a, b); got != want {
		return v.mismatch("mul", []E{a, b}, got, want)
	}
	got, gotErr := v.f.Div(a, b)
	want, wantErr := v.ref.Div(a, b)
	if !sameResult(got, gotErr, want, wantErr) {
		return v.mismatch("div", []E{a, b}, result(got, gotErr), result(want, wantErr))
	}
	return nil
}

func sameResult[E field.Element](got E, gotErr error, want E, wantErr error) bool {
	if wantErr != nil {
		return errors.Is(gotErr, wantErr)
	}
	return gotErr == nil && got == want
}

func result[E field.Element](v E, err error) any {
	if err != nil {
		return err
	}
	return v
}
