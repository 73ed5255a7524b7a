package tables

import (
	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/gf2"
)

// MaxMullBits is the widest fragment a Mull table supports. Products of
// two 8-bit fragments fit in 15 bits.
const MaxMullBits = 8

// Mull holds the carry-less products of every pair of Bits-wide
// fragments, indexed by x<<Bits | y. The entries do not depend on any
// field polynomial, so one table serves every width that Bits divides.
// Wider operands are multiplied fragment by fragment, the partial
// products XORed in at the sum of the fragment offsets.
type Mull struct {
	Bits  int
	Table []uint16
}

func checkMullBits(bits int) error {
	if bits < 1 || bits > MaxMullBits {
		return errors.Wrapf(field.ErrInvalidFragment, "mull fragment of %d bits not in 1..%d", bits, MaxMullBits)
	}
	return nil
}

// BuildMull computes the fragment product table for bits-wide fragments.
func BuildMull(bits int, lim Limits) (*Mull, error) {
	if err := checkMullBits(bits); err != nil {
		return nil, err
	}
	if err := lim.Allow(KindMull, 0, bits); err != nil {
		return nil, err
	}

	size := uint32(1) << bits
	t := &Mull{Bits: bits, Table: make([]uint16, size*size)}
	for x := uint32(0); x < size; x++ {
		for y := uint32(0); y < size; y++ {
			t.Table[x<<bits|y] = uint16(gf2.CarrylessMul(x, y))
		}
	}
	return t, nil
}

// Fits reports whether the table can assemble products in a field of the
// given width.
func (t *Mull) Fits(width int) bool {
	return width%t.Bits == 0
}

func (t *Mull) Meta() Meta {
	return Meta{
		Kind:     KindMull,
		Bits:     t.Bits,
		ElemBits: 16,
		Entries:  len(t.Table),
	}
}

func (t *Mull) Len() int        { return len(t.Table) }
func (t *Mull) At(i int) uint64 { return uint64(t.Table[i]) }
func (t *Mull) Digest() Digest  { return computeDigest(t) }
