package tables

import (
	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
)

// Limits bounds the size of generated tables. A table is measured by the
// number of bits needed to index it, so MaxTableBits of 16 allows at most
// 65536 entries per array.
type Limits struct {
	MaxTableBits int
}

// MaxIndexBits is the hard ceiling on MaxTableBits. Larger limits are
// clamped to it, so a table never needs more than 2^32 entries.
const MaxIndexBits = 32

// DefaultLimits allows log/exp tables up to GF(2^16) and full
// multiplication tables up to GF(2^8).
var DefaultLimits = Limits{MaxTableBits: 16}

// IndexBits returns the number of index bits a table of the given kind
// needs for a field of the given width and fragment size.
func IndexBits(kind Kind, width, bits int) int {
	switch kind {
	case KindFullMul:
		return 2 * width
	case KindMull:
		return 2 * bits
	case KindReduction:
		return bits
	default:
		return width
	}
}

func (l Limits) max() int {
	if l.MaxTableBits <= 0 {
		return DefaultLimits.MaxTableBits
	}
	return min(l.MaxTableBits, MaxIndexBits)
}

// Allow returns ErrTableTooLarge if a table of the given kind exceeds l.
func (l Limits) Allow(kind Kind, width, bits int) error {
	if n := IndexBits(kind, width, bits); n > l.max() {
		return errors.Wrapf(field.ErrTableTooLarge,
			"%s table needs %d index bits, limit is %d", kind, n, l.max())
	}
	return nil
}
