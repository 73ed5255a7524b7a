// Package tables builds the lookup tables used by the optimized backends.
//
// Every generator is a pure function of its inputs: the same descriptor,
// fragment width and generator always produce the same entries and the
// same Digest. Tables compiled into the binary and tables built at run
// time share these types.
package tables

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
)

// Kind names a table layout.
type Kind string

const (
	KindLogExp    Kind = "log-exp"
	KindFullMul   Kind = "full-mul"
	KindFullInv   Kind = "full-inv"
	KindMull      Kind = "mull"
	KindReduction Kind = "reduction"
)

// ErrCorrupt reports serialized table data that does not describe a
// well-formed table.
var ErrCorrupt = errors.New("malformed table data")

// Meta describes a table independently of its entries. It is the header
// written in front of serialized tables and the prefix of every Digest.
type Meta struct {
	Kind      Kind   `json:"kind"`
	Width     int    `json:"width,omitempty"`
	Poly      uint64 `json:"poly,omitempty"`
	Bits      int    `json:"bits,omitempty"`
	Generator uint64 `json:"generator,omitempty"`
	ElemBits  int    `json:"elem_bits"`
	Entries   int    `json:"entries"`
}

// Table is the read-only view shared by every table type. Entries are
// numbered 0..Len()-1; tables holding more than one array expose them
// back to back.
type Table interface {
	Meta() Meta
	Len() int
	At(i int) uint64
	Digest() Digest
}

// Footprint returns the size in bytes of the table's entries.
func Footprint(t Table) uint64 {
	m := t.Meta()
	return uint64(m.Entries) * uint64(m.ElemBits/8)
}

// AppendBody appends the entries of t to dst in little-endian order, each
// using the table's element size.
func AppendBody(dst []byte, t Table) []byte {
	size := t.Meta().ElemBits / 8
	for i, n := 0, t.Len(); i < n; i++ {
		v := t.At(i)
		switch size {
		case 1:
			dst = append(dst, byte(v))
		case 2:
			dst = binary.LittleEndian.AppendUint16(dst, uint16(v))
		default:
			dst = binary.LittleEndian.AppendUint32(dst, uint32(v))
		}
	}
	return dst
}

// Decode rebuilds a table from its metadata and the output of AppendBody.
// The returned value is one of *LogExp[E], *FullMul[E], *FullInv[E],
// *Mull or *Reduction[E], with E chosen by m.ElemBits.
func Decode(m Meta, body []byte) (Table, error) {
	switch m.ElemBits {
	case 8:
		return decode[uint8](m, body)
	case 16:
		return decode[uint16](m, body)
	case 32:
		return decode[uint32](m, body)
	}
	return nil, errors.Wrapf(ErrCorrupt, "element size %d", m.ElemBits)
}

func decode[E field.Element](m Meta, body []byte) (Table, error) {
	vals, err := unpack[E](body, m.Entries)
	if err != nil {
		return nil, err
	}

	if m.Kind == KindMull {
		entries, ok := any(vals).([]uint16)
		if !ok {
			return nil, errors.Wrapf(ErrCorrupt, "mull entries must be 16 bits, got %d", m.ElemBits)
		}
		if err := checkMullBits(m.Bits); err != nil {
			return nil, err
		}
		if len(entries) != 1<<(2*m.Bits) {
			return nil, errors.Wrapf(ErrCorrupt, "mull table with %d-bit fragments has %d entries", m.Bits, len(entries))
		}
		return &Mull{Bits: m.Bits, Table: entries}, nil
	}

	d, err := field.NewDescriptor(m.Width, m.Poly)
	if err != nil {
		return nil, errors.Wrapf(ErrCorrupt, "%v", err)
	}
	if err := field.CheckElement[E](d); err != nil {
		return nil, err
	}

	want := func(n uint64) error {
		if uint64(len(vals)) != n {
			return errors.Wrapf(ErrCorrupt, "%s table for %s has %d entries, want %d", m.Kind, d, len(vals), n)
		}
		return nil
	}

	switch m.Kind {
	case KindLogExp:
		groupOrder := d.GroupOrder()
		if err := want(d.Order() + 2*groupOrder); err != nil {
			return nil, err
		}
		return &LogExp[E]{
			Desc:      d,
			Generator: E(m.Generator),
			Log:       vals[:d.Order()],
			Exp:       vals[d.Order():],
		}, nil
	case KindFullMul:
		if err := want(d.Order() * d.Order()); err != nil {
			return nil, err
		}
		return &FullMul[E]{Desc: d, Table: vals}, nil
	case KindFullInv:
		if err := want(d.Order()); err != nil {
			return nil, err
		}
		return &FullInv[E]{Desc: d, Table: vals}, nil
	case KindReduction:
		if err := checkReductionBits(d, m.Bits); err != nil {
			return nil, err
		}
		if err := want(1 << m.Bits); err != nil {
			return nil, err
		}
		return &Reduction[E]{Desc: d, Bits: m.Bits, Table: vals}, nil
	}
	return nil, errors.Wrapf(ErrCorrupt, "unknown table kind %q", m.Kind)
}

func unpack[E field.Element](body []byte, n int) ([]E, error) {
	size := field.ElementBits[E]() / 8
	if n < 0 || len(body) != n*size {
		return nil, errors.Wrapf(ErrCorrupt, "body has %d bytes, want %d entries of %d bytes", len(body), n, size)
	}
	vals := make([]E, n)
	for i := range vals {
		switch size {
		case 1:
			vals[i] = E(body[i])
		case 2:
			vals[i] = E(binary.LittleEndian.Uint16(body[2*i:]))
		default:
			vals[i] = E(binary.LittleEndian.Uint32(body[4*i:]))
		}
	}
	return vals, nil
}
