// Package embedded holds precomputed tables compiled into the binary.
//
// The tables are produced by gftables and checked against the generators
// in pkg/tables by this package's tests. Lookups never build anything: a
// miss means the caller has to generate the table itself.
package embedded

import (
	"slices"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

//go:generate go run ../../../cmd/gftables generate --format go --package embedded --width 4 --poly 0x13 --kinds full-mul,full-inv --output gf2e4x13.go
//go:generate go run ../../../cmd/gftables generate --format go --package embedded --width 8 --poly 0x11b --kinds log-exp --generator 3 --output gf2e8x11b.go
//go:generate go run ../../../cmd/gftables generate --format go --package embedded --width 8 --poly 0x11d --kinds log-exp --output gf2e8x11d.go
//go:generate go run ../../../cmd/gftables generate --format go --package embedded --kinds mull --bits 4 --output mull4.go
//go:generate go run ../../../cmd/gftables generate --format go --package embedded --width 16 --poly 0x1002b --kinds reduction --bits 8 --output gf2e16x1002b.go
//go:generate go run ../../../cmd/gftables generate --format go --package embedded --width 32 --poly 0x100400007 --kinds reduction --bits 8 --output gf2e32x100400007.go

// Entry describes one compiled-in table.
type Entry struct {
	Kind  tables.Kind
	Desc  field.Descriptor // zero for Mull tables
	Bits  int
	Table tables.Table
}

type key struct {
	kind tables.Kind
	desc field.Descriptor
	bits int
}

var catalog = []Entry{
	{Kind: tables.KindFullMul, Desc: gf2e4x13Mul.Desc, Table: gf2e4x13Mul},
	{Kind: tables.KindFullInv, Desc: gf2e4x13Inv.Desc, Table: gf2e4x13Inv},
	{Kind: tables.KindLogExp, Desc: gf2e8x11bLogExp.Desc, Table: gf2e8x11bLogExp},
	{Kind: tables.KindLogExp, Desc: gf2e8x11dLogExp.Desc, Table: gf2e8x11dLogExp},
	{Kind: tables.KindMull, Bits: mull4.Bits, Table: mull4},
	{Kind: tables.KindReduction, Desc: gf2e16x1002bReduction8.Desc, Bits: 8, Table: gf2e16x1002bReduction8},
	{Kind: tables.KindReduction, Desc: gf2e32x100400007Reduction8.Desc, Bits: 8, Table: gf2e32x100400007Reduction8},
}

var index = func() map[key]tables.Table {
	m := make(map[key]tables.Table, len(catalog))
	for _, e := range catalog {
		m[key{kind: e.Kind, desc: e.Desc, bits: e.Bits}] = e.Table
	}
	return m
}()

// Catalog lists every compiled-in table.
func Catalog() []Entry {
	return slices.Clone(catalog)
}

func lookup[T tables.Table](k key) (T, bool) {
	t, ok := index[k].(T)
	return t, ok
}

// LogExp returns the compiled-in log/exp tables for d, if any were
// generated with element type E.
func LogExp[E field.Element](d field.Descriptor) (*tables.LogExp[E], bool) {
	return lookup[*tables.LogExp[E]](key{kind: tables.KindLogExp, desc: d})
}

// FullMul returns the compiled-in multiplication table for d.
func FullMul[E field.Element](d field.Descriptor) (*tables.FullMul[E], bool) {
	return lookup[*tables.FullMul[E]](key{kind: tables.KindFullMul, desc: d})
}

// FullInv returns the compiled-in inverse table for d.
func FullInv[E field.Element](d field.Descriptor) (*tables.FullInv[E], bool) {
	return lookup[*tables.FullInv[E]](key{kind: tables.KindFullInv, desc: d})
}

// Mull returns the compiled-in fragment product table for bits-wide fragments.
func Mull(bits int) (*tables.Mull, bool) {
	return lookup[*tables.Mull](key{kind: tables.KindMull, bits: bits})
}

// Reduction returns the compiled-in reduction table for d and bits-wide
// fragments.
func Reduction[E field.Element](d field.Descriptor, bits int) (*tables.Reduction[E], bool) {
	return lookup[*tables.Reduction[E]](key{kind: tables.KindReduction, desc: d, bits: bits})
}
