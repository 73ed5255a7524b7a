// Package codegen renders tables as Go source so they can be compiled
// into a binary instead of being generated at startup.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/tables"
)

// Header marks generated files.
const Header = "// Code generated by gftables. DO NOT EDIT."

// Decl is one package-level variable in the generated file.
type Decl struct {
	Name  string
	Table tables.Table
}

// VarName returns the conventional variable name for a table, for example
// gf2e8x11bLogExp or mull4.
func VarName(t tables.Table) string {
	m := t.Meta()
	prefix := fmt.Sprintf("gf2e%dx%x", m.Width, m.Poly)
	switch m.Kind {
	case tables.KindMull:
		return fmt.Sprintf("mull%d", m.Bits)
	case tables.KindLogExp:
		return prefix + "LogExp"
	case tables.KindFullMul:
		return prefix + "Mul"
	case tables.KindFullInv:
		return prefix + "Inv"
	case tables.KindReduction:
		return fmt.Sprintf("%sReduction%d", prefix, m.Bits)
	}
	return prefix + strings.ReplaceAll(string(m.Kind), "-", "")
}

// FileName returns the conventional file name for tables of one field.
func FileName(t tables.Table) string {
	m := t.Meta()
	if m.Kind == tables.KindMull {
		return fmt.Sprintf("mull%d.go", m.Bits)
	}
	return fmt.Sprintf("gf2e%dx%x.go", m.Width, m.Poly)
}

// Source renders decls as a gofmt-formatted Go file in package pkg.
func Source(pkg string, decls []Decl) ([]byte, error) {
	if len(decls) == 0 {
		return nil, errors.New("no tables to render")
	}

	needField := false
	for _, d := range decls {
		if d.Table.Meta().Kind != tables.KindMull {
			needField = true
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\npackage %s\n\nimport (\n", Header, pkg)
	if needField {
		buf.WriteString("\t\"github.com/Davincible/guff/pkg/field\"\n")
	}
	buf.WriteString("\t\"github.com/Davincible/guff/pkg/tables\"\n)\n")

	for _, d := range decls {
		if err := writeDecl(&buf, d); err != nil {
			return nil, err
		}
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "formatting generated source")
	}
	return out, nil
}

func writeDecl(w *bytes.Buffer, d Decl) error {
	m := d.Table.Meta()
	elem := fmt.Sprintf("uint%d", m.ElemBits)
	desc := fmt.Sprintf("field.MustDescriptor(%d, %#x)", m.Width, m.Poly)
	name := fmt.Sprintf("GF(2^%d)/%#x", m.Width, m.Poly)

	fmt.Fprintf(w, "\n")
	switch m.Kind {
	case tables.KindLogExp:
		order := 1 << m.Width
		fmt.Fprintf(w, "// %s holds log/exp tables for %s with generator %s.\n", d.Name, name, hex(m.Generator, m.ElemBits))
		fmt.Fprintf(w, "// Digest: %s\n", d.Table.Digest())
		fmt.Fprintf(w, "var %s = &tables.LogExp[%s]{\n\tDesc: %s,\n\tGenerator: %s,\n", d.Name, elem, desc, hex(m.Generator, m.ElemBits))
		writeSlice(w, "Log", elem, d.Table, 0, order)
		writeSlice(w, "Exp", elem, d.Table, order, d.Table.Len())
	case tables.KindFullMul:
		fmt.Fprintf(w, "// %s is the multiplication table of %s.\n", d.Name, name)
		fmt.Fprintf(w, "// Digest: %s\n", d.Table.Digest())
		fmt.Fprintf(w, "var %s = &tables.FullMul[%s]{\n\tDesc: %s,\n", d.Name, elem, desc)
		writeSlice(w, "Table", elem, d.Table, 0, d.Table.Len())
	case tables.KindFullInv:
		fmt.Fprintf(w, "// %s is the inverse table of %s.\n", d.Name, name)
		fmt.Fprintf(w, "// Digest: %s\n", d.Table.Digest())
		fmt.Fprintf(w, "var %s = &tables.FullInv[%s]{\n\tDesc: %s,\n", d.Name, elem, desc)
		writeSlice(w, "Table", elem, d.Table, 0, d.Table.Len())
	case tables.KindMull:
		fmt.Fprintf(w, "// %s holds carry-less products of %d-bit fragments.\n", d.Name, m.Bits)
		fmt.Fprintf(w, "// Digest: %s\n", d.Table.Digest())
		fmt.Fprintf(w, "var %s = &tables.Mull{\n\tBits: %d,\n", d.Name, m.Bits)
		writeSlice(w, "Table", elem, d.Table, 0, d.Table.Len())
	case tables.KindReduction:
		fmt.Fprintf(w, "// %s folds %d-bit fragments back into %s.\n", d.Name, m.Bits, name)
		fmt.Fprintf(w, "// Digest: %s\n", d.Table.Digest())
		fmt.Fprintf(w, "var %s = &tables.Reduction[%s]{\n\tDesc: %s,\n\tBits: %d,\n", d.Name, elem, desc, m.Bits)
		writeSlice(w, "Table", elem, d.Table, 0, d.Table.Len())
	default:
		return errors.Newf("can not render %q tables", m.Kind)
	}
	w.WriteString("}\n")
	return nil
}

// perLine keeps generated lines under 100 columns.
var perLine = map[int]int{8: 16, 16: 12, 32: 8}

func writeSlice(w *bytes.Buffer, field, elem string, t tables.Table, from, to int) {
	bits := t.Meta().ElemBits
	n := perLine[bits]
	fmt.Fprintf(w, "\t%s: []%s{\n", field, elem)
	for i := from; i < to; i += n {
		w.WriteString("\t\t")
		for j := i; j < min(i+n, to); j++ {
			if j > i {
				w.WriteString(" ")
			}
			w.WriteString(hex(t.At(j), bits))
			w.WriteString(",")
		}
		w.WriteString("\n")
	}
	w.WriteString("\t},\n")
}

func hex(v uint64, bits int) string {
	return fmt.Sprintf("0x%0*x", bits/4, v)
}
