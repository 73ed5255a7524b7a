// Package validation parses and checks the field parameters users type on
// the command line.
package validation

import (
	"fmt"
	"math/bits"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

var (
	hexPattern  = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	binPattern  = regexp.MustCompile(`^0[bB][01]+$`)
	termPattern = regexp.MustCompile(`^(?:1|x(?:\^(\d+))?)$`)
)

// ParsePoly reads a polynomial over GF(2) written as hex (0x11b), binary
// (0b100011011), decimal (283) or as a sum of terms (x^8+x^4+x^3+x+1).
func ParsePoly(input string) (uint64, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("polynomial cannot be empty")
	}

	switch {
	case hexPattern.MatchString(input):
		return parseUint(input[2:], 16)
	case binPattern.MatchString(input):
		return parseUint(input[2:], 2)
	case strings.ContainsAny(input, "x^+"):
		return parseTerms(input)
	}
	return parseUint(input, 10)
}

func parseUint(s string, base int) (uint64, error) {
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid polynomial %q: %w", s, err)
	}
	return v, nil
}

func parseTerms(input string) (uint64, error) {
	var poly uint64
	for i, term := range strings.Split(strings.ReplaceAll(input, " ", ""), "+") {
		m := termPattern.FindStringSubmatch(term)
		if m == nil {
			return 0, fmt.Errorf("term %d (%q) is not 1, x or x^k", i+1, term)
		}

		exp := 0
		switch {
		case term == "x":
			exp = 1
		case m[1] != "":
			e, err := strconv.Atoi(m[1])
			if err != nil || e > 63 {
				return 0, fmt.Errorf("exponent in %q out of range", term)
			}
			exp = e
		}

		if poly&(1<<exp) != 0 {
			return 0, fmt.Errorf("term x^%d appears twice", exp)
		}
		poly |= 1 << exp
	}
	return poly, nil
}

// FormatPoly writes poly as a sum of terms, highest degree first.
func FormatPoly(poly uint64) string {
	if poly == 0 {
		return "0"
	}
	var terms []string
	for e := bits.Len64(poly) - 1; e >= 0; e-- {
		if poly&(1<<e) == 0 {
			continue
		}
		switch e {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(e))
		}
	}
	return strings.Join(terms, " + ")
}

// ValidateWidth checks that width is a supported field width.
func ValidateWidth(width int) error {
	if width < 1 || width > field.MaxWidth {
		return fmt.Errorf("width must be between 1 and %d (got %d)", field.MaxWidth, width)
	}
	return nil
}

// ParseDescriptor builds a descriptor from a width and a polynomial. A
// width of zero is taken from the polynomial's degree.
func ParseDescriptor(width int, poly string) (field.Descriptor, error) {
	p, err := ParsePoly(poly)
	if err != nil {
		return field.Descriptor{}, err
	}
	if width == 0 {
		width = bits.Len64(p) - 1
	}
	if err := ValidateWidth(width); err != nil {
		return field.Descriptor{}, err
	}
	d, err := field.NewDescriptor(width, p)
	if err != nil {
		return field.Descriptor{}, fmt.Errorf("invalid field: %w", err)
	}
	return d, nil
}

// ParseElement reads a field element in hex or decimal and checks that it
// fits in d.
func ParseElement(d field.Descriptor, input string) (uint64, error) {
	input = strings.TrimSpace(input)
	var (
		v   uint64
		err error
	)
	if hexPattern.MatchString(input) {
		v, err = strconv.ParseUint(input[2:], 16, 64)
	} else {
		v, err = strconv.ParseUint(input, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid element %q", input)
	}
	if v > d.Mask() {
		return 0, fmt.Errorf("element %#x does not fit in %s", v, d)
	}
	return v, nil
}

// ParseKinds reads a comma separated list of backend kinds.
func ParseKinds(input string) ([]field.Kind, error) {
	var kinds []field.Kind
	for _, s := range splitList(input) {
		k, ok := field.ParseKind(s)
		if !ok {
			return nil, fmt.Errorf("unknown backend kind %q", s)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// TableKinds lists the table layouts gftables can generate.
var TableKinds = []tables.Kind{
	tables.KindLogExp, tables.KindFullMul, tables.KindFullInv, tables.KindMull, tables.KindReduction,
}

// ParseTableKinds reads a comma separated list of table layouts. Each
// layout appears once in the result, in TableKinds order.
func ParseTableKinds(input string) ([]tables.Kind, error) {
	seen := make(map[tables.Kind]bool)
	for _, s := range splitList(input) {
		if !slices.Contains(TableKinds, tables.Kind(s)) {
			return nil, fmt.Errorf("unknown table kind %q", s)
		}
		seen[tables.Kind(s)] = true
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("no table kinds given")
	}

	var out []tables.Kind
	for _, k := range TableKinds {
		if seen[k] {
			out = append(out, k)
		}
	}
	return out, nil
}

func splitList(input string) []string {
	var out []string
	for _, s := range strings.Split(input, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
