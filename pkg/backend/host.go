package backend

import (
	"slices"

	"github.com/klauspost/cpuid/v2"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

// Host describes the processor the tables will be used on.
type Host struct {
	Brand    string
	Vendor   string
	Cores    int
	L1D      int // bytes, -1 if unknown
	L2       int // bytes, -1 if unknown
	Features []string
}

// interesting lists the features relevant to binary field arithmetic.
var interesting = []cpuid.FeatureID{
	cpuid.SSE2, cpuid.SSSE3, cpuid.AVX, cpuid.AVX2, cpuid.AVX512F,
	cpuid.CLMUL, cpuid.VPCLMULQDQ, cpuid.GFNI, cpuid.ASIMD, cpuid.PMULL, cpuid.SVE,
}

// DetectHost reads the running processor. Nothing is detected unless this
// is called.
func DetectHost() Host {
	c := cpuid.CPU
	h := Host{
		Brand:  c.BrandName,
		Vendor: c.VendorString,
		Cores:  c.PhysicalCores,
		L1D:    c.Cache.L1D,
		L2:     c.Cache.L2,
	}
	for _, f := range interesting {
		if c.Supports(f) {
			h.Features = append(h.Features, f.String())
		}
	}
	return h
}

// Has reports whether the host supports the named feature, e.g. "CLMUL".
func (h Host) Has(feature string) bool {
	return slices.Contains(h.Features, feature)
}

// Footprint estimates the bytes of table data a backend of the given kind
// touches for a field of the given width.
func Footprint(kind field.Kind, width int) uint64 {
	elem := uint64(elemBytes(width))
	order := uint64(1) << width
	switch kind {
	case field.KindLogExp:
		return (order + 2*(order-1)) * elem
	case field.KindFullTable:
		return (order*order + order) * elem
	case field.KindMullReduction:
		bits := fragmentBits(width, tables.MaxMullBits)
		return 2*(uint64(1)<<(2*bits)) + (uint64(1)<<bits)*elem
	}
	return 0
}

// Plan returns the default plan for width with kinds whose tables exceed
// the host's L2 cache moved to the end.
func (h Host) Plan(width int) []field.Kind {
	return h.demote(DefaultPlan(width), width)
}

func (h Host) demote(plan []field.Kind, width int) []field.Kind {
	if h.L2 <= 0 {
		return plan
	}
	var fits, spills []field.Kind
	for _, k := range plan {
		if Footprint(k, width) <= uint64(h.L2) {
			fits = append(fits, k)
		} else {
			spills = append(spills, k)
		}
	}
	return append(fits, spills...)
}

func elemBytes(width int) int {
	switch {
	case width <= 8:
		return 1
	case width <= 16:
		return 2
	}
	return 4
}

// FragmentBits returns the fragment width the switchboard generates Mull
// and reduction tables with for a field of the given width.
func FragmentBits(width int) int {
	return fragmentBits(width, tables.MaxMullBits)
}

// fragmentBits returns the largest fragment width no greater than limit
// that divides width.
func fragmentBits(width, limit int) int {
	for b := min(width, limit); b > 1; b-- {
		if width%b == 0 {
			return b
		}
	}
	return 1
}
