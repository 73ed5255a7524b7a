package backend

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
	"github.com/Davincible/guff/pkg/tables/embedded"
)

// Source says where a backend's tables came from.
type Source string

const (
	SourceEmbedded  Source = "embedded"
	SourceGenerated Source = "generated"
	SourceReference Source = "reference"
)

// Attempt records a candidate the switchboard tried and why it was
// rejected.
type Attempt struct {
	Kind   field.Kind
	Source Source
	Err    error
}

// Selection explains which backend was chosen for a field.
type Selection struct {
	Kind     field.Kind
	Source   Source
	Attempts []Attempt
}

// DefaultPlan returns the backend kinds tried for a field of the given
// width, most preferred first.
func DefaultPlan(width int) []field.Kind {
	switch {
	case width <= 4:
		return []field.Kind{field.KindFullTable, field.KindLogExp, field.KindMullReduction}
	case width <= 8:
		return []field.Kind{field.KindLogExp, field.KindFullTable, field.KindMullReduction}
	case width <= 16:
		return []field.Kind{field.KindMullReduction, field.KindLogExp}
	}
	return []field.Kind{field.KindMullReduction}
}

// New returns arithmetic for GF(2^width) reduced by poly, which includes
// its x^width term. Only the degree of poly is checked; see NewChecked.
func New[E field.Element](width int, poly uint64, opts ...Option) (field.Field[E], error) {
	d, err := field.NewDescriptor(width, poly)
	if err != nil {
		return nil, err
	}
	if err := field.CheckElement[E](d); err != nil {
		return nil, err
	}
	f, _ := Select[E](d, opts...)
	return f, nil
}

// NewChecked is New with irreducibility or primitivity checks.
func NewChecked[E field.Element](width int, poly uint64, checks field.Check, opts ...Option) (field.Field[E], error) {
	d, err := field.NewCheckedDescriptor(width, poly, checks)
	if err != nil {
		return nil, err
	}
	if err := field.CheckElement[E](d); err != nil {
		return nil, err
	}
	f, _ := Select[E](d, opts...)
	return f, nil
}

// New4 returns arithmetic in GF(2^4).
func New4(poly uint64, opts ...Option) (field.Field[uint8], error) {
	return New[uint8](4, poly, opts...)
}

// New8 returns arithmetic in GF(2^8).
func New8(poly uint64, opts ...Option) (field.Field[uint8], error) {
	return New[uint8](8, poly, opts...)
}

// New16 returns arithmetic in GF(2^16).
func New16(poly uint64, opts ...Option) (field.Field[uint16], error) {
	return New[uint16](16, poly, opts...)
}

// New32 returns arithmetic in GF(2^32).
func New32(poly uint64, opts ...Option) (field.Field[uint32], error) {
	return New[uint32](32, poly, opts...)
}

// Select picks a backend for d. Compiled-in tables are preferred, then
// tables generated within the configured limits, then the reference
// implementation, so Select always returns a usable field. It panics if
// d is not a valid descriptor for E.
func Select[E field.Element](d field.Descriptor, opts ...Option) (field.Field[E], Selection) {
	ref, err := field.NewReference[E](d)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "selecting a backend"))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := switchboard[E]{o: &o, d: d, ref: ref}
	return s.run()
}

type switchboard[E field.Element] struct {
	o   *options
	d   field.Descriptor
	ref *field.Reference[E]
	sel Selection
}

func (s *switchboard[E]) plan() []field.Kind {
	plan := DefaultPlan(s.d.Width())
	if s.o.kinds != nil {
		plan = nil
		for _, k := range s.o.kinds {
			if k == field.KindReference {
				break
			}
			plan = append(plan, k)
		}
	}
	if s.o.host != nil {
		plan = s.o.host.demote(plan, s.d.Width())
	}
	return plan
}

func (s *switchboard[E]) run() (field.Field[E], Selection) {
	plan := s.plan()

	if s.o.embedded {
		for _, k := range plan {
			if f, ok := s.try(k, SourceEmbedded, s.fromEmbedded); ok {
				return f, s.sel
			}
		}
	}
	for _, k := range plan {
		if f, ok := s.try(k, SourceGenerated, s.generate); ok {
			return f, s.sel
		}
	}

	s.sel.Kind, s.sel.Source = field.KindReference, SourceReference
	s.o.log().Debug("using reference arithmetic", "field", s.d.String(), "attempts", len(s.sel.Attempts))
	return s.ref, s.sel
}

var errNotEmbedded = errors.New("no compiled-in tables")

func (s *switchboard[E]) try(
	k field.Kind, src Source, build func(field.Kind) (field.Field[E], error),
) (field.Field[E], bool) {
	log := s.o.log()
	f, err := build(k)
	if err == nil && s.o.selfCheck > 0 {
		if err = Validate[E](f, s.ref, s.o.selfCheck); err != nil {
			log.LogAttrs(context.Background(), slog.LevelError, "backend failed self-check",
				slog.String("field", s.d.String()), slog.String("kind", string(k)),
				slog.String("source", string(src)), slog.Any("error", err))
		}
	}
	if err != nil {
		s.sel.Attempts = append(s.sel.Attempts, Attempt{Kind: k, Source: src, Err: err})
		if !errors.Is(err, errNotEmbedded) {
			log.Debug("backend rejected", "field", s.d.String(), "kind", k, "source", src, "error", err)
		}
		return nil, false
	}
	s.sel.Kind, s.sel.Source = k, src
	log.Debug("backend selected", "field", s.d.String(), "kind", k, "source", src)
	return f, true
}

func (s *switchboard[E]) fromEmbedded(k field.Kind) (field.Field[E], error) {
	d := s.d
	switch k {
	case field.KindLogExp:
		if t, ok := embedded.LogExp[E](d); ok {
			return NewLogExp(t)
		}
	case field.KindFullTable:
		mul, okMul := embedded.FullMul[E](d)
		inv, okInv := embedded.FullInv[E](d)
		if okMul && okInv {
			return NewFullTable(mul, inv)
		}
	case field.KindMullReduction:
		m, red := s.embeddedMullReduction()
		if m != nil && red != nil {
			return NewMullReduction(m, red)
		}
	default:
		return nil, errors.Newf("unknown backend kind %q", k)
	}
	return nil, errNotEmbedded
}

func (s *switchboard[E]) embeddedMullReduction() (*tables.Mull, *tables.Reduction[E]) {
	var (
		m   *tables.Mull
		red *tables.Reduction[E]
	)
	w := s.d.Width()
	for b := min(w, tables.MaxMullBits); b >= 1 && m == nil; b-- {
		if w%b == 0 {
			m, _ = embedded.Mull(b)
		}
	}
	for b := w; b >= 1 && red == nil; b-- {
		if w%b == 0 {
			red, _ = embedded.Reduction[E](s.d, b)
		}
	}
	return m, red
}

func (s *switchboard[E]) generate(k field.Kind) (field.Field[E], error) {
	d, lim, c := s.d, s.o.limits, s.o.cache
	switch k {
	case field.KindLogExp:
		t, err := tables.CachedLogExp[E](c, d, lim)
		if errors.Is(err, field.ErrNotPrimitive) && d.IsIrreducible() {
			var g uint64
			if g, err = d.FindGenerator(); err == nil {
				t, err = tables.CachedLogExpWithGenerator(c, d, E(g), lim)
			}
		}
		if err != nil {
			return nil, err
		}
		return NewLogExp(t)
	case field.KindFullTable:
		mul, err := tables.CachedFullMul[E](c, d, lim)
		if err != nil {
			return nil, err
		}
		inv, err := tables.CachedFullInv[E](c, d, lim)
		if err != nil {
			return nil, err
		}
		return NewFullTable(mul, inv)
	case field.KindMullReduction:
		m, err := tables.CachedMull(c, FragmentBits(d.Width()), lim)
		if err != nil {
			return nil, err
		}
		red, err := tables.CachedReduction[E](c, d, FragmentBits(d.Width()), lim)
		if err != nil {
			return nil, err
		}
		return NewMullReduction(m, red)
	}
	return nil, errors.Newf("unknown backend kind %q", k)
}
