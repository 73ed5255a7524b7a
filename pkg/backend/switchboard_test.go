package backend

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

func selectFor[E field.Element](t *testing.T, width int, poly uint64, opts ...Option) (field.Field[E], Selection) {
	t.Helper()
	d, err := field.NewDescriptor(width, poly)
	require.NoError(t, err)
	f, sel := Select[E](d, opts...)
	require.NotNil(t, f)
	assert.Equal(t, d, f.Descriptor(), "the selected field serves the requested descriptor")
	assert.Equal(t, sel.Kind, f.Kind())
	return f, sel
}

func TestDefaultSelection(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		poly   uint64
		kind   field.Kind
		source Source
	}{
		{name: "embedded gf16", width: 4, poly: 0x13, kind: field.KindFullTable, source: SourceEmbedded},
		{name: "generated gf16", width: 4, poly: 0x19, kind: field.KindFullTable, source: SourceGenerated},
		{name: "embedded aes", width: 8, poly: 0x11B, kind: field.KindLogExp, source: SourceEmbedded},
		{name: "embedded reed-solomon", width: 8, poly: 0x11D, kind: field.KindLogExp, source: SourceEmbedded},
		{name: "generated gf256", width: 8, poly: 0x12B, kind: field.KindLogExp, source: SourceGenerated},
		{name: "gf2^5", width: 5, poly: 0x25, kind: field.KindLogExp, source: SourceGenerated},
		{name: "width one", width: 1, poly: 0x3, kind: field.KindFullTable, source: SourceGenerated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, sel := selectFor[uint8](t, tt.width, tt.poly)
			assert.Equal(t, tt.kind, sel.Kind)
			assert.Equal(t, tt.source, sel.Source)
		})
	}
}

func TestDefaultSelectionWide(t *testing.T) {
	_, sel := selectFor[uint16](t, 16, 0x1002B)
	assert.Equal(t, field.KindMullReduction, sel.Kind)
	assert.Equal(t, SourceEmbedded, sel.Source)

	f, sel := selectFor[uint16](t, 16, 0x1002D)
	assert.Equal(t, field.KindMullReduction, sel.Kind)
	assert.Equal(t, SourceGenerated, sel.Source)
	assert.Equal(t, 8, f.(*MullReduction[uint16]).bits)

	f32, sel := selectFor[uint32](t, 32, 0x100400007)
	assert.Equal(t, field.KindMullReduction, sel.Kind)
	assert.Equal(t, SourceEmbedded, sel.Source)
	assert.Equal(t, 4, f32.(*MullReduction[uint32]).bits, "the compiled-in 4-bit fragment table is used as is")

	_, sel = selectFor[uint32](t, 32, 0x1000000AF)
	assert.Equal(t, field.KindMullReduction, sel.Kind)
	assert.Equal(t, SourceGenerated, sel.Source)
}

func TestSelectionPrefersEmbeddedThenGenerated(t *testing.T) {
	_, sel := selectFor[uint8](t, 8, 0x11B, WithoutEmbedded())
	assert.Equal(t, field.KindLogExp, sel.Kind)
	assert.Equal(t, SourceGenerated, sel.Source)

	f, _ := selectFor[uint8](t, 8, 0x11B, WithoutEmbedded())
	assert.Equal(t, uint8(1), f.Mul(0x53, 0xCA))

	// The first plan entry without compiled-in tables is skipped in favour
	// of a later one that has them.
	_, sel = selectFor[uint8](t, 8, 0x11B, WithKinds(field.KindFullTable, field.KindLogExp))
	assert.Equal(t, field.KindLogExp, sel.Kind)
	assert.Equal(t, SourceEmbedded, sel.Source)
	require.NotEmpty(t, sel.Attempts)
	assert.Equal(t, Attempt{Kind: field.KindFullTable, Source: SourceEmbedded, Err: errNotEmbedded}, sel.Attempts[0])
}

func TestSelectionKinds(t *testing.T) {
	_, sel := selectFor[uint8](t, 8, 0x11D, WithKinds(field.KindReference, field.KindLogExp))
	assert.Equal(t, field.KindReference, sel.Kind)
	assert.Equal(t, SourceReference, sel.Source)
	assert.Empty(t, sel.Attempts)

	_, sel = selectFor[uint8](t, 8, 0x11D, WithKinds(field.KindMullReduction))
	assert.Equal(t, field.KindMullReduction, sel.Kind)

	_, sel = selectFor[uint8](t, 8, 0x11D, WithKinds(field.KindFullTable), WithoutEmbedded())
	assert.Equal(t, field.KindFullTable, sel.Kind)

	_, sel = selectFor[uint16](t, 16, 0x1002D, WithKinds(field.KindFullTable))
	assert.Equal(t, field.KindReference, sel.Kind)
	last := sel.Attempts[len(sel.Attempts)-1]
	assert.Equal(t, SourceGenerated, last.Source)
	assert.True(t, errors.Is(last.Err, field.ErrTableTooLarge))
}

func TestSelectionLimits(t *testing.T) {
	f, sel := selectFor[uint8](t, 8, 0x11D, WithoutEmbedded(), WithLimits(tables.Limits{MaxTableBits: 4}))
	assert.Equal(t, field.KindReference, sel.Kind)
	require.Len(t, sel.Attempts, 3)
	for _, a := range sel.Attempts {
		assert.Equal(t, SourceGenerated, a.Source)
		assert.True(t, errors.Is(a.Err, field.ErrTableTooLarge), "%s: %v", a.Kind, a.Err)
	}
	assert.IsType(t, &field.Reference[uint8]{}, f)

	_, sel = selectFor[uint8](t, 8, 0x11D, WithoutEmbedded(), WithLimits(tables.Limits{MaxTableBits: 8}))
	assert.Equal(t, field.KindLogExp, sel.Kind)
}

func TestSelectionReduciblePolynomial(t *testing.T) {
	f, sel := selectFor[uint8](t, 4, 0x15)
	assert.Equal(t, field.KindMullReduction, sel.Kind)

	var sawInvertible, sawPrimitive bool
	for _, a := range sel.Attempts {
		sawInvertible = sawInvertible || errors.Is(a.Err, field.ErrNotInvertible)
		sawPrimitive = sawPrimitive || errors.Is(a.Err, field.ErrNotPrimitive)
	}
	assert.True(t, sawInvertible)
	assert.True(t, sawPrimitive)

	_, err := f.Inv(0x7)
	assert.ErrorIs(t, err, field.ErrNotInvertible)
}

func TestSelectionSharesCache(t *testing.T) {
	c := tables.NewCache()
	a, _ := selectFor[uint16](t, 16, 0x1002D, WithCache(c))
	b, _ := selectFor[uint16](t, 16, 0x1002D, WithCache(c))
	assert.Equal(t, int64(2), c.Builds(), "one mull and one reduction table")
	assert.Equal(t, a.Mul(0x1234, 0x5678), b.Mul(0x1234, 0x5678))

	_, _ = selectFor[uint16](t, 16, 0x1100B, WithCache(c))
	assert.Equal(t, int64(3), c.Builds(), "the mull table does not depend on the polynomial")
}

func TestSelectionLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _ = selectFor[uint8](t, 8, 0x12B, WithLogger(logger), WithSelfCheck(0))
	assert.Contains(t, buf.String(), "backend selected")
	assert.Contains(t, buf.String(), `"kind":"log-exp"`)
	assert.Contains(t, buf.String(), `"source":"generated"`)
}

func TestSelectionHost(t *testing.T) {
	tiny := Host{L2: 100}
	assert.Equal(t, []field.Kind{field.KindLogExp, field.KindFullTable, field.KindMullReduction}, tiny.Plan(4))
	assert.Equal(t, DefaultPlan(4), Host{}.Plan(4), "unknown cache sizes leave the plan alone")

	_, sel := selectFor[uint8](t, 4, 0x13, WithHost(tiny), WithoutEmbedded())
	assert.Equal(t, field.KindLogExp, sel.Kind)

	_, sel = selectFor[uint8](t, 4, 0x13, WithHost(Host{L2: 1 << 20}), WithoutEmbedded())
	assert.Equal(t, field.KindFullTable, sel.Kind)
}

func TestNewErrors(t *testing.T) {
	_, err := New[uint8](16, 0x1002B)
	assert.True(t, errors.Is(err, field.ErrUnsupportedWidth))

	_, err = New[uint32](33, 1<<33|0x8D)
	assert.True(t, errors.Is(err, field.ErrUnsupportedWidth))

	_, err = New4(0x11B)
	assert.True(t, errors.Is(err, field.ErrInvalidPolynomial))

	_, err = NewChecked[uint8](8, 0x11B, field.CheckPrimitive)
	assert.True(t, errors.Is(err, field.ErrNotPrimitive))

	_, err = NewChecked[uint8](4, 0x15, field.CheckIrreducible)
	assert.True(t, errors.Is(err, field.ErrInvalidPolynomial))

	f, err := NewChecked[uint8](8, 0x11B, field.CheckIrreducible)
	require.NoError(t, err)
	assert.Equal(t, field.KindLogExp, f.Kind())

	assert.Panics(t, func() { Select[uint8](field.MustDescriptor(16, 0x1002B)) })
}

func TestTypedConstructors(t *testing.T) {
	f4, err := New4(0x13)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), f4.Order())

	f8, err := New8(0x11D)
	require.NoError(t, err)
	assert.Equal(t, uint64(256), f8.Order())

	f16, err := New16(0x1002B)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<16), f16.Order())

	f32, err := New32(0x100400007)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x808E945D), f32.Mul(0x12345678, 0x9ABCDEF0))
}
