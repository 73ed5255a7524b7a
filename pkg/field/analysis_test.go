package field

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIrreducibleAndPrimitive(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		poly        uint64
		irreducible bool
		primitive   bool
	}{
		{name: "x+1", width: 1, poly: 0x3, irreducible: true, primitive: true},
		{name: "x", width: 1, poly: 0x2, irreducible: true, primitive: false},
		{name: "x^2+x+1", width: 2, poly: 0x7, irreducible: true, primitive: true},
		{name: "x^2+1", width: 2, poly: 0x5, irreducible: false},
		{name: "x^4+x+1", width: 4, poly: 0x13, irreducible: true, primitive: true},
		{name: "x^4+x^3+1", width: 4, poly: 0x19, irreducible: true, primitive: true},
		{name: "x^4+x^3+x^2+x+1", width: 4, poly: 0x1F, irreducible: true, primitive: false},
		{name: "square of x^2+x+1", width: 4, poly: 0x15, irreducible: false},
		{name: "aes", width: 8, poly: 0x11B, irreducible: true, primitive: false},
		{name: "reed-solomon", width: 8, poly: 0x11D, irreducible: true, primitive: true},
		{name: "gf2^16 0x1002b", width: 16, poly: 0x1002B, irreducible: true, primitive: false},
		{name: "gf2^16 0x1002d", width: 16, poly: 0x1002D, irreducible: true, primitive: true},
		{name: "gf2^16 0x1100b", width: 16, poly: 0x1100B, irreducible: true, primitive: true},
		{name: "gf2^32 0x100400007", width: 32, poly: 0x100400007, irreducible: true, primitive: true},
		{name: "gf2^32 0x1000000af", width: 32, poly: 0x1000000AF, irreducible: true, primitive: true},
		{name: "gf2^32 0x10000008d", width: 32, poly: 0x10000008D, irreducible: true, primitive: false},
		{name: "gf2^32 x^32+1", width: 32, poly: 0x100000001, irreducible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MustDescriptor(tt.width, tt.poly)
			assert.Equal(t, tt.irreducible, d.IsIrreducible())
			assert.Equal(t, tt.primitive, d.IsPrimitive())
		})
	}
}

func TestElementOrder(t *testing.T) {
	aes := MustDescriptor(8, 0x11B)
	assert.Equal(t, uint64(51), aes.ElementOrder(2))
	assert.Equal(t, uint64(255), aes.ElementOrder(3))
	assert.Equal(t, uint64(1), aes.ElementOrder(1))
	assert.Equal(t, uint64(0), aes.ElementOrder(0))

	assert.Equal(t, uint64(5), MustDescriptor(4, 0x1F).ElementOrder(2))
	assert.Equal(t, uint64(21845), MustDescriptor(16, 0x1002B).ElementOrder(2))

	// Under a reducible polynomial a zero divisor never reaches 1.
	assert.Equal(t, uint64(0), MustDescriptor(4, 0x15).ElementOrder(0x7))
}

func TestElementOrderDividesGroupOrder(t *testing.T) {
	d := MustDescriptor(8, 0x11D)
	for g := uint64(1); g < 256; g++ {
		ord := d.ElementOrder(g)
		require.NotZero(t, ord)
		require.Zero(t, d.GroupOrder()%ord, "g=%#x ord=%d", g, ord)
	}
}

func TestFindGenerator(t *testing.T) {
	tests := []struct {
		width int
		poly  uint64
		want  uint64
	}{
		{width: 1, poly: 0x3, want: 1},
		{width: 4, poly: 0x13, want: 2},
		{width: 4, poly: 0x1F, want: 3},
		{width: 8, poly: 0x11B, want: 3},
		{width: 8, poly: 0x11D, want: 2},
		{width: 16, poly: 0x1002B, want: 3},
		{width: 32, poly: 0x100400007, want: 2},
	}

	for _, tt := range tests {
		d := MustDescriptor(tt.width, tt.poly)
		t.Run(d.String(), func(t *testing.T) {
			g, err := d.FindGenerator()
			require.NoError(t, err)
			assert.Equal(t, tt.want, g)
			assert.True(t, d.IsGenerator(g))
			assert.Equal(t, d.GroupOrder(), d.ElementOrder(g))
		})
	}

	_, err := MustDescriptor(4, 0x15).FindGenerator()
	assert.True(t, errors.Is(err, ErrInvalidPolynomial))
}

func TestIsGeneratorBounds(t *testing.T) {
	d := MustDescriptor(8, 0x11D)
	assert.False(t, d.IsGenerator(0))
	assert.False(t, d.IsGenerator(0x102), "values above the mask are not elements")
	assert.True(t, d.IsGenerator(2))
}
