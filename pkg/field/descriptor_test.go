package field

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDescriptor(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		poly    uint64
		wantErr error
	}{
		{name: "gf16", width: 4, poly: 0x13},
		{name: "aes", width: 8, poly: 0x11B},
		{name: "gf2^32", width: 32, poly: 0x100400007},
		{name: "width one", width: 1, poly: 0x3},
		{name: "degree too low", width: 8, poly: 0x1B, wantErr: ErrInvalidPolynomial},
		{name: "degree too high", width: 4, poly: 0x11B, wantErr: ErrInvalidPolynomial},
		{name: "zero polynomial", width: 4, poly: 0, wantErr: ErrInvalidPolynomial},
		{name: "zero width", width: 0, poly: 0x1, wantErr: ErrUnsupportedWidth},
		{name: "too wide", width: 33, poly: 1<<33 | 0x8D, wantErr: ErrUnsupportedWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDescriptor(tt.width, tt.poly)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.True(t, d.IsZero(), "nothing is constructed on failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, d.Width())
			assert.Equal(t, tt.poly, d.FullPoly())
		})
	}
}

func TestDescriptorAccessors(t *testing.T) {
	d := MustDescriptor(8, 0x11B)

	assert.Equal(t, uint64(0x1B), d.Poly())
	assert.Equal(t, uint64(0x11B), d.FullPoly())
	assert.Equal(t, uint64(256), d.Order())
	assert.Equal(t, uint64(255), d.GroupOrder())
	assert.Equal(t, uint64(0xFF), d.Mask())
	assert.Equal(t, "GF(2^8)/0x11b", d.String())

	wide := MustDescriptor(32, 0x100400007)
	assert.Equal(t, uint64(1)<<32, wide.Order())
	assert.Equal(t, uint64(0x400007), wide.Poly())

	assert.Equal(t, d, MustDescriptor(8, 0x11B), "descriptors compare by value")
	assert.Panics(t, func() { MustDescriptor(8, 0x13) })
}

func TestNewCheckedDescriptor(t *testing.T) {
	_, err := NewCheckedDescriptor(4, 0x15, CheckIrreducible)
	assert.True(t, errors.Is(err, ErrInvalidPolynomial))

	_, err = NewCheckedDescriptor(4, 0x15, CheckPrimitive)
	assert.True(t, errors.Is(err, ErrInvalidPolynomial), "irreducibility is checked first")

	d, err := NewCheckedDescriptor(4, 0x1F, CheckIrreducible)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Width())

	_, err = NewCheckedDescriptor(4, 0x1F, CheckPrimitive)
	assert.True(t, errors.Is(err, ErrNotPrimitive))

	_, err = NewCheckedDescriptor(8, 0x11B, CheckPrimitive)
	assert.True(t, errors.Is(err, ErrNotPrimitive))

	_, err = NewCheckedDescriptor(8, 0x11D, CheckPrimitive)
	assert.NoError(t, err)

	_, err = NewCheckedDescriptor(8, 0x13, CheckPrimitive)
	assert.True(t, errors.Is(err, ErrInvalidPolynomial), "degree is checked before anything else")
}

func TestCheckElement(t *testing.T) {
	assert.NoError(t, CheckElement[uint8](MustDescriptor(8, 0x11B)))
	assert.NoError(t, CheckElement[uint32](MustDescriptor(8, 0x11B)), "wider element types are allowed")
	assert.True(t, errors.Is(CheckElement[uint8](MustDescriptor(16, 0x1002B)), ErrUnsupportedWidth))
	assert.True(t, errors.Is(CheckElement[uint16](MustDescriptor(32, 0x100400007)), ErrUnsupportedWidth))
	assert.True(t, errors.Is(CheckElement[uint8](Descriptor{}), ErrUnsupportedWidth))

	assert.Equal(t, 8, ElementBits[uint8]())
	assert.Equal(t, 16, ElementBits[uint16]())
	assert.Equal(t, 32, ElementBits[uint32]())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(string(k))
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("simd")
	assert.False(t, ok)
}
