package tables

import (
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/gf2"
)

var descriptorComparer = cmp.Comparer(func(a, b field.Descriptor) bool { return a == b })

func ref[E field.Element](t *testing.T, d field.Descriptor) *field.Reference[E] {
	t.Helper()
	r, err := field.NewReference[E](d)
	require.NoError(t, err)
	return r
}

func TestBuildLogExp(t *testing.T) {
	d := field.MustDescriptor(8, 0x11D)
	le, err := BuildLogExp[uint8](d, DefaultLimits)
	require.NoError(t, err)

	require.Len(t, le.Log, 256)
	require.Len(t, le.Exp, 510)
	assert.Equal(t, uint8(2), le.Generator)
	assert.Equal(t, uint8(255), le.Log[0], "zero maps to the sentinel")
	assert.Equal(t, uint8(0), le.Log[1])
	assert.Equal(t, uint8(1), le.Exp[0])
	assert.Equal(t, uint8(2), le.Exp[1])

	for a := 1; a < 256; a++ {
		require.Equal(t, uint8(a), le.Exp[le.Log[a]], "exp(log(a)) = a")
	}
	for i := 0; i < 255; i++ {
		require.Equal(t, le.Exp[i], le.Exp[i+255], "exp is doubled")
	}

	seen := map[uint8]bool{}
	for _, l := range le.Log[1:] {
		require.False(t, seen[l], "log is injective")
		seen[l] = true
	}
}

func TestBuildLogExpNotPrimitive(t *testing.T) {
	tests := []struct {
		name  string
		width int
		poly  uint64
	}{
		{name: "aes polynomial", width: 8, poly: 0x11B},
		{name: "irreducible gf16", width: 4, poly: 0x1F},
		{name: "reducible", width: 4, poly: 0x15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLogExp[uint8](field.MustDescriptor(tt.width, tt.poly), DefaultLimits)
			assert.True(t, errors.Is(err, field.ErrNotPrimitive), "got %v", err)
		})
	}
}

func TestBuildLogExpWithGenerator(t *testing.T) {
	d := field.MustDescriptor(8, 0x11B)
	le, err := BuildLogExpWithGenerator[uint8](d, 3, DefaultLimits)
	require.NoError(t, err)
	r := ref[uint8](t, d)

	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b += 3 {
			got := le.Exp[int(le.Log[a])+int(le.Log[b])]
			require.Equal(t, r.Mul(uint8(a), uint8(b)), got)
		}
	}

	_, err = BuildLogExpWithGenerator[uint8](d, 2, DefaultLimits)
	assert.True(t, errors.Is(err, field.ErrNotPrimitive))
	_, err = BuildLogExpWithGenerator[uint8](d, 0, DefaultLimits)
	assert.True(t, errors.Is(err, field.ErrNotPrimitive))
}

func TestBuildLogExpWidthOne(t *testing.T) {
	le, err := BuildLogExp[uint8](field.MustDescriptor(1, 0x3), DefaultLimits)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 0}, le.Log)
	assert.Equal(t, []uint8{1, 1}, le.Exp)
}

func TestBuildLogExpGF2_16(t *testing.T) {
	d := field.MustDescriptor(16, 0x1002D)
	le, err := BuildLogExp[uint16](d, DefaultLimits)
	require.NoError(t, err)
	r := ref[uint16](t, d)

	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 2000; i++ {
		a, b := uint16(rng.Uint32()|1), uint16(rng.Uint32()|1)
		require.Equal(t, r.Mul(a, b), le.Exp[int(le.Log[a])+int(le.Log[b])])
	}
}

func TestBuildFullTables(t *testing.T) {
	d := field.MustDescriptor(4, 0x13)
	mul, err := BuildFullMul[uint8](d, DefaultLimits)
	require.NoError(t, err)
	inv, err := BuildFullInv[uint8](d, DefaultLimits)
	require.NoError(t, err)
	r := ref[uint8](t, d)

	require.Len(t, mul.Table, 256)
	require.Len(t, inv.Table, 16)
	assert.Equal(t, uint8(0x0B), mul.Table[0x0A<<4|0x0D])
	assert.Equal(t, uint8(0), inv.Table[0])

	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			require.Equal(t, r.Mul(a, b), mul.Table[int(a)<<4|int(b)])
		}
		if a != 0 {
			require.Equal(t, uint8(1), r.Mul(a, inv.Table[a]))
		}
	}
}

func TestBuildFullInvReducible(t *testing.T) {
	_, err := BuildFullInv[uint8](field.MustDescriptor(4, 0x15), DefaultLimits)
	assert.True(t, errors.Is(err, field.ErrNotInvertible))
}

func TestLimits(t *testing.T) {
	d16 := field.MustDescriptor(16, 0x1002B)

	_, err := BuildFullMul[uint16](d16, DefaultLimits)
	assert.True(t, errors.Is(err, field.ErrTableTooLarge))

	_, err = BuildLogExp[uint8](field.MustDescriptor(8, 0x11D), Limits{MaxTableBits: 7})
	assert.True(t, errors.Is(err, field.ErrTableTooLarge))

	_, err = BuildMull(8, Limits{MaxTableBits: 15})
	assert.True(t, errors.Is(err, field.ErrTableTooLarge))

	_, err = BuildReduction[uint16](d16, 16, Limits{MaxTableBits: 12})
	assert.True(t, errors.Is(err, field.ErrTableTooLarge))

	assert.Equal(t, 16, IndexBits(KindFullMul, 8, 0))
	assert.Equal(t, 8, IndexBits(KindMull, 32, 4))
	assert.Equal(t, 8, IndexBits(KindReduction, 32, 8))
	assert.Equal(t, 16, IndexBits(KindLogExp, 16, 0))
	assert.NoError(t, Limits{}.Allow(KindLogExp, 16, 0), "zero limits mean the defaults")
}

func TestLimitsAreClamped(t *testing.T) {
	huge := Limits{MaxTableBits: 64}

	// A full GF(2^32) product table has 2^64 entries.
	_, err := BuildFullMul[uint32](field.MustDescriptor(32, 0x100400007), huge)
	assert.True(t, errors.Is(err, field.ErrTableTooLarge))
	assert.True(t, errors.Is(huge.Allow(KindFullMul, 17, 0), field.ErrTableTooLarge))
	assert.True(t, errors.Is(huge.Allow(KindLogExp, 33, 0), field.ErrTableTooLarge))

	assert.NoError(t, huge.Allow(KindFullMul, 16, 0))
	assert.NoError(t, huge.Allow(KindLogExp, 32, 0))
}

func TestBuildMull(t *testing.T) {
	for bits := 1; bits <= MaxMullBits; bits++ {
		m, err := BuildMull(bits, DefaultLimits)
		require.NoError(t, err)
		require.Len(t, m.Table, 1<<(2*bits))

		size := uint32(1) << bits
		for x := uint32(0); x < size; x += 3 {
			for y := uint32(0); y < size; y += 5 {
				require.Equal(t, gf2.CarrylessMul(x, y), uint64(m.Table[x<<bits|y]))
			}
		}
	}

	m, err := BuildMull(4, DefaultLimits)
	require.NoError(t, err)
	assert.True(t, m.Fits(32))
	assert.True(t, m.Fits(8))
	assert.False(t, m.Fits(6))

	for _, bits := range []int{0, 9, -1} {
		_, err := BuildMull(bits, DefaultLimits)
		assert.True(t, errors.Is(err, field.ErrInvalidFragment), "bits=%d", bits)
	}
}

func TestMullAssemblesWideByNibbleProducts(t *testing.T) {
	m, err := BuildMull(4, DefaultLimits)
	require.NoError(t, err)

	// An 8-bit by 4-bit product is two nibble lookups, and a 32-bit by
	// 8-bit product is sixteen.
	for _, tt := range []struct{ a, b uint32 }{
		{0x12345678, 0x9a},
		{0xffffffff, 0xff},
		{0xa7, 0x5},
		{0x80000001, 0x81},
	} {
		var got uint64
		for i := 0; i < 32; i += 4 {
			for j := 0; j < 8; j += 4 {
				x, y := tt.a>>i&0xf, tt.b>>j&0xf
				got ^= uint64(m.Table[x<<4|y]) << (i + j)
			}
		}
		assert.Equal(t, gf2.CarrylessMul(tt.a, tt.b), got, "%#x * %#x", tt.a, tt.b)
	}
}

func TestReduction(t *testing.T) {
	tests := []struct {
		width int
		poly  uint64
		bits  []int
	}{
		{width: 4, poly: 0x13, bits: []int{1, 2, 4}},
		{width: 8, poly: 0x11B, bits: []int{1, 2, 4, 8}},
		{width: 16, poly: 0x1002B, bits: []int{1, 4, 8, 16}},
		{width: 32, poly: 0x100400007, bits: []int{4, 8, 16}},
	}

	rng := rand.New(rand.NewPCG(5, 6))
	for _, tt := range tests {
		d := field.MustDescriptor(tt.width, tt.poly)
		r := ref[uint32](t, d)
		for _, bits := range tt.bits {
			red, err := BuildReduction[uint32](d, bits, DefaultLimits)
			require.NoError(t, err, "%s bits=%d", d, bits)

			assert.Equal(t, uint32(gf2.Reduce(uint64(1)<<tt.width, tt.poly)), red.Table[1])
			for i := 0; i < 500; i++ {
				a := rng.Uint32() & uint32(d.Mask())
				b := rng.Uint32() & uint32(d.Mask())
				require.Equal(t, r.Mul(a, b), red.Reduce(gf2.CarrylessMul(a, b)), "%s bits=%d a=%#x b=%#x", d, bits, a, b)
			}
		}
	}
}

func TestReductionBadFragment(t *testing.T) {
	d := field.MustDescriptor(16, 0x1002B)
	for _, bits := range []int{0, 3, 5, 32} {
		_, err := BuildReduction[uint16](d, bits, DefaultLimits)
		assert.True(t, errors.Is(err, field.ErrInvalidFragment), "bits=%d", bits)
	}
	_, err := BuildReduction[uint8](d, 8, DefaultLimits)
	assert.True(t, errors.Is(err, field.ErrUnsupportedWidth))
}

func TestDigestDeterministic(t *testing.T) {
	d := field.MustDescriptor(8, 0x11D)
	a, err := BuildFullMul[uint8](d, DefaultLimits)
	require.NoError(t, err)
	b, err := BuildFullMul[uint8](d, DefaultLimits)
	require.NoError(t, err)
	assert.Equal(t, a.Digest(), b.Digest())

	other, err := BuildFullMul[uint8](field.MustDescriptor(8, 0x11B), DefaultLimits)
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest(), other.Digest())

	wide, err := BuildFullMul[uint16](d, DefaultLimits)
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest(), wide.Digest(), "element size is part of the digest")

	parsed, ok := ParseDigest(a.Digest().String())
	require.True(t, ok)
	assert.Equal(t, a.Digest(), parsed)
	_, ok = ParseDigest("abc")
	assert.False(t, ok)
}

func TestDecodeRoundTrip(t *testing.T) {
	d8 := field.MustDescriptor(8, 0x11D)
	d32 := field.MustDescriptor(32, 0x100400007)

	logexp, err := BuildLogExp[uint8](d8, DefaultLimits)
	require.NoError(t, err)
	inv, err := BuildFullInv[uint16](d8, DefaultLimits)
	require.NoError(t, err)
	mul, err := BuildFullMul[uint8](field.MustDescriptor(4, 0x13), DefaultLimits)
	require.NoError(t, err)
	mull, err := BuildMull(4, DefaultLimits)
	require.NoError(t, err)
	red, err := BuildReduction[uint32](d32, 8, DefaultLimits)
	require.NoError(t, err)

	for _, tbl := range []Table{logexp, inv, mul, mull, red} {
		t.Run(string(tbl.Meta().Kind), func(t *testing.T) {
			body := AppendBody(nil, tbl)
			assert.Equal(t, Footprint(tbl), uint64(len(body)))

			got, err := Decode(tbl.Meta(), body)
			require.NoError(t, err)
			assert.Equal(t, tbl.Digest(), got.Digest())
			if diff := cmp.Diff(tbl, got, descriptorComparer); diff != "" {
				t.Errorf("decoded table differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeCorrupt(t *testing.T) {
	mull, err := BuildMull(2, DefaultLimits)
	require.NoError(t, err)
	body := AppendBody(nil, mull)

	tests := []struct {
		name string
		meta Meta
		body []byte
	}{
		{name: "short body", meta: mull.Meta(), body: body[:len(body)-1]},
		{name: "element size", meta: Meta{Kind: KindMull, Bits: 2, ElemBits: 12, Entries: 16}, body: body},
		{name: "mull in bytes", meta: Meta{Kind: KindMull, Bits: 2, ElemBits: 8, Entries: 16}, body: body[:16]},
		{name: "entry count", meta: Meta{Kind: KindMull, Bits: 3, ElemBits: 16, Entries: 16}, body: body},
		{name: "unknown kind", meta: Meta{Kind: "sbox", Width: 4, Poly: 0x13, ElemBits: 8, Entries: 16}, body: make([]byte, 16)},
		{name: "bad polynomial", meta: Meta{Kind: KindFullInv, Width: 4, Poly: 0x3, ElemBits: 8, Entries: 16}, body: make([]byte, 16)},
		{name: "inverse size", meta: Meta{Kind: KindFullInv, Width: 4, Poly: 0x13, ElemBits: 8, Entries: 8}, body: make([]byte, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.meta, tt.body)
			assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
		})
	}
}
