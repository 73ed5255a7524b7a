package embedded

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

var descriptorComparer = cmp.Comparer(func(a, b field.Descriptor) bool { return a == b })

func regenerate(t *testing.T, e Entry) tables.Table {
	t.Helper()
	var (
		tbl tables.Table
		err error
	)
	m := e.Table.Meta()
	switch e.Kind {
	case tables.KindFullMul:
		tbl, err = tables.BuildFullMul[uint8](e.Desc, tables.DefaultLimits)
	case tables.KindFullInv:
		tbl, err = tables.BuildFullInv[uint8](e.Desc, tables.DefaultLimits)
	case tables.KindLogExp:
		tbl, err = tables.BuildLogExpWithGenerator[uint8](e.Desc, uint8(m.Generator), tables.DefaultLimits)
	case tables.KindMull:
		tbl, err = tables.BuildMull(e.Bits, tables.DefaultLimits)
	case tables.KindReduction:
		switch m.ElemBits {
		case 16:
			tbl, err = tables.BuildReduction[uint16](e.Desc, e.Bits, tables.DefaultLimits)
		case 32:
			tbl, err = tables.BuildReduction[uint32](e.Desc, e.Bits, tables.DefaultLimits)
		}
	}
	require.NoError(t, err)
	require.NotNil(t, tbl, "no generator for %s", e.Kind)
	return tbl
}

func TestEmbeddedMatchesGenerators(t *testing.T) {
	for _, e := range Catalog() {
		m := e.Table.Meta()
		t.Run(string(e.Kind)+"/"+e.Desc.String(), func(t *testing.T) {
			want := regenerate(t, e)
			assert.Equal(t, want.Digest(), e.Table.Digest())
			if diff := cmp.Diff(want, e.Table, descriptorComparer); diff != "" {
				t.Errorf("embedded %s table differs (-generated +embedded):\n%s", e.Kind, diff)
			}
			assert.Equal(t, m.Entries, e.Table.Len())
		})
	}
}

func TestLookup(t *testing.T) {
	aes := field.MustDescriptor(8, 0x11B)
	rs := field.MustDescriptor(8, 0x11D)
	gf16 := field.MustDescriptor(4, 0x13)

	le, ok := LogExp[uint8](aes)
	require.True(t, ok)
	assert.Equal(t, uint8(3), le.Generator)

	le, ok = LogExp[uint8](rs)
	require.True(t, ok)
	assert.Equal(t, uint8(2), le.Generator)

	_, ok = LogExp[uint16](aes)
	assert.False(t, ok, "tables are only found for the element type they were generated with")

	_, ok = LogExp[uint8](gf16)
	assert.False(t, ok)

	mul, ok := FullMul[uint8](gf16)
	require.True(t, ok)
	assert.Equal(t, uint8(0x0B), mul.Table[0x0A<<4|0x0D])

	_, ok = FullInv[uint8](gf16)
	assert.True(t, ok)

	m, ok := Mull(4)
	require.True(t, ok)
	assert.Equal(t, 4, m.Bits)
	_, ok = Mull(8)
	assert.False(t, ok)

	_, ok = Reduction[uint16](field.MustDescriptor(16, 0x1002B), 8)
	assert.True(t, ok)
	_, ok = Reduction[uint16](field.MustDescriptor(16, 0x1002B), 4)
	assert.False(t, ok)
	_, ok = Reduction[uint32](field.MustDescriptor(32, 0x100400007), 8)
	assert.True(t, ok)
}

func TestCatalogIsACopy(t *testing.T) {
	c := Catalog()
	require.Len(t, c, 7)
	c[0] = Entry{}
	assert.Equal(t, tables.KindFullMul, Catalog()[0].Kind)
}
