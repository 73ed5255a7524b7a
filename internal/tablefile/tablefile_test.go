package tablefile

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/guff/pkg/field"
	"github.com/Davincible/guff/pkg/tables"
)

func sampleTables(t *testing.T) []tables.Table {
	t.Helper()
	lim := tables.DefaultLimits

	le, err := tables.BuildLogExp[uint16](field.MustDescriptor(16, 0x1002D), lim)
	require.NoError(t, err)
	mul, err := tables.BuildFullMul[uint8](field.MustDescriptor(4, 0x13), lim)
	require.NoError(t, err)
	inv, err := tables.BuildFullInv[uint8](field.MustDescriptor(8, 0x11B), lim)
	require.NoError(t, err)
	m, err := tables.BuildMull(8, lim)
	require.NoError(t, err)
	red, err := tables.BuildReduction[uint32](field.MustDescriptor(32, 0x100400007), 8, lim)
	require.NoError(t, err)
	return []tables.Table{le, mul, inv, m, red}
}

func TestRoundTrip(t *testing.T) {
	for _, tbl := range sampleTables(t) {
		t.Run(string(tbl.Meta().Kind), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tbl))
			assert.True(t, strings.HasPrefix(buf.String(), Magic))

			got, hdr, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, tbl.Meta(), hdr.Meta)
			assert.Equal(t, tbl.Digest().String(), hdr.Digest)
			assert.Equal(t, tbl.Digest(), got.Digest())
			assert.IsType(t, tbl, got)
		})
	}
}

func TestFileSaveLoad(t *testing.T) {
	tbl := sampleTables(t)[0]
	f := New(filepath.Join(t.TempDir(), "out", "gf2e16x1002d.tbl"))
	assert.False(t, f.Exists())

	require.NoError(t, f.Save(tbl))
	assert.True(t, f.Exists())

	got, hdr, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, tables.KindLogExp, hdr.Kind)
	le, ok := got.(*tables.LogExp[uint16])
	require.True(t, ok)
	assert.Equal(t, uint16(2), le.Generator)
	assert.Equal(t, tbl.Digest(), got.Digest())

	// Saving again replaces the file.
	require.NoError(t, f.Save(sampleTables(t)[1]))
	got, _, err = f.Load()
	require.NoError(t, err)
	assert.Equal(t, tables.KindFullMul, got.Meta().Kind)

	_, _, err = New(filepath.Join(t.TempDir(), "missing.tbl")).Load()
	assert.Error(t, err)
}

// rewrite re-encodes a table file with a modified header.
func rewrite(t *testing.T, data []byte, edit func(*Header)) []byte {
	t.Helper()
	n := binary.LittleEndian.Uint32(data[len(Magic):])
	start := len(Magic) + 4
	var hdr Header
	require.NoError(t, json.Unmarshal(data[start:start+int(n)], &hdr))
	edit(&hdr)

	raw, err := json.Marshal(hdr)
	require.NoError(t, err)
	out := binary.LittleEndian.AppendUint32([]byte(Magic), uint32(len(raw)))
	out = append(out, raw...)
	return append(out, data[start+int(n):]...)
}

func TestDecodeRejectsDamage(t *testing.T) {
	mul, err := tables.BuildFullMul[uint8](field.MustDescriptor(4, 0x13), tables.DefaultLimits)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, mul))
	good := buf.Bytes()

	other, err := tables.BuildFullMul[uint8](field.MustDescriptor(4, 0x19), tables.DefaultLimits)
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad magic", append([]byte("GUFFTBL0"), good[len(Magic):]...)},
		{"truncated header", good[:len(Magic)+6]},
		{"truncated body", good[:len(good)-3]},
		{"flipped body byte", func() []byte {
			b := bytes.Clone(good)
			b[len(b)-2] ^= 0x40
			return b
		}()},
		{"digest of another table", rewrite(t, good, func(h *Header) { h.Digest = other.Digest().String() })},
		{"malformed digest", rewrite(t, good, func(h *Header) { h.Digest = "abc" })},
		{"different polynomial", rewrite(t, good, func(h *Header) { h.Poly = 0x19 })},
		{"entry count", rewrite(t, good, func(h *Header) { h.Entries = 255 })},
		{"huge entry count", rewrite(t, good, func(h *Header) { h.Entries = 1 << 40 })},
		{"element size", rewrite(t, good, func(h *Header) { h.ElemBits = 12 })},
		{"oversized header", binary.LittleEndian.AppendUint32([]byte(Magic), 1<<20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(bytes.NewReader(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tables.ErrCorrupt), "%v", err)
		})
	}
}
