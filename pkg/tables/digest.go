package tables

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest is the blake2b-256 hash of a table's metadata followed by its
// little-endian body. Two tables with equal digests hold the same entries.
type Digest [blake2b.Size256]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest decodes the hex form produced by Digest.String.
func ParseDigest(s string) (Digest, bool) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(d) {
		return Digest{}, false
	}
	copy(d[:], b)
	return d, true
}

func computeDigest(t Table) Digest {
	m := t.Meta()
	h, _ := blake2b.New256(nil)

	hdr := append([]byte(m.Kind), 0)
	hdr = append(hdr, byte(m.Width), byte(m.Bits), byte(m.ElemBits))
	hdr = binary.LittleEndian.AppendUint64(hdr, m.Poly)
	hdr = binary.LittleEndian.AppendUint64(hdr, m.Generator)
	hdr = binary.LittleEndian.AppendUint64(hdr, uint64(m.Entries))
	h.Write(hdr)

	h.Write(AppendBody(make([]byte, 0, Footprint(t)), t))

	var d Digest
	h.Sum(d[:0])
	return d
}
