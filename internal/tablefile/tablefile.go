// Package tablefile stores generated tables on disk.
//
// A file starts with the 8-byte magic "GUFFTBL1" and a little-endian
// uint32 header length, followed by a JSON header holding the table's
// metadata and digest. The little-endian entries follow as a snappy
// framed stream. Loading recomputes the digest and rejects a mismatch.
package tablefile

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/golang/snappy"

	"github.com/Davincible/guff/pkg/tables"
)

// Magic identifies table files.
const Magic = "GUFFTBL1"

const (
	maxHeader = 1 << 16
	maxBody   = 1 << 30
)

// Header is the JSON document in front of the entries.
type Header struct {
	tables.Meta
	Digest string `json:"digest"`
}

// Encode writes t to w.
func Encode(w io.Writer, t tables.Table) error {
	hdr, err := json.Marshal(Header{Meta: t.Meta(), Digest: t.Digest().String()})
	if err != nil {
		return errors.Wrap(err, "encoding table header")
	}

	prefix := binary.LittleEndian.AppendUint32([]byte(Magic), uint32(len(hdr)))
	if _, err := w.Write(append(prefix, hdr...)); err != nil {
		return errors.Wrap(err, "writing table header")
	}

	sw := snappy.NewBufferedWriter(w)
	if _, err := sw.Write(tables.AppendBody(make([]byte, 0, tables.Footprint(t)), t)); err != nil {
		return errors.Wrap(err, "writing table body")
	}
	return errors.Wrap(sw.Close(), "flushing table body")
}

// Decode reads a table written by Encode and verifies its digest.
func Decode(r io.Reader) (tables.Table, Header, error) {
	var hdr Header

	prefix := make([]byte, len(Magic)+4)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, hdr, errors.Wrapf(tables.ErrCorrupt, "reading magic: %v", err)
	}
	if string(prefix[:len(Magic)]) != Magic {
		return nil, hdr, errors.Wrapf(tables.ErrCorrupt, "bad magic %q", prefix[:len(Magic)])
	}

	n := binary.LittleEndian.Uint32(prefix[len(Magic):])
	if n > maxHeader {
		return nil, hdr, errors.Wrapf(tables.ErrCorrupt, "header of %d bytes", n)
	}
	raw := make([]byte, n)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, hdr, errors.Wrapf(tables.ErrCorrupt, "reading header: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&hdr); err != nil {
		return nil, hdr, errors.Wrapf(tables.ErrCorrupt, "parsing header: %v", err)
	}
	want, ok := tables.ParseDigest(hdr.Digest)
	if !ok {
		return nil, hdr, errors.Wrapf(tables.ErrCorrupt, "bad digest %q", hdr.Digest)
	}

	size := uint64(hdr.Entries) * uint64(hdr.ElemBits/8)
	if hdr.Entries < 0 || size > maxBody {
		return nil, hdr, errors.Wrapf(tables.ErrCorrupt, "%d entries of %d bits", hdr.Entries, hdr.ElemBits)
	}
	body, err := io.ReadAll(io.LimitReader(snappy.NewReader(r), int64(size)+1))
	if err != nil {
		return nil, hdr, errors.Wrapf(tables.ErrCorrupt, "reading body: %v", err)
	}

	t, err := tables.Decode(hdr.Meta, body)
	if err != nil {
		return nil, hdr, err
	}
	if got := t.Digest(); got != want {
		return nil, hdr, errors.Wrapf(tables.ErrCorrupt, "digest %s, header says %s", got, want)
	}
	return t, hdr, nil
}

// File is a table file at a fixed path.
type File struct {
	path string
}

// New returns the table file at path. Nothing is read or created.
func New(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

// Save writes t atomically, replacing any previous file.
func (f *File) Save(t tables.Table) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating directory")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return errors.Wrap(err, "creating temporary file")
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, t); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temporary file")
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(err, "setting permissions")
	}
	return errors.Wrap(os.Rename(tmp.Name(), f.path), "replacing table file")
}

// Load reads and verifies the table.
func (f *File) Load() (tables.Table, Header, error) {
	r, err := os.Open(f.path)
	if err != nil {
		return nil, Header{}, errors.Wrap(err, "opening table file")
	}
	defer r.Close()

	t, hdr, err := Decode(r)
	if err != nil {
		return nil, hdr, errors.Wrapf(err, "loading %s", f.path)
	}
	return t, hdr, nil
}

func (f *File) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}
