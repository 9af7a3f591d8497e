package index

import (
	"encoding/binary"
	"io"

	"github.com/jacobchin/jacobgit/plumbing/hash"
)

// Decoder reads an Index from its on-disk little-endian
// representation, grounded on the Decoder/readEntry streaming idiom
// of the teacher's plumbing/format/index package.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the full index from the underlying reader. A short
// read anywhere in the header or an entry, a bad magic, or an
// unsupported version all yield ErrCorrupt.
func (d *Decoder) Decode() (*Index, error) {
	var header [12]byte
	if _, err := io.ReadFull(d.r, header[:]); err != nil {
		return nil, ErrCorrupt
	}

	if string(header[0:4]) != string(Magic[:]) {
		return nil, ErrCorrupt
	}

	version := binary.LittleEndian.Uint32(header[4:8])
	if version > Version {
		return nil, ErrCorrupt
	}

	count := binary.LittleEndian.Uint32(header[8:12])

	idx := &Index{Entries: make([]Entry, 0, count)}
	for i := uint32(0); i < count; i++ {
		entry, err := d.readEntry()
		if err != nil {
			return nil, err
		}
		idx.Entries = append(idx.Entries, entry)
	}

	return idx, nil
}

func (d *Decoder) readEntry() (Entry, error) {
	var fixed [2 + 4 + 4 + hash.Size]byte
	if _, err := io.ReadFull(d.r, fixed[:]); err != nil {
		return Entry{}, ErrCorrupt
	}

	pathLen := binary.LittleEndian.Uint16(fixed[0:2])
	mode := binary.LittleEndian.Uint32(fixed[2:6])
	mtime := binary.LittleEndian.Uint32(fixed[6:10])

	sum, err := hash.FromBytes(fixed[10 : 10+hash.Size])
	if err != nil {
		return Entry{}, ErrCorrupt
	}

	path := make([]byte, pathLen)
	if _, err := io.ReadFull(d.r, path); err != nil {
		return Entry{}, ErrCorrupt
	}

	return Entry{
		Path:  string(path),
		Mode:  mode,
		Mtime: mtime,
		Sum:   sum,
	}, nil
}
