package index

import (
	"encoding/binary"
	"io"
)

// Encoder writes an Index to an underlying writer in the on-disk
// little-endian format, following the variadic binary.Write flow
// idiom the teacher's utils/binary package uses, but over
// LittleEndian rather than BigEndian per this format's contract.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode unconditionally truncates (via the caller's io.Writer,
// typically a freshly-created file) and writes idx in entry order.
func (e *Encoder) Encode(idx *Index) error {
	if err := e.write(Magic[:]); err != nil {
		return err
	}
	if err := e.writeUint32(Version); err != nil {
		return err
	}
	if err := e.writeUint32(uint32(len(idx.Entries))); err != nil {
		return err
	}

	for _, entry := range idx.Entries {
		if err := e.writeEntry(entry); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) writeEntry(entry Entry) error {
	if err := e.writeUint16(uint16(len(entry.Path))); err != nil {
		return err
	}
	if err := e.writeUint32(entry.Mode); err != nil {
		return err
	}
	if err := e.writeUint32(entry.Mtime); err != nil {
		return err
	}
	if err := e.write(entry.Sum.Bytes()); err != nil {
		return err
	}
	return e.write([]byte(entry.Path))
}

func (e *Encoder) write(p []byte) error {
	_, err := e.w.Write(p)
	return err
}

func (e *Encoder) writeUint16(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return e.write(b[:])
}

func (e *Encoder) writeUint32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return e.write(b[:])
}
