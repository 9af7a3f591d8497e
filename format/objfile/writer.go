// Package objfile implements encoding and decoding of the on-disk
// object file format: a framed header followed by the raw payload,
// written unconditionally (the core keeps no compression, unlike the
// packfile-oriented object format this package's shape is adapted
// from).
package objfile

import (
	"crypto"
	"errors"
	"fmt"
	"io"

	"github.com/jacobchin/jacobgit/plumbing/hash"
	"github.com/jacobchin/jacobgit/plumbing/object"
)

// ErrOverflow is returned by Write when more bytes are written than
// were declared to NewWriter.
var ErrOverflow = errors.New("objfile: declared data length exceeded")

// ErrClosed is returned by Write when called after Close. A repeated
// Close is a no-op and returns nil.
var ErrClosed = errors.New("objfile: writer already closed")

// Writer writes the framed header then the payload, hashing both as
// they are written so Hash is available once Close returns.
type Writer struct {
	w       io.Writer
	h       hash.ObjectID
	hasher  interface {
		io.Writer
		Sum([]byte) []byte
	}
	typ     object.Type
	size    int64
	written int64
	closed  bool
}

// NewWriter returns a Writer that will write exactly size bytes of
// payload of the given type to w, after writing the framed header.
func NewWriter(w io.Writer, typ object.Type, size int64) (*Writer, error) {
	wr := &Writer{w: w, typ: typ, size: size}
	h := hash.New(crypto.SHA1)
	if h == nil {
		return nil, fmt.Errorf("objfile: SHA-1 not registered")
	}
	wr.hasher = h

	if err := wr.writeHeader(); err != nil {
		return nil, err
	}
	return wr, nil
}

func (w *Writer) writeHeader() error {
	header := fmt.Sprintf("%s %d", w.typ, w.size)
	full := append([]byte(header), 0)

	if _, err := w.hasher.Write(full); err != nil {
		return err
	}
	_, err := w.w.Write(full)
	return err
}

// Write writes p as (part of) the object's payload.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}

	overflow := (w.written + int64(len(p))) - w.size
	if overflow > 0 {
		p = p[:int64(len(p))-overflow]
	}

	n, err := w.hasher.Write(p)
	if err != nil {
		return n, err
	}

	n, err = w.w.Write(p)
	w.written += int64(n)
	if err == nil && overflow > 0 {
		err = ErrOverflow
	}
	return n, err
}

// Hash returns the object id of everything written so far. Call
// after Close for the final value.
func (w *Writer) Hash() (hash.ObjectID, error) {
	return hash.FromBytes(w.hasher.Sum(nil))
}

// Size returns the declared payload size.
func (w *Writer) Size() int64 { return w.size }

// Type returns the object's type.
func (w *Writer) Type() object.Type { return w.typ }

// Close finalizes the writer. It does not close the underlying
// io.Writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	id, err := w.Hash()
	if err != nil {
		return err
	}
	w.h = id
	return nil
}
