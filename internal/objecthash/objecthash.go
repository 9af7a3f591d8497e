// Package objecthash computes the content-addressed id of an object's
// framed header-plus-payload byte sequence, the same scheme the
// working-tree scanner uses to fingerprint files against the index.
package objecthash

import (
	"crypto"
	"fmt"
	"io"

	"github.com/jacobchin/jacobgit/plumbing/hash"
	"github.com/jacobchin/jacobgit/plumbing/object"
)

// Compute frames payload behind "<type> <decimal-length>\0" and
// returns the SHA-1 digest of the full framed sequence.
func Compute(t object.Type, payload []byte) (hash.ObjectID, error) {
	h := hash.New(crypto.SHA1)
	if h == nil {
		return hash.ZeroID, fmt.Errorf("objecthash: SHA-1 not registered")
	}

	if err := writeHeader(h, t, int64(len(payload))); err != nil {
		return hash.ZeroID, err
	}
	if _, err := h.Write(payload); err != nil {
		return hash.ZeroID, err
	}

	return hash.FromBytes(h.Sum(nil))
}

// ComputeReader is like Compute but streams payload from r rather
// than requiring it fully in memory; size must equal the number of
// bytes r will yield.
func ComputeReader(t object.Type, size int64, r io.Reader) (hash.ObjectID, error) {
	h := hash.New(crypto.SHA1)
	if h == nil {
		return hash.ZeroID, fmt.Errorf("objecthash: SHA-1 not registered")
	}

	if err := writeHeader(h, t, size); err != nil {
		return hash.ZeroID, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return hash.ZeroID, err
	}

	return hash.FromBytes(h.Sum(nil))
}

func writeHeader(w io.Writer, t object.Type, size int64) error {
	if _, err := w.Write(t.Bytes()); err != nil {
		return err
	}
	if _, err := w.Write([]byte{' '}); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d", size); err != nil {
		return err
	}
	_, err := w.Write([]byte{0})
	return err
}
