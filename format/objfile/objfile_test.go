package objfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacobchin/jacobgit/plumbing/object"
)

func TestWriteReadRoundTrip(t *testing.T) {
	payload := []byte("tree contents go here")

	var buf bytes.Buffer
	w, err := NewWriter(&buf, object.TreeObject, int64(len(payload)))
	require.NoError(t, err)

	n, err := w.Write(payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	require.Equal(t, object.TreeObject, r.Type())
	require.Equal(t, int64(len(payload)), r.Size())

	got, err := r.Payload()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestWriteOverflow(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, object.BlobObject, 3)
	require.NoError(t, err)

	_, err = w.Write([]byte("too long"))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestWriteEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, object.BlobObject, 0)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	payload, err := r.Payload()
	require.NoError(t, err)
	require.Empty(t, payload)
}

func TestReaderRejectsCorruptHeader(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("not a valid header at all")))
	require.ErrorIs(t, err, ErrCorrupt)
}
