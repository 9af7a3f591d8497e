package index

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacobchin/jacobgit/plumbing/hash"
)

func mustID(t *testing.T, s string) hash.ObjectID {
	t.Helper()
	id, err := hash.FromHex(s)
	require.NoError(t, err)
	return id
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	idx := &Index{Entries: []Entry{
		{Path: "a.txt", Mode: 0o100644, Mtime: 1000, Sum: mustID(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")},
		{Path: "dir/b.txt", Mode: 0o100644, Mtime: 2000, Sum: mustID(t, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")},
		{Path: "déjà-vu.txt", Mode: 0o100644, Mtime: 3000, Sum: mustID(t, "cccccccccccccccccccccccccccccccccccccccc")},
	}}

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(idx))

	got, err := NewDecoder(&buf).Decode()
	require.NoError(t, err)
	require.Equal(t, idx.Entries, got.Entries)
}

func TestDecodeEmptyIndexHasMagicAndZeroCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(&Index{}))

	require.Equal(t, "JIDX", string(buf.Bytes()[0:4]))

	decoded, err := NewDecoder(bytes.NewReader(buf.Bytes())).Decode()
	require.NoError(t, err)
	require.Empty(t, decoded.Entries)

	got, err := NewDecoder(&bytes.Buffer{}).Decode()
	require.Error(t, err) // empty reader, not an empty-but-valid index
	require.Nil(t, got)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data := []byte("XXXX\x00\x00\x00\x00\x00\x00\x00\x00")
	_, err := NewDecoder(bytes.NewReader(data)).Decode()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestDecodeRejectsFutureVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("JIDX")
	buf.Write([]byte{1, 0, 0, 0}) // version = 1, little-endian
	buf.Write([]byte{0, 0, 0, 0}) // count = 0

	_, err := NewDecoder(&buf).Decode()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestDecodeRejectsTruncatedEntry(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("JIDX")
	buf.Write([]byte{0, 0, 0, 0})
	buf.Write([]byte{1, 0, 0, 0}) // count = 1, but no entry bytes follow

	_, err := NewDecoder(&buf).Decode()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestIndexUpsertReplacesNotDuplicates(t *testing.T) {
	idx := &Index{}
	idx.Upsert(Entry{Path: "a", Sum: mustID(t, "1111111111111111111111111111111111111111")})
	idx.Upsert(Entry{Path: "a", Sum: mustID(t, "2222222222222222222222222222222222222222")})

	require.Len(t, idx.Entries, 1)
	e, ok := idx.Get("a")
	require.True(t, ok)
	require.Equal(t, mustID(t, "2222222222222222222222222222222222222222"), e.Sum)
}
