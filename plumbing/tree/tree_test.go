package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacobchin/jacobgit/plumbing/hash"
	"github.com/jacobchin/jacobgit/plumbing/object"
)

// memStore is a trivial in-memory object store used to exercise
// Build/Decode without touching the filesystem.
type memStore struct {
	objects map[hash.ObjectID]struct {
		typ     object.Type
		payload []byte
	}
}

func newMemStore() *memStore {
	return &memStore{objects: map[hash.ObjectID]struct {
		typ     object.Type
		payload []byte
	}{}}
}

func (m *memStore) write(typ object.Type, payload []byte) (hash.ObjectID, error) {
	var buf []byte
	buf = append(buf, payload...)

	sum := fakeHash(typ, buf)
	m.objects[sum] = struct {
		typ     object.Type
		payload []byte
	}{typ, buf}
	return sum, nil
}

// writeTree adapts write to the payload-only WriteFunc Build expects.
func (m *memStore) writeTree(payload []byte) (hash.ObjectID, error) {
	return m.write(object.TreeObject, payload)
}

func (m *memStore) read(id hash.ObjectID) (object.Type, []byte, error) {
	v, ok := m.objects[id]
	if !ok {
		return object.InvalidObject, nil, fmt.Errorf("tree test: object %s not found", id)
	}
	return v.typ, v.payload, nil
}

// fakeHash derives a deterministic id from the payload without
// pulling in the real hashing package, keeping this test focused on
// tree structure rather than hashing.
func fakeHash(typ object.Type, payload []byte) hash.ObjectID {
	var sum [hash.Size]byte
	h := 2166136261 ^ int(typ)
	for _, b := range payload {
		h = (h ^ int(b)) * 16777619
	}
	for i := range sum {
		sum[i] = byte(h >> (8 * (i % 4)))
	}
	id, _ := hash.FromBytes(sum[:])
	return id
}

func TestBuildAndDecodeRoundTrip(t *testing.T) {
	store := newMemStore()

	leaves := []Leaf{
		{Path: "a.txt", Mode: 0o100644, Sum: fakeHash(object.BlobObject, []byte("a"))},
		{Path: "dir/b.txt", Mode: 0o100644, Sum: fakeHash(object.BlobObject, []byte("b"))},
		{Path: "dir/sub/c.txt", Mode: 0o100644, Sum: fakeHash(object.BlobObject, []byte("c"))},
	}

	rootID, err := Build(leaves, store.writeTree)
	require.NoError(t, err)

	flat, err := Decode(rootID, store.read)
	require.NoError(t, err)

	require.Equal(t, map[string]hash.ObjectID{
		"a.txt":         leaves[0].Sum,
		"dir/b.txt":     leaves[1].Sum,
		"dir/sub/c.txt": leaves[2].Sum,
	}, flat)
}

func TestBuildEmptyIndexProducesEmptyTree(t *testing.T) {
	store := newMemStore()

	rootID, err := Build(nil, store.writeTree)
	require.NoError(t, err)

	flat, err := Decode(rootID, store.read)
	require.NoError(t, err)
	require.Empty(t, flat)
}

func TestBuildIsIdempotent(t *testing.T) {
	store := newMemStore()

	leaves := []Leaf{
		{Path: "x", Mode: 0o100644, Sum: fakeHash(object.BlobObject, []byte("x"))},
		{Path: "y/z", Mode: 0o100644, Sum: fakeHash(object.BlobObject, []byte("z"))},
	}

	a, err := Build(leaves, store.writeTree)
	require.NoError(t, err)
	b, err := Build(leaves, store.writeTree)
	require.NoError(t, err)

	require.Equal(t, a, b)
}
