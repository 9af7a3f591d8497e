package objecthash

import (
	"crypto/sha1"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jacobchin/jacobgit/plumbing/object"
)

func TestComputeMatchesRawSHA1(t *testing.T) {
	payload := []byte("hello\n")
	header := fmt.Sprintf("blob %d\x00", len(payload))

	want := sha1.Sum(append([]byte(header), payload...))

	got, err := Compute(object.BlobObject, payload)
	require.NoError(t, err)
	require.Equal(t, want[:], got.Bytes())
}

func TestComputeStableAcrossCalls(t *testing.T) {
	payload := []byte("repeatable content")

	a, err := Compute(object.BlobObject, payload)
	require.NoError(t, err)
	b, err := Compute(object.BlobObject, payload)
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestComputeDiffersByType(t *testing.T) {
	payload := []byte("same bytes")

	blobID, err := Compute(object.BlobObject, payload)
	require.NoError(t, err)
	treeID, err := Compute(object.TreeObject, payload)
	require.NoError(t, err)

	require.NotEqual(t, blobID, treeID)
}

func TestComputeEmptyPayload(t *testing.T) {
	id, err := Compute(object.BlobObject, nil)
	require.NoError(t, err)
	require.False(t, id.IsZero())
}
