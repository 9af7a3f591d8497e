package object

import (
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

func TestEncodeNoParentHasNoTrailingNewline(t *testing.T) {
	sig := Signature{Name: "Jacob Chin", Email: "you@example.com", When: 1000}
	c := &Commit{
		Tree:      mustID(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		Author:    sig,
		Committer: sig,
		Message:   "init",
	}

	got := c.Encode()
	want := "tree aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n" +
		"author Jacob Chin <you@example.com> 1000 +0000\n" +
		"committer Jacob Chin <you@example.com> 1000 +0000\n" +
		"\n" +
		"init"

	require.Equal(t, want, string(got))
	require.NotEqual(t, byte('\n'), got[len(got)-1])
}

func TestEncodeWithParent(t *testing.T) {
	sig := Signature{Name: "Jacob Chin", Email: "you@example.com", When: 2000}
	parent := mustID(t, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	c := &Commit{
		Tree:      mustID(t, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		Parent:    &parent,
		Author:    sig,
		Committer: sig,
		Message:   "second",
	}

	got := string(c.Encode())
	require.Contains(t, got, "parent bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb\n")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	sig := Signature{Name: "Jacob Chin", Email: "you@example.com", When: 1234}
	parent := mustID(t, "cccccccccccccccccccccccccccccccccccccccc")
	c := &Commit{
		Tree:      mustID(t, "dddddddddddddddddddddddddddddddddddddddd"),
		Parent:    &parent,
		Author:    sig,
		Committer: sig,
		Message:   "multi\nline\nmessage",
	}

	decoded, err := Decode(c.Encode())
	require.NoError(t, err)

	require.Equal(t, c.Tree, decoded.Tree)
	require.Equal(t, *c.Parent, *decoded.Parent)
	require.Equal(t, c.Author, decoded.Author)
	require.Equal(t, c.Message, decoded.Message)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	_, err := Decode([]byte("not a commit at all"))
	require.Error(t, err)
}
