// Package tree builds and reads the tree object hierarchy, adapted
// from the teacher's Tree.Decode streaming parser (tree.go) and
// generalized per the source's recursive-free-function note: the
// original's nested-closure-over-a-grouped-mapping approach is lifted
// here into an explicit node trie so construction has no closures
// over mutable state.
package tree

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jacobchin/jacobgit/plumbing/hash"
	"github.com/jacobchin/jacobgit/plumbing/object"
)

// DirMode is the mode written for a subtree entry.
const DirMode uint32 = 0o040000

// Leaf is a single staged file entering tree construction: its
// repository-relative path, its stored mode, and its blob id.
type Leaf struct {
	Path string
	Mode uint32
	Sum  hash.ObjectID
}

// WriteFunc persists a tree object's payload and returns its id, akin
// to the core object store's write_object("tree", ...).
type WriteFunc func(payload []byte) (hash.ObjectID, error)

// ReadFunc retrieves an object's type and payload by id.
type ReadFunc func(id hash.ObjectID) (object.Type, []byte, error)

// node is one directory level of the trie built from a flat leaf
// list before serialization.
type node struct {
	dirs  map[string]*node
	files map[string]Leaf
}

func newNode() *node {
	return &node{dirs: make(map[string]*node), files: make(map[string]Leaf)}
}

func (n *node) insert(parts []string, leaf Leaf) {
	if len(parts) == 1 {
		n.files[parts[0]] = leaf
		return
	}

	child, ok := n.dirs[parts[0]]
	if !ok {
		child = newNode()
		n.dirs[parts[0]] = child
	}
	child.insert(parts[1:], leaf)
}

// Build constructs a hierarchy of tree objects from a flat set of
// staged leaves, writing each level via write, and returns the root
// tree's id. An empty leaf set still produces a (possibly empty)
// root tree object, matching the spec's "empty index -> empty tree
// object" edge case.
func Build(leaves []Leaf, write WriteFunc) (hash.ObjectID, error) {
	root := newNode()
	for _, l := range leaves {
		parts := strings.Split(l.Path, "/")
		root.insert(parts, l)
	}
	return root.write(write)
}

type childEntry struct {
	name string
	mode uint32
	sum  hash.ObjectID
}

func (n *node) write(write WriteFunc) (hash.ObjectID, error) {
	var entries []childEntry

	for name, child := range n.dirs {
		id, err := child.write(write)
		if err != nil {
			return hash.ZeroID, err
		}
		entries = append(entries, childEntry{name: name, mode: DirMode, sum: id})
	}
	for name, leaf := range n.files {
		entries = append(entries, childEntry{name: name, mode: leaf.Mode, sum: leaf.Sum})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	var buf bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&buf, "%o %s", e.mode, e.name)
		buf.WriteByte(0)
		buf.Write(e.sum.Bytes())
	}

	return write(buf.Bytes())
}

// Decode walks the tree object identified by rootID (and, by
// recursion, any subtrees it references) and returns a flat mapping
// from full repository-relative path to blob id. Key order is not
// meaningful, matching the spec's read_tree contract.
func Decode(rootID hash.ObjectID, read ReadFunc) (map[string]hash.ObjectID, error) {
	out := make(map[string]hash.ObjectID)
	if err := decodeInto(rootID, "", read, out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeInto(id hash.ObjectID, prefix string, read ReadFunc, out map[string]hash.ObjectID) error {
	typ, payload, err := read(id)
	if err != nil {
		return err
	}
	if typ != object.TreeObject {
		return &object.ErrUnsupportedType{Got: typ}
	}
	if len(payload) == 0 {
		return nil
	}

	r := bufio.NewReader(bytes.NewReader(payload))
	for {
		modeStr, err := r.ReadString(' ')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		mode, err := strconv.ParseUint(modeStr[:len(modeStr)-1], 8, 32)
		if err != nil {
			return err
		}

		name, err := r.ReadString(0)
		if err != nil {
			return err
		}
		name = name[:len(name)-1]

		var sum [hash.Size]byte
		if _, err := io.ReadFull(r, sum[:]); err != nil {
			return err
		}
		childID, err := hash.FromBytes(sum[:])
		if err != nil {
			return err
		}

		full := name
		if prefix != "" {
			full = prefix + "/" + name
		}

		if uint32(mode) == DirMode {
			if err := decodeInto(childID, full, read, out); err != nil {
				return err
			}
			continue
		}

		out[full] = childID
	}
}
