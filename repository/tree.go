package repository

import (
	"github.com/jacobchin/jacobgit/plumbing/hash"
	"github.com/jacobchin/jacobgit/plumbing/object"
	"github.com/jacobchin/jacobgit/plumbing/tree"
)

// WriteTree builds a tree hierarchy from the current index and
// returns the root tree's id.
func (r *Repository) WriteTree() (hash.ObjectID, error) {
	idx, err := r.LoadIndex()
	if err != nil {
		return hash.ZeroID, err
	}

	leaves := make([]tree.Leaf, len(idx.Entries))
	for i, e := range idx.Entries {
		leaves[i] = tree.Leaf{Path: e.Path, Mode: e.Mode, Sum: e.Sum}
	}

	return tree.Build(leaves, func(payload []byte) (hash.ObjectID, error) {
		return r.Objects.Write(object.TreeObject, payload)
	})
}

// ReadTree walks the tree object identified by id and returns a flat
// path->blob id mapping.
func (r *Repository) ReadTree(id hash.ObjectID) (map[string]hash.ObjectID, error) {
	return tree.Decode(id, func(id hash.ObjectID) (object.Type, []byte, error) {
		return r.Objects.Read(id)
	})
}
