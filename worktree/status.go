package worktree

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/jacobchin/jacobgit/format/index"
	"github.com/jacobchin/jacobgit/internal/objecthash"
	"github.com/jacobchin/jacobgit/plumbing/hash"
	"github.com/jacobchin/jacobgit/plumbing/object"
)

// Status holds the three independent classification lists the spec
// calls for. A path may appear in more than one list (for example, a
// staged-then-edited file is both Staged and Modified).
type Status struct {
	Staged    []string
	Modified  []string
	Untracked []string
}

// BlobHash computes the same blob_hash(bytes) the object store uses,
// so fingerprints taken from disk match blob object ids directly.
func BlobHash(data []byte) (hash.ObjectID, error) {
	return objecthash.Compute(object.BlobObject, data)
}

// ComputeStatus classifies every path found by scanning root against
// the current index entries and the HEAD tree's flat path->blob map
// (headTree may be nil, meaning no commits yet: every indexed path
// found on disk is then staged).
func ComputeStatus(root string, idx *index.Index, headTree map[string]hash.ObjectID) (Status, error) {
	files, err := Scan(root)
	if err != nil {
		return Status{}, err
	}

	indexed := make(map[string]hash.ObjectID, len(idx.Entries))
	for _, e := range idx.Entries {
		indexed[e.Path] = e.Sum
	}

	var st Status
	for _, p := range files {
		sum, inIndex := indexed[p]
		if !inIndex {
			st.Untracked = append(st.Untracked, p)
			continue
		}

		if treeSum, inTree := headTree[p]; !inTree || treeSum != sum {
			st.Staged = append(st.Staged, p)
		}

		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			return Status{}, err
		}
		diskSum, err := BlobHash(data)
		if err != nil {
			return Status{}, err
		}
		if diskSum != sum {
			st.Modified = append(st.Modified, p)
		}
	}

	sort.Strings(st.Staged)
	sort.Strings(st.Modified)
	sort.Strings(st.Untracked)

	return st, nil
}
