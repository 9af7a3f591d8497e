package repository

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jacobchin/jacobgit/diffutil"
	"github.com/jacobchin/jacobgit/format/index"
)

// Diff renders the unstaged diff (index vs working tree) when staged
// is false, or the staged diff (HEAD tree vs index) when true. It
// returns the literal sentinel line when there is nothing to show.
func (r *Repository) Diff(staged bool) (string, error) {
	idx, err := r.LoadIndex()
	if err != nil {
		return "", err
	}

	if !staged {
		return r.diffUnstaged(idx)
	}
	return r.diffStaged(idx)
}

func (r *Repository) diffUnstaged(idx *index.Index) (string, error) {
	var out strings.Builder
	var paths []string
	for _, e := range idx.Entries {
		paths = append(paths, e.Path)
	}
	sort.Strings(paths)

	any := false
	for _, p := range paths {
		e, _ := idx.Get(p)

		full := filepath.Join(r.Root, filepath.FromSlash(p))
		disk, err := os.ReadFile(full)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", err
		}

		_, indexPayload, err := r.Objects.Read(e.Sum)
		if err != nil {
			return "", err
		}

		u := diffutil.Unified("a/"+p, "b/"+p, string(indexPayload), string(disk))
		if u != "" {
			any = true
			out.WriteString(u)
		}
	}

	if !any {
		return "no differences\n", nil
	}
	return out.String(), nil
}

func (r *Repository) diffStaged(idx *index.Index) (string, error) {
	headTree, err := r.HeadTree()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	var paths []string
	for _, e := range idx.Entries {
		paths = append(paths, e.Path)
	}
	sort.Strings(paths)

	any := false
	for _, p := range paths {
		e, _ := idx.Get(p)

		treeSum, inTree := headTree[p]
		if !inTree || treeSum == e.Sum {
			continue
		}

		_, headPayload, err := r.Objects.Read(treeSum)
		if err != nil {
			return "", err
		}

		_, indexPayload, err := r.Objects.Read(e.Sum)
		if err != nil {
			return "", err
		}

		u := diffutil.Unified("a/"+p, "b/"+p, string(headPayload), string(indexPayload))
		if u != "" {
			any = true
			out.WriteString(u)
		}
	}

	if !any {
		return "no staged changes\n", nil
	}
	return out.String(), nil
}
