// Package worktree implements the working-tree scanner, the
// staged/modified/untracked status classifier, and the checkout
// engine, adapted from the teacher's
// worktree_status.go (Status/Add/calculateBlobHash) and worktree.go.
package worktree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// metaDirNames are path components excluded from working-tree
// enumeration, matching the spec's ".jacobgit or .git" exclusion.
var metaDirNames = map[string]bool{
	".jacobgit": true,
	".git":      true,
}

// Scan recursively lists all regular files under root, returning
// repository-relative, forward-slash paths, excluding any path whose
// components include a metadata directory.
func Scan(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}

		parts := strings.Split(rel, string(filepath.Separator))
		for _, part := range parts {
			if metaDirNames[part] {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
