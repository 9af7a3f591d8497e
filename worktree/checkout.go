package worktree

import (
	"os"
	"path/filepath"

	"github.com/jacobchin/jacobgit/plumbing/hash"
)

// BlobReader retrieves a blob's raw payload by id.
type BlobReader func(id hash.ObjectID) ([]byte, error)

// Checkout materializes target (a flat path->blob map from
// tree.Decode) onto the working directory rooted at root: paths
// present in the working tree but absent from target are deleted,
// paths in target are written (overwriting), parent directories are
// created as needed. It does not check for uncommitted changes — a
// known sharp edge the spec documents as such.
func Checkout(root string, target map[string]hash.ObjectID, read BlobReader) error {
	current, err := Scan(root)
	if err != nil {
		return err
	}

	for _, p := range current {
		if _, ok := target[p]; ok {
			continue
		}
		if err := os.Remove(filepath.Join(root, filepath.FromSlash(p))); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	for p, id := range target {
		payload, err := read(id)
		if err != nil {
			return err
		}

		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(full, payload, 0o644); err != nil {
			return err
		}
	}

	removeEmptyDirs(root)

	return nil
}

// removeEmptyDirs prunes directories left empty by Checkout's
// deletions. Best-effort: errors are ignored since leaving an empty
// directory behind is harmless and not worth failing the checkout.
func removeEmptyDirs(root string) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return
	}

	for _, e := range entries {
		if !e.IsDir() || metaDirNames[e.Name()] {
			continue
		}
		dir := filepath.Join(root, e.Name())
		removeEmptyDirs(dir)

		remaining, err := os.ReadDir(dir)
		if err == nil && len(remaining) == 0 {
			os.Remove(dir)
		}
	}
}
