package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacobchin/jacobgit/format/index"
	"github.com/jacobchin/jacobgit/plumbing/object"
)

// DefaultFileMode is the mode recorded for staged regular files. File
// mode tracking is nominal per the spec: stored, never enforced.
const DefaultFileMode uint32 = 0o100644

// Add stages each of paths (repository-relative), reading its
// current content, writing a blob object for it, and upserting the
// resulting entry into the index. Each path must refer to an
// existing regular file.
func (r *Repository) Add(paths []string) error {
	idx, err := r.LoadIndex()
	if err != nil {
		return err
	}

	for _, p := range paths {
		full := filepath.Join(r.Root, filepath.FromSlash(p))

		info, err := os.Stat(full)
		if err != nil {
			return fmt.Errorf("add %s: %w", p, err)
		}
		if info.IsDir() {
			return fmt.Errorf("add %s: is a directory", p)
		}

		data, err := os.ReadFile(full)
		if err != nil {
			return fmt.Errorf("add %s: %w", p, err)
		}

		sum, err := r.Objects.Write(object.BlobObject, data)
		if err != nil {
			return fmt.Errorf("add %s: %w", p, err)
		}

		idx.Upsert(index.Entry{
			Path:  filepath.ToSlash(p),
			Mode:  DefaultFileMode,
			Mtime: uint32(info.ModTime().Unix()),
			Sum:   sum,
		})
	}

	return r.SaveIndex(idx)
}
