// Package repository implements repository bootstrap and the
// command-level operations the CLI drives: add, write-tree, commit,
// log, status, diff, checkout, branch, and tag. Adapted from the
// teacher's repository.go (Init/PlainInit/PlainOpen) down to a single
// on-disk layout: no bare repos, no remotes, no storer abstraction
// layer, since this system only ever targets ".jacobgit" on the local
// filesystem.
package repository

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/jacobchin/jacobgit/config"
	"github.com/jacobchin/jacobgit/plumbing/ref"
	"github.com/jacobchin/jacobgit/storage/objectstore"
)

// MetaDirName is the directory name holding all repository state.
const MetaDirName = ".jacobgit"

// ErrNotARepository is returned by Open (and by any command that
// requires an existing repository) when MetaDirName is absent.
var ErrNotARepository = errors.New("not a jacobgit repository")

// Repository is an opened jacobgit repository rooted at a working
// directory.
type Repository struct {
	Root    string
	MetaDir string

	Objects *objectstore.Store
	Refs    *ref.Store
}

func metaDir(root string) string {
	return filepath.Join(root, MetaDirName)
}

// Open opens an existing repository rooted at root. It fails with
// ErrNotARepository if MetaDirName does not exist there.
func Open(root string) (*Repository, error) {
	meta := metaDir(root)
	if _, err := os.Stat(meta); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotARepository
		}
		return nil, err
	}

	return &Repository{
		Root:    root,
		MetaDir: meta,
		Objects: objectstore.New(filepath.Join(meta, "objects")),
		Refs:    ref.New(meta),
	}, nil
}

// Init creates the on-disk skeleton at root: HEAD pointing
// symbolically at refs/heads/master, an empty master branch file, and
// an empty objects directory. It reports alreadyExists=true and does
// nothing further if MetaDirName is already present there.
func Init(root string) (alreadyExists bool, err error) {
	meta := metaDir(root)
	if _, statErr := os.Stat(meta); statErr == nil {
		return true, nil
	} else if !os.IsNotExist(statErr) {
		return false, statErr
	}

	dirs := []string{
		filepath.Join(meta, "objects"),
		filepath.Join(meta, ref.HeadsDir),
		filepath.Join(meta, ref.TagsDir),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return false, err
		}
	}

	refs := ref.New(meta)
	branchPath := ref.BranchRefPath(ref.DefaultBranch)
	if err := refs.CreateEmptyRef(branchPath); err != nil {
		return false, err
	}
	if err := refs.WriteHeadSymbolic(branchPath); err != nil {
		return false, err
	}

	return false, nil
}

// Identity returns the configured commit author/committer identity
// for this repository.
func (r *Repository) Identity() (config.User, error) {
	return config.Load(r.MetaDir)
}

// IndexPath returns the path to the binary staging file.
func (r *Repository) IndexPath() string {
	return filepath.Join(r.MetaDir, "index")
}
