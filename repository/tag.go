package repository

import (
	"fmt"

	"github.com/jacobchin/jacobgit/plumbing/hash"
	"github.com/jacobchin/jacobgit/plumbing/ref"
)

// TagEntry is a single lightweight tag: a name and the commit id it
// points to.
type TagEntry struct {
	Name string
	ID   hash.ObjectID
}

// ListTags returns every tag under refs/tags, alphabetically, with
// its pointed-to commit id.
func (r *Repository) ListTags() ([]TagEntry, error) {
	names, err := r.Refs.ListTags()
	if err != nil {
		return nil, err
	}

	entries := make([]TagEntry, 0, len(names))
	for _, name := range names {
		id, ok, err := r.Refs.Resolve(ref.TagRefPath(name))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		entries = append(entries, TagEntry{Name: name, ID: id})
	}

	return entries, nil
}

// CreateTag creates a lightweight refs/tags/<name> ref pointing at
// HEAD's resolved commit. It fails if the tag exists or there are no
// commits yet.
func (r *Repository) CreateTag(name string) error {
	path := ref.TagRefPath(name)
	if r.Refs.Exists(path) {
		return &ErrPreconditionViolated{Msg: fmt.Sprintf("tag '%s' already exists", name)}
	}

	id, ok, err := r.Refs.ResolveHead()
	if err != nil {
		return err
	}
	if !ok {
		return &ErrPreconditionViolated{Msg: "no commits yet"}
	}

	return r.Refs.WriteRef(path, id)
}
