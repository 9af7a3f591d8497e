package repository

import (
	commitobj "github.com/jacobchin/jacobgit/object"
	"github.com/jacobchin/jacobgit/plumbing/hash"
)

// LogEntry pairs a commit id with its decoded commit, in the order
// Log walks them: newest first.
type LogEntry struct {
	ID     hash.ObjectID
	Commit *commitobj.Commit
}

// Log walks the parent chain starting at HEAD's resolved commit,
// newest first, stopping when a parent is absent.
func (r *Repository) Log() ([]LogEntry, error) {
	id, ok, err := r.Refs.ResolveHead()
	if err != nil {
		return nil, err
	}

	var entries []LogEntry
	for ok {
		c, err := r.readCommit(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LogEntry{ID: id, Commit: c})

		if c.Parent == nil {
			break
		}
		id = *c.Parent
		ok = true
	}

	return entries, nil
}
