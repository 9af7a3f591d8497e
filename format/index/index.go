// Package index implements the binary codec for the staging file,
// adapted from the teacher's plumbing/format/index package down to
// the flat, fixed-field layout this system's index uses: no cache
// tree, no resolve-undo section, no extensions.
package index

import (
	"fmt"

	"github.com/jacobchin/jacobgit/plumbing/hash"
)

// Magic is the four-byte signature at the start of every index file.
var Magic = [4]byte{'J', 'I', 'D', 'X'}

// Version is the only on-disk format version this codec understands.
const Version uint32 = 0

// Entry is a single staged path: its mode, the modification time
// recorded at staging time, and the blob id of its content.
type Entry struct {
	Path  string
	Mode  uint32
	Mtime uint32
	Sum   hash.ObjectID
}

// Index is the in-memory decoded form of the staging file: an
// ordered list of entries. Entry insertion order is preserved exactly
// as read or as given to Encode; deduplication by path is the
// caller's responsibility (see Index.Upsert).
type Index struct {
	Entries []Entry
}

// ErrCorrupt is returned by Decode on any malformed index: wrong
// magic, unsupported version, or truncation.
var ErrCorrupt = fmt.Errorf("index: corrupt or unsupported file")

// Upsert adds e to idx, replacing any existing entry with the same
// Path so that re-adding a path never duplicates it.
func (idx *Index) Upsert(e Entry) {
	for i := range idx.Entries {
		if idx.Entries[i].Path == e.Path {
			idx.Entries[i] = e
			return
		}
	}
	idx.Entries = append(idx.Entries, e)
}

// Remove deletes the entry for path, if present, and reports whether
// it was found.
func (idx *Index) Remove(path string) bool {
	for i := range idx.Entries {
		if idx.Entries[i].Path == path {
			idx.Entries = append(idx.Entries[:i], idx.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the entry for path and whether it exists.
func (idx *Index) Get(path string) (Entry, bool) {
	for _, e := range idx.Entries {
		if e.Path == path {
			return e, true
		}
	}
	return Entry{}, false
}
