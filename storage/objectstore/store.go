// Package objectstore implements the content-addressed loose-object
// store under <repo>/.jacobgit/objects, adapted from the teacher's
// packfile-and-loose-object filesystem.ObjectStorage down to the
// loose-object-only subset this system needs: no packfiles, no delta
// compression, one file per object.
package objectstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacobchin/jacobgit/format/objfile"
	"github.com/jacobchin/jacobgit/internal/ioutil"
	"github.com/jacobchin/jacobgit/internal/objecthash"
	"github.com/jacobchin/jacobgit/plumbing/hash"
	"github.com/jacobchin/jacobgit/plumbing/object"
)

// ErrNotFound is returned by Read when no object exists for the
// given id.
var ErrNotFound = fmt.Errorf("objectstore: object not found")

// ErrCorrupt is returned by Read when the object file on disk cannot
// be parsed as a valid framed object.
var ErrCorrupt = fmt.Errorf("objectstore: object corrupt")

// Store is a content-addressed loose-object store rooted at dir
// (typically "<repo>/.jacobgit/objects").
type Store struct {
	dir string
}

// New returns a Store rooted at dir. The directory is not created
// until the first Write call.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(id hash.ObjectID) string {
	return filepath.Join(s.dir, id.String())
}

// Write frames payload as "<type> <len>\0" || payload, hashes it,
// and writes it to objects/<sha> if not already present. Writing an
// existing object is a no-op; it returns the digest either way.
func (s *Store) Write(typ object.Type, payload []byte) (id hash.ObjectID, err error) {
	id, err = objecthash.Compute(typ, payload)
	if err != nil {
		return hash.ZeroID, err
	}

	p := s.path(id)
	if _, statErr := os.Stat(p); statErr == nil {
		return id, nil
	} else if !os.IsNotExist(statErr) {
		return hash.ZeroID, statErr
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return hash.ZeroID, err
	}

	f, err := os.Create(p)
	if err != nil {
		return hash.ZeroID, err
	}
	defer ioutil.CheckClose(f, &err)

	w, err := objfile.NewWriter(f, typ, int64(len(payload)))
	if err != nil {
		return hash.ZeroID, err
	}
	if _, err = w.Write(payload); err != nil {
		return hash.ZeroID, err
	}
	if err = w.Close(); err != nil {
		return hash.ZeroID, err
	}

	return id, nil
}

// Read reads the object identified by id, returning its type and raw
// payload bytes.
func (s *Store) Read(id hash.ObjectID) (object.Type, []byte, error) {
	f, err := os.Open(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return object.InvalidObject, nil, ErrNotFound
		}
		return object.InvalidObject, nil, err
	}
	defer f.Close()

	r, err := objfile.NewReader(f)
	if err != nil {
		if err == objfile.ErrCorrupt {
			return object.InvalidObject, nil, ErrCorrupt
		}
		return object.InvalidObject, nil, err
	}

	payload, err := r.Payload()
	if err != nil {
		return object.InvalidObject, nil, err
	}

	return r.Type(), payload, nil
}

// Has reports whether an object with the given id exists on disk.
func (s *Store) Has(id hash.ObjectID) bool {
	_, err := os.Stat(s.path(id))
	return err == nil
}

// Exists mirrors Has but returns an error for anything other than
// "not found", matching the teacher's EncodedObjectStorer idiom of
// surfacing I/O errors distinctly from a plain absence.
func (s *Store) Exists(id hash.ObjectID) (bool, error) {
	_, err := os.Stat(s.path(id))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
