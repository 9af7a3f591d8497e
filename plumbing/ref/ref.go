// Package ref implements HEAD parsing and the textual ref store under
// refs/heads and refs/tags, adapted from the teacher's
// core.Reference/storage/filesystem.ReferenceStorage design down to
// the two concrete forms this system needs: symbolic and detached
// HEAD, and plain SHA-pointer branch/tag files.
package ref

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jacobchin/jacobgit/plumbing/hash"
)

// HeadName is the well-known file holding the current HEAD.
const HeadName = "HEAD"

// symPrefix is the exact prefix NewReferenceFromStrings recognizes in
// go-git; jacobgit's HEAD format is the same "ref: <path>" shape.
const symPrefix = "ref: "

// DefaultBranch is the branch `init` points a fresh HEAD at.
const DefaultBranch = "master"

// HeadsDir and TagsDir are the ref namespaces under the repository's
// metadata directory.
const (
	HeadsDir = "refs/heads"
	TagsDir  = "refs/tags"
)

// Store reads and writes refs rooted at dir (typically
// "<repo>/.jacobgit").
type Store struct {
	dir string
}

// New returns a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Head describes the parsed contents of HEAD: either Symbolic is set
// (e.g. "refs/heads/master") or Detached is set (a raw commit id),
// never both. This mirrors the teacher's distinct Hash/Symbolic
// ReferenceType split.
type Head struct {
	Symbolic string
	Detached hash.ObjectID
	IsSymbolic bool
}

// ReadHead parses .jacobgit/HEAD. There is no "missing HEAD" case in
// a bootstrapped repository, but callers in the middle of Init may
// still see os.ErrNotExist propagate.
func (s *Store) ReadHead() (Head, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, HeadName))
	if err != nil {
		return Head{}, err
	}

	content := strings.TrimRight(string(data), "\n")
	if strings.HasPrefix(content, symPrefix) {
		return Head{Symbolic: content[len(symPrefix):], IsSymbolic: true}, nil
	}

	id, err := hash.FromHex(content)
	if err != nil {
		return Head{}, fmt.Errorf("ref: malformed detached HEAD: %w", err)
	}
	return Head{Detached: id}, nil
}

// WriteHeadSymbolic points HEAD at a branch ref path such as
// "refs/heads/master".
func (s *Store) WriteHeadSymbolic(refPath string) error {
	return s.writeFile(HeadName, symPrefix+refPath+"\n")
}

// WriteHeadDetached points HEAD directly at a commit id.
func (s *Store) WriteHeadDetached(id hash.ObjectID) error {
	return s.writeFile(HeadName, id.String()+"\n")
}

// Resolve reads the ref file at refPath (relative to the repository
// metadata dir, e.g. "refs/heads/master") and returns its trimmed
// content. A missing file and an empty file both yield (ZeroID, false,
// nil), matching read_ref's None-on-absent contract; any other read
// error, or content that is not a hex object id, is returned as err.
func (s *Store) Resolve(refPath string) (hash.ObjectID, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(refPath)))
	if err != nil {
		if os.IsNotExist(err) {
			return hash.ZeroID, false, nil
		}
		return hash.ZeroID, false, err
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return hash.ZeroID, false, nil
	}

	id, err := hash.FromHex(content)
	if err != nil {
		return hash.ZeroID, false, fmt.Errorf("ref: malformed ref %s: %w", refPath, err)
	}
	return id, true, nil
}

// ResolveHead resolves HEAD all the way down to a commit id: if
// symbolic, it recurses on the target ref; if detached, it returns
// the raw id directly. It returns ok=false when HEAD is symbolic but
// the target branch has no commits yet.
func (s *Store) ResolveHead() (hash.ObjectID, bool, error) {
	h, err := s.ReadHead()
	if err != nil {
		return hash.ZeroID, false, err
	}

	if h.IsSymbolic {
		return s.Resolve(h.Symbolic)
	}
	return h.Detached, true, nil
}

// CurrentBranch returns the branch name HEAD points at and true, or
// ("", false) when HEAD is detached.
func (s *Store) CurrentBranch() (string, bool, error) {
	h, err := s.ReadHead()
	if err != nil {
		return "", false, err
	}
	if !h.IsSymbolic {
		return "", false, nil
	}
	return strings.TrimPrefix(h.Symbolic, HeadsDir+"/"), true, nil
}

// WriteRef writes id into the ref file at refPath, creating parent
// directories as needed.
func (s *Store) WriteRef(refPath string, id hash.ObjectID) error {
	return s.writeFile(refPath, id.String()+"\n")
}

// CreateEmptyRef creates an empty ref file, used by Init to create a
// branch with "no commits yet" semantics.
func (s *Store) CreateEmptyRef(refPath string) error {
	return s.writeFile(refPath, "")
}

// DeleteRef removes the ref file at refPath.
func (s *Store) DeleteRef(refPath string) error {
	return os.Remove(filepath.Join(s.dir, filepath.FromSlash(refPath)))
}

// Exists reports whether a ref file exists at refPath (regardless of
// whether it is empty).
func (s *Store) Exists(refPath string) bool {
	_, err := os.Stat(filepath.Join(s.dir, filepath.FromSlash(refPath)))
	return err == nil
}

// ListBranches returns the names of all branches under refs/heads,
// sorted alphabetically.
func (s *Store) ListBranches() ([]string, error) {
	return s.listNames(HeadsDir)
}

// ListTags returns the names of all tags under refs/tags, sorted
// alphabetically.
func (s *Store) ListTags() ([]string, error) {
	return s.listNames(TagsDir)
}

func (s *Store) listNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) writeFile(relPath, content string) error {
	full := filepath.Join(s.dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, []byte(content), 0o644)
}

// BranchRefPath returns "refs/heads/<name>".
func BranchRefPath(name string) string {
	return HeadsDir + "/" + name
}

// TagRefPath returns "refs/tags/<name>".
func TagRefPath(name string) string {
	return TagsDir + "/" + name
}
