package repository

import (
	"fmt"
	"time"

	commitobj "github.com/jacobchin/jacobgit/object"
	"github.com/jacobchin/jacobgit/plumbing/hash"
	potype "github.com/jacobchin/jacobgit/plumbing/object"
)

// HeadCommit resolves HEAD to a commit and decodes it. ok is false
// when HEAD's branch has no commits yet.
func (r *Repository) HeadCommit() (*commitobj.Commit, hash.ObjectID, bool, error) {
	id, ok, err := r.Refs.ResolveHead()
	if err != nil || !ok {
		return nil, hash.ZeroID, false, err
	}

	c, err := r.readCommit(id)
	if err != nil {
		return nil, hash.ZeroID, false, err
	}
	return c, id, true, nil
}

func (r *Repository) readCommit(id hash.ObjectID) (*commitobj.Commit, error) {
	typ, payload, err := r.Objects.Read(id)
	if err != nil {
		return nil, err
	}
	if typ != potype.CommitObject {
		return nil, fmt.Errorf("repository: %s is not a commit object", id)
	}
	return commitobj.Decode(payload)
}

// HeadTree returns the flat path->blob mapping of HEAD's tree, or an
// empty mapping if there are no commits yet.
func (r *Repository) HeadTree() (map[string]hash.ObjectID, error) {
	c, _, ok, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]hash.ObjectID{}, nil
	}
	return r.ReadTree(c.Tree)
}

// CommitResult describes a freshly created commit, enough for the CLI
// to print "[<branch> <short-sha>] <message>".
type CommitResult struct {
	Branch string
	ID     hash.ObjectID
}

// Commit snapshots the current index into a new commit object on the
// branch HEAD currently points to (defaulting to refs/heads/master if
// HEAD is unparseable), advances that branch's ref, and returns the
// new commit's id.
func (r *Repository) Commit(message string, now time.Time) (CommitResult, error) {
	treeID, err := r.WriteTree()
	if err != nil {
		return CommitResult{}, err
	}

	branch, isSymbolic, err := r.Refs.CurrentBranch()
	if err != nil {
		// HEAD is absent or unparseable: default to master, per spec.
		branch, isSymbolic = "master", true
	}
	if !isSymbolic {
		branch = "HEAD"
	}
	branchPath := branch
	if isSymbolic {
		branchPath = "refs/heads/" + branch
	}

	var parent *hash.ObjectID
	if isSymbolic {
		if tip, ok, err := r.Refs.Resolve(branchPath); err != nil {
			return CommitResult{}, err
		} else if ok {
			parent = &tip
		}
	} else {
		if tip, ok, err := r.Refs.ResolveHead(); err != nil {
			return CommitResult{}, err
		} else if ok {
			parent = &tip
		}
	}

	user, err := r.Identity()
	if err != nil {
		return CommitResult{}, err
	}
	sig := commitobj.Signature{Name: user.Name, Email: user.Email, When: now.Unix()}

	c := &commitobj.Commit{
		Tree:      treeID,
		Parent:    parent,
		Author:    sig,
		Committer: sig,
		Message:   message,
	}

	id, err := r.Objects.Write(potype.CommitObject, c.Encode())
	if err != nil {
		return CommitResult{}, err
	}

	if isSymbolic {
		if err := r.Refs.WriteRef(branchPath, id); err != nil {
			return CommitResult{}, err
		}
	} else {
		if err := r.Refs.WriteHeadDetached(id); err != nil {
			return CommitResult{}, err
		}
	}

	return CommitResult{Branch: branch, ID: id}, nil
}
