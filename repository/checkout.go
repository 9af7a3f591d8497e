package repository

import (
	"errors"

	commitobj "github.com/jacobchin/jacobgit/object"
	"github.com/jacobchin/jacobgit/plumbing/hash"
	potype "github.com/jacobchin/jacobgit/plumbing/object"
	"github.com/jacobchin/jacobgit/plumbing/ref"
	"github.com/jacobchin/jacobgit/storage/objectstore"
	"github.com/jacobchin/jacobgit/worktree"
)

// ErrInvalidTarget is returned by Checkout when target is neither an
// existing branch name nor a valid commit object id.
var ErrInvalidTarget = errors.New("repository: checkout target is neither a branch nor a valid commit")

// Checkout materializes target (a branch name or a raw commit id)
// onto the working directory and updates HEAD accordingly. It does
// not check for uncommitted changes; see worktree.Checkout.
func (r *Repository) Checkout(target string) error {
	var commitID hash.ObjectID
	var detached bool

	branchPath := ref.BranchRefPath(target)
	if r.Refs.Exists(branchPath) {
		id, ok, err := r.Refs.Resolve(branchPath)
		if err != nil {
			return err
		}
		if ok {
			commitID = id
		}
	} else {
		id, err := hash.FromHex(target)
		if err != nil {
			return ErrInvalidTarget
		}
		commitID = id
		detached = true
	}

	if !commitID.IsZero() {
		typ, payload, err := r.Objects.Read(commitID)
		if err != nil {
			if errors.Is(err, objectstore.ErrNotFound) {
				return ErrInvalidTarget
			}
			return err
		}
		if typ != potype.CommitObject {
			return ErrInvalidTarget
		}

		c, err := commitobj.Decode(payload)
		if err != nil {
			return ErrInvalidTarget
		}

		targetTree, err := r.ReadTree(c.Tree)
		if err != nil {
			return err
		}

		if err := worktree.Checkout(r.Root, targetTree, func(id hash.ObjectID) ([]byte, error) {
			_, payload, err := r.Objects.Read(id)
			return payload, err
		}); err != nil {
			return err
		}
	}

	if detached {
		return r.Refs.WriteHeadDetached(commitID)
	}
	return r.Refs.WriteHeadSymbolic(branchPath)
}
