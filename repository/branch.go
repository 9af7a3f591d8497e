package repository

import (
	"fmt"

	"github.com/jacobchin/jacobgit/plumbing/ref"
)

// ErrPreconditionViolated covers the branch/tag precondition failures
// the spec names: branch already exists, deleting the current
// branch, no commits yet.
type ErrPreconditionViolated struct {
	Msg string
}

func (e *ErrPreconditionViolated) Error() string { return e.Msg }

// BranchList describes the branches to show, with the checked-out one
// flagged.
type BranchList struct {
	Names   []string
	Current string
}

// ListBranches returns every branch under refs/heads, alphabetically,
// along with the name of the currently checked-out branch (empty if
// HEAD is detached).
func (r *Repository) ListBranches() (BranchList, error) {
	names, err := r.Refs.ListBranches()
	if err != nil {
		return BranchList{}, err
	}

	current, _, err := r.Refs.CurrentBranch()
	if err != nil {
		return BranchList{}, err
	}

	return BranchList{Names: names, Current: current}, nil
}

// CreateBranch creates refs/heads/<name> pointing at HEAD's resolved
// commit. It fails if the branch exists, or if there are no commits
// yet to point it at.
func (r *Repository) CreateBranch(name string) error {
	path := ref.BranchRefPath(name)
	if r.Refs.Exists(path) {
		return &ErrPreconditionViolated{Msg: fmt.Sprintf("a branch named '%s' already exists", name)}
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

// DeleteBranch removes refs/heads/<name>. It fails if the branch does
// not exist or is the branch HEAD currently points to.
func (r *Repository) DeleteBranch(name string) error {
	path := ref.BranchRefPath(name)
	if !r.Refs.Exists(path) {
		return &ErrPreconditionViolated{Msg: fmt.Sprintf("branch '%s' not found", name)}
	}

	current, isSymbolic, err := r.Refs.CurrentBranch()
	if err != nil {
		return err
	}
	if isSymbolic && current == name {
		return &ErrPreconditionViolated{
			Msg: fmt.Sprintf("cannot delete the branch '%s' which you are currently on", name),
		}
	}

	return r.Refs.DeleteRef(path)
}
