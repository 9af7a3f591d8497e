package repository

import "github.com/jacobchin/jacobgit/worktree"

// Status classifies the working tree into staged/modified/untracked
// paths by comparing it against the index and HEAD's tree.
func (r *Repository) Status() (worktree.Status, error) {
	idx, err := r.LoadIndex()
	if err != nil {
		return worktree.Status{}, err
	}

	headTree, err := r.HeadTree()
	if err != nil {
		return worktree.Status{}, err
	}

	return worktree.ComputeStatus(r.Root, idx, headTree)
}
