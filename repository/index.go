package repository

import (
	"os"

	"github.com/jacobchin/jacobgit/format/index"
)

// LoadIndex reads the staging file. A missing file is not an error:
// it yields an empty index.
func (r *Repository) LoadIndex() (*index.Index, error) {
	f, err := os.Open(r.IndexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &index.Index{}, nil
		}
		return nil, err
	}
	defer f.Close()

	idx, err := index.NewDecoder(f).Decode()
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// SaveIndex unconditionally truncates and rewrites the staging file
// in idx's entry order.
func (r *Repository) SaveIndex(idx *index.Index) error {
	f, err := os.Create(r.IndexPath())
	if err != nil {
		return err
	}
	defer f.Close()

	return index.NewEncoder(f).Encode(idx)
}
