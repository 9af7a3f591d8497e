// Package config reads the repository's user identity, adapted from
// the teacher's config.Config (which parses the much larger
// core/remote/submodule sections via gcfg) down to the single [user]
// section this system's commit author/committer lines need.
package config

import (
	"os"

	"github.com/go-git/gcfg"
)

// DefaultName and DefaultEmail are used when no config file is
// present, or it has no [user] section, matching the identity the
// source implementation hard-codes.
const (
	DefaultName  = "Jacob Chin"
	DefaultEmail = "you@example.com"
)

// FileName is the config file's name under the repository metadata
// directory.
const FileName = "config"

// User holds the identity written into commit author/committer
// lines.
type User struct {
	Name  string
	Email string
}

type raw struct {
	User struct {
		Name  string
		Email string
	}
}

// Load reads "<metaDir>/config" and returns the configured identity,
// falling back to DefaultName/DefaultEmail field-by-field when the
// file is absent or a field is unset.
func Load(metaDir string) (User, error) {
	u := User{Name: DefaultName, Email: DefaultEmail}

	data, err := os.ReadFile(metaDir + "/" + FileName)
	if err != nil {
		if os.IsNotExist(err) {
			return u, nil
		}
		return u, err
	}

	var cfg raw
	if err := gcfg.ReadStringInto(&cfg, string(data)); err != nil {
		return u, err
	}

	if cfg.User.Name != "" {
		u.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		u.Email = cfg.User.Email
	}

	return u, nil
}
