package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jacobchin/jacobgit/repository"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "create the .jacobgit repository skeleton",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := os.Getwd()
			if err != nil {
				return err
			}

			exists, err := repository.Init(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if exists {
				fmt.Fprintf(out, "jacobgit repository already exists at %s\n", filepath.Join(root, repository.MetaDirName))
				return nil
			}

			fmt.Fprintf(out, "Initialized empty jacobgit repository in %s\n", filepath.Join(root, repository.MetaDirName))
			return nil
		},
	}
}

func openRepo() (*repository.Repository, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return repository.Open(root)
}
