package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWriteTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write-tree",
		Short: "build a tree object from the index and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			id, err := repo.WriteTree()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tree written: %s\n", id)
			return nil
		},
	}
}
