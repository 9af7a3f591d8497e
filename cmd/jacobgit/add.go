package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>...",
		Short: "stage the listed files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			if err := repo.Add(args); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d file(s) to the index.\n", len(args))
			return nil
		},
	}
}
