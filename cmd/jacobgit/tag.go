package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTagCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "tag [<name>]",
		Short: "list or create lightweight tags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			if list || len(args) == 0 {
				entries, err := repo.ListTags()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No tags exist yet.")
					return nil
				}
				for _, e := range entries {
					fmt.Fprintf(out, "%s\t%s\n", e.Name, e.ID.Short())
				}
				return nil
			}

			if err := repo.CreateTag(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created tag %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "list tags")
	return cmd
}
