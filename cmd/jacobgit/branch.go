package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBranchCmd() *cobra.Command {
	var del string

	cmd := &cobra.Command{
		Use:   "branch [<name>]",
		Short: "list, create, or delete branches",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			if del != "" {
				if err := repo.DeleteBranch(del); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted branch %s\n", del)
				return nil
			}

			out := cmd.OutOrStdout()

			if len(args) == 0 {
				list, err := repo.ListBranches()
				if err != nil {
					return err
				}
				for _, name := range list.Names {
					prefix := "  "
					if name == list.Current {
						prefix = "* "
					}
					fmt.Fprintf(out, "%s%s\n", prefix, name)
				}
				return nil
			}

			if err := repo.CreateBranch(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out, "Created branch %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&del, "delete", "d", "", "delete the named branch")
	return cmd
}
