package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "show staged, modified, and untracked files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}

			st, err := repo.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(st.Staged) == 0 && len(st.Modified) == 0 && len(st.Untracked) == 0 {
				fmt.Fprintln(out, "Nothing to commit, working tree clean.")
				return nil
			}

			if len(st.Staged) > 0 {
				fmt.Fprintln(out, "Staged changes:")
				for _, p := range st.Staged {
					fmt.Fprintf(out, "  %s\n", p)
				}
			}
			if len(st.Modified) > 0 {
				fmt.Fprintln(out, "Modified (unstaged):")
				for _, p := range st.Modified {
					fmt.Fprintf(out, "  %s\n", p)
				}
			}
			if len(st.Untracked) > 0 {
				fmt.Fprintln(out, "Untracked files:")
				for _, p := range st.Untracked {
					fmt.Fprintf(out, "  %s\n", p)
				}
			}

			return nil
		},
	}
}
