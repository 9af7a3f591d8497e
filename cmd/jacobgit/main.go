// Command jacobgit is the command-line entry point, built on cobra
// following the convention the rest of the retrieved corpus converges
// on for a polished CLI binary (the teacher's own cli/go-git/main.go
// uses a bare map dispatch instead).
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  zerolog.Logger
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		// All errors go to the same output stream as normal messages.
		fmt.Fprintln(os.Stdout, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jacobgit",
		Short:         "a minimal, local, content-addressed version-control system",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable diagnostic logging")

	cmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newWriteTreeCmd(),
		newCommitCmd(),
		newLogCmd(),
		newStatusCmd(),
		newDiffCmd(),
		newCheckoutCmd(),
		newBranchCmd(),
		newTagCmd(),
	)

	return cmd
}
