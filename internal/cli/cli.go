// Package cli implements the movavg command-line interface.
//
// The CLI reads a numeric sequence from a file or stdin, runs one or more
// smoothing variants over it and writes the resulting series as JSON or CSV
// for an external renderer. Logging goes to stderr through
// charmbracelet/log; --verbose switches to debug level.
//
// # Commands
//
//   - compute: smooth a sequence with the selected variants
//   - variants: list the known variant selectors
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. It is
// normally fed from ldflags by the main package.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the movavg CLI against the process's standard streams.
func Execute(ctx context.Context) error {
	return newRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCommand wires the command tree to the given streams.
func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "movavg",
		Short:         "movavg smooths numeric sequences with classic and balanced moving averages",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(errOut, level)))
		},
	}

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("movavg %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newComputeCommand())
	root.AddCommand(newVariantsCommand())

	return root
}
