package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(run(defaultConfig(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit status.
// A missing dependency has already been reported, so only other errors
// are printed.
func run(cfg checkConfig, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrMissingDependencies) {
			fmt.Fprintf(stderr, "depgate: %v\n", err)
		}
		return 1
	}
	return 0
}

type rootFlags struct {
	json    bool
	verbose bool
}

func newRootCmd(cfg checkConfig) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "depgate",
		Short:         "Check that required dependencies resolve in this environment",
		Long:          "Depgate resolves a built-in list of dependencies and exits non-zero if any are missing.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, cfg, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "print the report as JSON")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log each resolution to stderr")

	return cmd
}
