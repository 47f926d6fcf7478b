package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/depgate/pkg/depcheck"
	"github.com/vertti/depgate/pkg/logging"
	"github.com/vertti/depgate/pkg/output"
)

// ErrMissingDependencies is returned when at least one dependency is missing.
// The report has already been printed, so main only sets the exit status.
var ErrMissingDependencies = errors.New("missing dependencies")

// runCheck resolves the configured dependencies, prints the report, and
// returns ErrMissingDependencies if any are missing.
func runCheck(cmd *cobra.Command, cfg checkConfig, flags *rootFlags) error {
	checker := &depcheck.Checker{
		Resolver: cfg.Resolver,
		Aliases:  cfg.Aliases,
		Logger:   logging.New(logging.Options{Writer: cmd.ErrOrStderr(), Verbose: flags.verbose}),
	}

	report, err := checker.Check(cfg.Names)
	if err != nil {
		return err
	}

	if flags.json {
		err = output.WriteJSON(cmd.OutOrStdout(), report)
	} else {
		err = output.PrintReport(cmd.OutOrStdout(), report)
	}
	if err != nil {
		return err
	}

	if !report.OK() {
		return ErrMissingDependencies
	}
	return nil
}
