// Package cli implements the gdsxml command line.
package cli

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// usageError marks a failure caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// exitError carries an exit status whose message was already printed.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

type app struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	verbose    bool
	cfg        Config
	log        *zap.Logger
}

// Run executes the command line and returns the process exit status:
// 0 on success, 1 when a document fails or an operation errors, 2 on misuse.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}
	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	_ = a.log.Sync()
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	if _, werr := fmt.Fprintf(stderr, "error: %v\n", err); werr != nil {
		return 1
	}
	var usage *usageError
	if errors.As(err, &usage) {
		return 2
	}
	return 1
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "gdsxml",
		Short: "Validate and generate XML-Schema-derived records",
		Long: `gdsxml works with the record catalog generated from the Travelport
Universal API schemas and the bundled fixture schemas.

Examples:
  gdsxml lint request.xml                 # Validate a document
  gdsxml describe AirTicketingReq         # Show the constraints of a record
  gdsxml catalog                          # List every known root element
  gdsxml gen --schema air/Air.xsd --package ns=example.com/air`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.configPath, cmd.Flags())
			if err != nil {
				return &usageError{err: err}
			}
			log, err := newLogger(a.stderr, cfg.LogLevel, a.verbose)
			if err != nil {
				return &usageError{err: err}
			}
			a.cfg = cfg
			a.log = log
			a.log.Debug("configuration loaded",
				zap.String("file", cfg.File),
				zap.Int("max_depth", cfg.MaxDepth),
				zap.Bool("stop_on_first", cfg.StopOnFirst),
				zap.Bool("skip_patterns", cfg.SkipPatterns))
			return nil
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ./"+defaultConfigFile+" when present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		newLintCommand(a),
		newDescribeCommand(a),
		newCatalogCommand(a),
		newGenCommand(a),
	)
	return root
}

// usageArgs reports positional argument mistakes as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
