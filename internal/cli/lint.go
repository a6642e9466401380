package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacoelho/gdsxml"
	"github.com/jacoelho/gdsxml/catalog"
	xsderrors "github.com/jacoelho/gdsxml/errors"
)

func newLintCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint <document.xml>...",
		Short: "Validate documents against the record catalog",
		Long: `Decode each document into the record bound to its root element and
validate it. Use "-" to read a document from standard input.

Exit status is 1 when any document fails to validate.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.lint(cmd.InOrStdin(), args)
		},
	}
	f := cmd.Flags()
	f.Int("max-depth", 0, "record nesting limit (0 uses the default, -1 disables it)")
	f.Int("max-document-size", 0, "document size limit in bytes (0 uses the default)")
	f.Bool("stop-on-first", false, "report only the first violation of each document")
	f.Bool("skip-patterns", false, "do not check pattern facets")
	return cmd
}

func (a *app) lint(stdin io.Reader, paths []string) error {
	opts := a.cfg.validateOptions()
	if err := opts.Validate(); err != nil {
		return &usageError{err: err}
	}
	reg, err := catalog.New()
	if err != nil {
		return errors.Wrap(err, "build catalog")
	}
	a.log.Debug("catalog ready", zap.Int("records", reg.Len()))

	failed := 0
	for _, path := range paths {
		ok, err := a.lintFile(reg, stdin, path, opts)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		a.log.Debug("lint finished", zap.Int("documents", len(paths)), zap.Int("failed", failed))
		return &exitError{code: 1}
	}
	return nil
}

func (a *app) lintFile(reg *gdsxml.Registry, stdin io.Reader, path string, opts gdsxml.ValidateOptions) (bool, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return false, errors.Wrap(err, "open document")
		}
		defer f.Close()
		r = f
	}

	v, err := reg.DecodeWithOptions(r, opts)
	if err != nil {
		violations, ok := xsderrors.AsValidations(err)
		if !ok {
			return false, errors.Wrapf(err, "validate %s", path)
		}
		for i := range violations {
			if err := writeln(a.stderr, violations[i].Error()); err != nil {
				return false, err
			}
		}
		a.log.Debug("document rejected", zap.String("file", path), zap.Int("violations", len(violations)))
		return false, writef(a.stderr, "%s fails to validate\n", path)
	}
	a.log.Debug("document accepted", zap.String("file", path), zap.String("record", fmt.Sprintf("%T", v)))
	return true, writef(a.stdout, "%s validates\n", path)
}
