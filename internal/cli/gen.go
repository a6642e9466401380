package cli

import (
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacoelho/gdsxml/internal/codegen"
)

type genOptions struct {
	root     string
	schemas  []string
	out      string
	module   string
	packages map[string]string
}

func newGenCommand(a *app) *cobra.Command {
	var o genOptions
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate record packages from XSD schemas",
		Long: `Compile XSD schemas into Go record packages. Every target namespace
reachable from the schemas needs a --package mapping to an import path.

Examples:
  gdsxml gen --root testdata --schema chapter04/ord.xsd \
    --package http://example.org/ord=example.com/m/schema/chapter04 \
    --package http://example.org/prod=example.com/m/schema/chapter04 \
    --module example.com/m --out .`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.gen(o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.root, "root", ".", "directory schema paths are relative to")
	f.StringSliceVarP(&o.schemas, "schema", "s", nil, "root schema document (repeatable)")
	f.StringVarP(&o.out, "out", "o", ".", "output directory")
	f.StringVar(&o.module, "module", "", "module path; package directories are made relative to it")
	f.StringToStringVarP(&o.packages, "package", "p", nil, "namespace=import/path mapping (repeatable)")
	return cmd
}

func (a *app) gen(o genOptions) error {
	if len(o.schemas) == 0 {
		return &usageError{err: errors.New("at least one --schema is required")}
	}
	roots := make([]string, 0, len(o.schemas))
	for _, s := range o.schemas {
		p := filepath.ToSlash(filepath.Clean(s))
		if !fs.ValidPath(p) {
			return &usageError{err: errors.Newf("schema %s must be a path inside --root %s", s, o.root)}
		}
		roots = append(roots, p)
	}

	set, err := codegen.Load(os.DirFS(o.root), roots...)
	if err != nil {
		return errors.Wrap(err, "load schemas")
	}
	a.log.Info("schemas loaded", zap.Int("documents", len(set.Documents)))

	files, err := codegen.Generate(set, codegen.Config{Packages: o.packages, Module: o.module})
	if err != nil {
		return errors.Wrap(err, "generate")
	}
	for _, name := range slices.Sorted(maps.Keys(files)) {
		dst := filepath.Join(o.out, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return errors.Wrapf(err, "create %s", filepath.Dir(dst))
		}
		if err := os.WriteFile(dst, files[name], 0o644); err != nil {
			return errors.Wrapf(err, "write %s", dst)
		}
		a.log.Debug("file written", zap.String("file", dst), zap.Int("bytes", len(files[name])))
		if err := writeln(a.stdout, dst); err != nil {
			return err
		}
	}
	return nil
}
