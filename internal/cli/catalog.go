package cli

import (
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jacoelho/gdsxml/catalog"
)

func newCatalogCommand(a *app) *cobra.Command {
	var namespace string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the root elements known to the catalog",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.catalog(namespace)
		},
	}
	cmd.Flags().StringVar(&namespace, "namespace", "", "only list elements of this namespace")
	return cmd
}

func (a *app) catalog(namespace string) error {
	reg, err := catalog.New()
	if err != nil {
		return errors.Wrap(err, "build catalog")
	}
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, name := range reg.Names() {
		if namespace != "" && name.Space != namespace {
			continue
		}
		t, _ := reg.Lookup(name)
		if err := writef(tw, "{%s}%s\t%s\n", name.Space, name.Local, t); err != nil {
			return err
		}
	}
	return tw.Flush()
}
