package cli

import (
	"encoding/json"
	"encoding/xml"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/gdsxml"
	"github.com/jacoelho/gdsxml/catalog"
	"github.com/jacoelho/gdsxml/internal/binding"
)

func newDescribeCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "describe <element>",
		Short: "Print the fields and constraints of a catalog record",
		Long: `Print every field of the record bound to an element, and of the records
reachable from it, with occurrence bounds and facets.

The element is a local name (AirTicketingReq) or a qualified name
({http://www.travelport.com/schema/air_v48_0}AirTicketingReq).`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.describe(args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}

func (a *app) describe(name, format string) error {
	if format != "yaml" && format != "json" {
		return &usageError{err: errors.Newf("unknown format %q (want yaml or json)", format)}
	}
	reg, err := catalog.New()
	if err != nil {
		return errors.Wrap(err, "build catalog")
	}
	t, err := lookupElement(reg, name)
	if err != nil {
		return err
	}
	d, err := binding.Describe(t)
	if err != nil {
		return errors.Wrapf(err, "describe %s", name)
	}

	if format == "json" {
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		return writeln(a.stdout, string(data))
	}
	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return enc.Close()
}

// lookupElement finds a record by qualified name or by an unambiguous local name.
func lookupElement(reg *gdsxml.Registry, name string) (reflect.Type, error) {
	if rest, ok := strings.CutPrefix(name, "{"); ok {
		ns, local, ok := strings.Cut(rest, "}")
		if !ok {
			return nil, &usageError{err: errors.Newf("malformed qualified name %q", name)}
		}
		t, found := reg.Lookup(xml.Name{Space: ns, Local: local})
		if !found {
			return nil, errors.Newf("element %s is not in the catalog", name)
		}
		return t, nil
	}

	var matches []xml.Name
	for _, n := range reg.Names() {
		if n.Local == name {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return nil, errors.Newf("element %s is not in the catalog", name)
	case 1:
		t, _ := reg.Lookup(matches[0])
		return t, nil
	default:
		qualified := make([]string, len(matches))
		for i, n := range matches {
			qualified[i] = "{" + n.Space + "}" + n.Local
		}
		return nil, errors.Newf("element %s is ambiguous: %s", name, strings.Join(qualified, ", "))
	}
}
