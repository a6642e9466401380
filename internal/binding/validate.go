package binding

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	xsderrors "github.com/jacoelho/gdsxml/errors"
	"github.com/jacoelho/gdsxml/internal/occurs"
)

// DefaultMaxDepth bounds record nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

// Options tunes a validation walk.
type Options struct {
	// MaxDepth limits record nesting; 0 uses DefaultMaxDepth, negative disables the limit.
	MaxDepth     int
	StopOnFirst  bool
	SkipPatterns bool
}

func (o Options) maxDepth() int {
	switch {
	case o.MaxDepth == 0:
		return DefaultMaxDepth
	case o.MaxDepth < 0:
		return -1
	default:
		return o.MaxDepth
	}
}

// Validate walks a record value (struct or pointer to struct) and reports
// every declarative constraint it breaks. The error is non-nil only when the
// record type cannot be compiled into a plan.
func Validate(v any, opts Options) (xsderrors.ValidationList, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return xsderrors.ValidationList{xsderrors.NewValidation(xsderrors.ErrNilRecord, "record is nil", "")}, nil
	}
	p, err := PlanFor(rv.Type())
	if err != nil {
		return nil, err
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return xsderrors.ValidationList{xsderrors.NewValidationf(xsderrors.ErrNilRecord, p.RootName(), "record %s is nil", p.Type)}, nil
		}
		rv = rv.Elem()
	}
	w := &walker{opts: opts, maxDepth: opts.maxDepth()}
	w.record(p, rv, p.RootName(), 1)
	if len(w.errs) == 0 {
		return nil, nil
	}
	return w.errs, nil
}

type walker struct {
	opts     Options
	maxDepth int
	errs     xsderrors.ValidationList
}

func (w *walker) done() bool {
	return w.opts.StopOnFirst && len(w.errs) > 0
}

func (w *walker) add(v xsderrors.Validation) {
	if w.done() {
		return
	}
	w.errs = append(w.errs, v)
}

func (w *walker) record(p *Plan, rv reflect.Value, path string, depth int) {
	if w.maxDepth >= 0 && depth > w.maxDepth {
		w.add(xsderrors.NewValidationf(xsderrors.ErrMaxDepth, path,
			"record nesting exceeds max depth %d", w.maxDepth))
		return
	}
	for _, f := range p.Fields {
		if w.done() {
			return
		}
		if g := f.Group; g != nil && g.Fields[0] == f {
			w.group(g, rv, path)
		}
		w.field(f, rv.FieldByIndex(f.Index), path, depth)
	}
}

// group checks the summed occurrences of a substitution group. Violations
// are reported at the head element's path.
func (w *walker) group(g *Group, rv reflect.Value, path string) {
	n := 0
	for _, f := range g.Fields {
		fv := rv.FieldByIndex(f.Index)
		if f.Shape == ShapeSlice {
			n += fv.Len()
			continue
		}
		if _, present := presentValue(f, fv); present {
			n++
		}
	}
	w.occurrences(g.Name, g.Occurs, n, path+"/"+g.Name)
}

func (w *walker) field(f *Field, fv reflect.Value, path string, depth int) {
	switch f.Kind {
	case KindAttr:
		attrPath := path + "/@" + f.Local
		v, present := presentValue(f, fv)
		if !present {
			if f.Required {
				w.add(xsderrors.NewValidationf(xsderrors.ErrRequiredAttributeMissing, attrPath,
					"Attribute '%s' must appear on element '%s'", f.Local, lastStep(path)))
			}
			return
		}
		w.scalar(f, v, attrPath)
	case KindCharData:
		v, _ := presentValue(f, fv)
		if v.IsValid() {
			w.scalar(f, v, path)
		}
	default:
		w.element(f, fv, path, depth)
	}
}

func (w *walker) element(f *Field, fv reflect.Value, path string, depth int) {
	childPath := path + "/" + f.Local

	if f.Shape == ShapeSlice {
		n := fv.Len()
		if !w.count(f, n, childPath) {
			return
		}
		for i := range n {
			if w.done() {
				return
			}
			w.value(f, fv.Index(i), childPath+"["+strconv.Itoa(i+1)+"]", depth)
		}
		return
	}

	v, present := presentValue(f, fv)
	count := 0
	if present {
		count = 1
	}
	if !w.count(f, count, childPath) || !present {
		return
	}
	w.value(f, v, childPath, depth)
}

// count reports occurrence violations and whether the walk should descend.
func (w *walker) count(f *Field, n int, path string) bool {
	return w.occurrences(f.Local, f.Occurs, n, path)
}

func (w *walker) occurrences(local string, b occurs.Bounds, n int, path string) bool {
	switch b.Check(n) {
	case occurs.TooFew:
		if n == 0 {
			w.add(xsderrors.NewValidationf(xsderrors.ErrRequiredElementMissing, path,
				"Element '%s' is required but missing", local))
		} else {
			w.add(xsderrors.NewValidationf(xsderrors.ErrRequiredElementMissing, path,
				"Element '%s' occurs %d times, minOccurs is %d", local, n, b.Min))
		}
		return n > 0
	case occurs.TooMany:
		w.add(xsderrors.NewValidationf(xsderrors.ErrUnexpectedElement, path,
			"Element '%s' occurs %d times, maxOccurs is %s", local, n, occurs.FormatMax(b.Max)))
	}
	return true
}

func (w *walker) value(f *Field, v reflect.Value, path string, depth int) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if f.Plan != nil {
		w.record(f.Plan, v, path, depth+1)
		return
	}
	w.scalar(f, v, path)
}

func (w *walker) scalar(f *Field, v reflect.Value, path string) {
	if f.Facets.IsZero() {
		return
	}
	lex, err := lexical(v)
	if err != nil {
		w.add(xsderrors.NewValidationf(xsderrors.ErrDatatypeInvalid, path, "cannot render value: %v", err))
		return
	}
	fs := f.Facets
	if w.opts.SkipPatterns {
		fs.Patterns = nil
	}
	for _, viol := range fs.Check(lex) {
		w.add(xsderrors.Validation{
			Code:     string(viol.Code),
			Message:  viol.Message,
			Path:     path,
			Actual:   viol.Actual,
			Expected: viol.Expected,
		})
	}
}

// presentValue dereferences a single-valued field and reports whether it
// counts as present. Empty non-pointer strings are absent; other non-pointer
// scalars are always present.
func presentValue(f *Field, fv reflect.Value) (reflect.Value, bool) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return reflect.Value{}, false
		}
		return fv.Elem(), true
	}
	if f.Plan == nil && f.Kind != KindCharData {
		switch fv.Kind() {
		case reflect.String:
			return fv, fv.Len() > 0
		case reflect.Slice:
			return fv, fv.Len() > 0
		}
	}
	return fv, true
}

// lastStep returns the element name of the final path step.
func lastStep(path string) string {
	step := path
	if i := strings.LastIndexByte(step, '/'); i >= 0 {
		step = step[i+1:]
	}
	if i := strings.IndexByte(step, '['); i >= 0 {
		step = step[:i]
	}
	return step
}

// String renders a field for diagnostics.
func (f *Field) String() string {
	name := f.Local
	if f.Kind == KindAttr {
		name = "@" + name
	}
	return fmt.Sprintf("%s %s %s", f.GoName, name, f.Occurs)
}
