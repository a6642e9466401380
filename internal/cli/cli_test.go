package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/gdsxml/internal/binding"
)

const (
	airNS           = "http://www.travelport.com/schema/air_v48_0"
	validLocator    = `<AirReservationLocatorCode xmlns="` + airNS + `">ABC123</AirReservationLocatorCode>`
	shortLocator    = `<AirReservationLocatorCode xmlns="` + airNS + `">AB</AirReservationLocatorCode>`
	emptyTicketing  = `<AirTicketingReq xmlns="` + airNS + `"/>`
	undeclaredRoot  = `<Unknown xmlns="urn:nowhere"/>`
	malformedRecord = `<AirReservationLocatorCode xmlns="` + airNS + `">ABC123`
)

func runWithArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func violationLines(stderr string) int {
	n := 0
	for _, line := range strings.Split(stderr, "\n") {
		if strings.HasPrefix(line, "[") {
			n++
		}
	}
	return n
}

func TestLint(t *testing.T) {
	tests := []struct {
		name     string
		document string
		code     int
		stdout   string
		stderr   []string
	}{
		{name: "valid", document: validLocator, code: 0, stdout: "validates"},
		{name: "facet violation", document: shortLocator, code: 1, stderr: []string{"[cvc-minLength-valid]", "fails to validate"}},
		{name: "undeclared root", document: undeclaredRoot, code: 1, stderr: []string{"[cvc-elt.1]", "{urn:nowhere}Unknown"}},
		{name: "malformed", document: malformedRecord, code: 1, stderr: []string{"[xml-parse-error]"}},
		{name: "missing content", document: emptyTicketing, code: 1, stderr: []string{"[cvc-complex-type.2.4.b]", "AirTicketingReq/AirReservationLocatorCode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "doc.xml", tt.document)
			code, stdout, stderr := runWithArgs(t, "lint", path)
			assert.Equal(t, tt.code, code, stderr)
			if tt.stdout != "" {
				assert.Equal(t, path+" "+tt.stdout+"\n", stdout)
			}
			for _, want := range tt.stderr {
				assert.Contains(t, stderr, want)
			}
		})
	}
}

func TestLintMultipleDocuments(t *testing.T) {
	ok := writeFile(t, "ok.xml", validLocator)
	bad := writeFile(t, "bad.xml", shortLocator)

	code, stdout, stderr := runWithArgs(t, "lint", ok, bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, ok+" validates")
	assert.Contains(t, stderr, bad+" fails to validate")
}

func TestLintStopOnFirst(t *testing.T) {
	doc := writeFile(t, "req.xml", emptyTicketing)

	_, _, stderr := runWithArgs(t, "lint", doc)
	require.Greater(t, violationLines(stderr), 1, stderr)

	t.Run("flag", func(t *testing.T) {
		code, _, stderr := runWithArgs(t, "lint", "--stop-on-first", doc)
		assert.Equal(t, 1, code)
		assert.Equal(t, 1, violationLines(stderr), stderr)
	})

	t.Run("config file", func(t *testing.T) {
		cfg := writeFile(t, "gdsxml.toml", "stop_on_first = true\n")
		code, _, stderr := runWithArgs(t, "--config", cfg, "lint", doc)
		assert.Equal(t, 1, code)
		assert.Equal(t, 1, violationLines(stderr), stderr)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("GDSXML_STOP_ON_FIRST", "true")
		code, _, stderr := runWithArgs(t, "lint", doc)
		assert.Equal(t, 1, code)
		assert.Equal(t, 1, violationLines(stderr), stderr)
	})

	t.Run("flag overrides config", func(t *testing.T) {
		cfg := writeFile(t, "gdsxml.toml", "stop_on_first = true\n")
		_, _, stderr := runWithArgs(t, "--config", cfg, "lint", "--stop-on-first=false", doc)
		assert.Greater(t, violationLines(stderr), 1, stderr)
	})
}

func TestLintDefaultConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultConfigFile), []byte("max_depth = -2\n"), 0o600))
	doc := writeFile(t, "ok.xml", validLocator)
	t.Chdir(dir)

	code, _, stderr := runWithArgs(t, "lint", doc)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "max depth")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "lint without documents", args: []string{"lint"}, code: 2},
		{name: "unknown flag", args: []string{"lint", "--bogus", "x.xml"}, code: 2},
		{name: "missing config", args: []string{"--config", filepath.Join(t.TempDir(), "none.toml"), "catalog"}, code: 2},
		{name: "bad log level", args: []string{"--log-level", "loud", "catalog"}, code: 2},
		{name: "describe needs one element", args: []string{"describe"}, code: 2},
		{name: "describe bad format", args: []string{"describe", "--format", "xml", "AirTicketingReq"}, code: 2},
		{name: "gen without schema", args: []string{"gen"}, code: 2},
		{name: "missing document", args: []string{"lint", filepath.Join(t.TempDir(), "none.xml")}, code: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runWithArgs(t, tt.args...)
			assert.Equal(t, tt.code, code, stderr)
			assert.Contains(t, stderr, "error:")
		})
	}
}

func TestVerboseLogsDecisions(t *testing.T) {
	doc := writeFile(t, "ok.xml", validLocator)
	code, _, stderr := runWithArgs(t, "--verbose", "lint", doc)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "document accepted")
	assert.Contains(t, stderr, "*air.AirReservationLocatorCode")
}

func TestDescribe(t *testing.T) {
	code, stdout, stderr := runWithArgs(t, "describe", "AirReservationLocatorCode")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "element: AirReservationLocatorCode")
	assert.Contains(t, stdout, "namespace: "+airNS)
	assert.Contains(t, stdout, "minLength: 5")
	assert.Contains(t, stdout, "maxLength: 8")

	code, stdout, stderr = runWithArgs(t, "describe", "--format", "json", "{"+airNS+"}AirItinerary")
	require.Equal(t, 0, code, stderr)
	var d binding.Descriptor
	require.NoError(t, json.Unmarshal([]byte(stdout), &d))
	assert.Equal(t, "AirItinerary", d.Element)
	require.NotEmpty(t, d.Records)
	var segment *binding.FieldInfo
	for i := range d.Records[0].Fields {
		if d.Records[0].Fields[i].Name == "AirSegment" {
			segment = &d.Records[0].Fields[i]
		}
	}
	require.NotNil(t, segment)
	assert.Equal(t, 1, segment.MinOccurs)
	assert.Equal(t, "unbounded", segment.MaxOccurs)

	code, stdout, stderr = runWithArgs(t, "describe", "--format", "json", "{http://example.org/catalog}items")
	require.Equal(t, 0, code, stderr)
	d = binding.Descriptor{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &d))
	require.NotEmpty(t, d.Records)
	heads := map[string]string{}
	for _, f := range d.Records[0].Fields {
		if f.Group != nil {
			heads[f.Field] = f.Group.Head
			assert.Equal(t, "unbounded", f.Group.MaxOccurs, f.Field)
		}
	}
	assert.Equal(t, map[string]string{"Product": "product", "Shirt": "product", "Hat": "product"}, heads)
}

func TestDescribeLookupErrors(t *testing.T) {
	code, _, stderr := runWithArgs(t, "describe", "NoSuchElement")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "not in the catalog")

	code, _, stderr = runWithArgs(t, "describe", "product")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "ambiguous")
	assert.Contains(t, stderr, "{http://example.org/prod}product")
	assert.Contains(t, stderr, "{http://example.org/catalog}product")
}

func TestCatalog(t *testing.T) {
	code, stdout, stderr := runWithArgs(t, "catalog")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "{http://example.org/ord}order")
	assert.Contains(t, stdout, "chapter04.Order")
	assert.Contains(t, stdout, "{"+airNS+"}AirTicketingReq")

	code, stdout, _ = runWithArgs(t, "catalog", "--namespace", "http://example.org/catalog")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "{http://example.org/catalog}"), line)
	}
}

func TestGen(t *testing.T) {
	out := t.TempDir()
	code, stdout, stderr := runWithArgs(t, "gen",
		"--root", filepath.Join("..", "codegen", "testdata"),
		"--schema", "chapter04/ord.xsd",
		"--package", "http://example.org/ord=example.com/m/schema/chapter04",
		"--package", "http://example.org/prod=example.com/m/schema/chapter04",
		"--module", "example.com/m",
		"--out", out,
	)
	require.Equal(t, 0, code, stderr)

	ord := filepath.Join(out, "schema", "chapter04", "ord.go")
	prod := filepath.Join(out, "schema", "chapter04", "prod.go")
	assert.Equal(t, ord+"\n"+prod+"\n", stdout)
	src, err := os.ReadFile(ord)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(src), "// Code generated by xsdgen. DO NOT EDIT.\n"))
	assert.Contains(t, string(src), "package chapter04")
}

func TestGenFailures(t *testing.T) {
	root := filepath.Join("..", "codegen", "testdata")

	code, _, stderr := runWithArgs(t, "gen", "--root", root, "--schema", "chapter04/ord.xsd",
		"--package", "http://example.org/ord=example.com/ord", "--out", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no package configured")

	code, _, stderr = runWithArgs(t, "gen", "--root", root, "--schema", "../outside.xsd")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "must be a path inside")

	code, _, stderr = runWithArgs(t, "gen", "--root", root, "--schema", "missing.xsd",
		"--package", "urn:x=example.com/x")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "load schemas")
}
