package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var initialisms = map[string]bool{
	"API": true, "HTTP": true, "ID": true, "URI": true, "URL": true, "UUID": true, "XML": true,
}

// goName turns an XML name into an exported Go identifier.
func goName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	// a Caser keeps state between calls
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, p := range parts {
		for _, w := range camelWords(title.String(p)) {
			if up := strings.ToUpper(w); initialisms[up] {
				w = up
			}
			b.WriteString(w)
		}
	}
	name := b.String()
	if name == "" {
		return "X"
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsLetter(r) {
		name = "X" + name
	}
	return name
}

// camelWords splits "TraceIdValue" into Trace, Id, Value and keeps acronym
// runs such as "IATANumber" as IATA, Number.
func camelWords(s string) []string {
	runes := []rune(s)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		default:
			continue
		}
		words = append(words, string(runes[start:i]))
		start = i
	}
	return append(words, string(runes[start:]))
}

// fileStem maps "AirReqRsp.xsd" to "air_req_rsp".
func fileStem(systemID string) string {
	base := systemID
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(base, ".xsd")
	parts := strings.FieldsFunc(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var words []string
	for _, p := range parts {
		for _, w := range camelWords(p) {
			words = append(words, strings.ToLower(w))
		}
	}
	return strings.Join(words, "_")
}
