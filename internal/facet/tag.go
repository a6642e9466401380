package facet

import "strings"

// Item is one key[=value] entry of an xsd struct tag.
type Item struct {
	Key   string
	Value string
}

// Split tokenizes an xsd tag on commas. A pattern= item takes the remainder
// of the tag verbatim, commas included, so it must come last.
func Split(tag string) []Item {
	var items []Item
	rest := strings.TrimSpace(tag)
	for rest != "" {
		if strings.HasPrefix(rest, "pattern=") {
			items = append(items, Item{Key: "pattern", Value: rest[len("pattern="):]})
			break
		}
		part, tail, _ := strings.Cut(rest, ",")
		rest = strings.TrimSpace(tail)
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		items = append(items, Item{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	return items
}
