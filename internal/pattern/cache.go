package pattern

import (
	"fmt"
	"regexp"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of compiled patterns kept by Compile.
const DefaultCacheSize = 1024

// Cache holds compiled patterns keyed by their XSD source.
type Cache struct {
	entries *lru.Cache[string, *regexp.Regexp]
}

// NewCache returns a cache holding up to size compiled patterns.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		return nil, fmt.Errorf("pattern cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Compile translates and compiles an XSD pattern, reusing earlier results.
func (c *Cache) Compile(xsd string) (*regexp.Regexp, error) {
	if re, ok := c.entries.Get(xsd); ok {
		return re, nil
	}
	goPattern, err := Translate(xsd)
	if err != nil {
		return nil, fmt.Errorf("pattern facet: %w", err)
	}
	re, err := regexp.Compile(goPattern)
	if err != nil {
		return nil, fmt.Errorf("pattern facet: failed to compile pattern '%s': %w", xsd, err)
	}
	c.entries.Add(xsd, re)
	return re, nil
}

// Len reports the number of cached patterns.
func (c *Cache) Len() int {
	return c.entries.Len()
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Compile uses the process-wide cache.
func Compile(xsd string) (*regexp.Regexp, error) {
	defaultOnce.Do(func() {
		// size is positive, so NewCache cannot fail
		defaultCache, _ = NewCache(DefaultCacheSize)
	})
	return defaultCache.Compile(xsd)
}

// Match reports whether value matches the XSD pattern.
func Match(xsd, value string) (bool, error) {
	re, err := Compile(xsd)
	if err != nil {
		return false, err
	}
	return re.MatchString(value), nil
}
