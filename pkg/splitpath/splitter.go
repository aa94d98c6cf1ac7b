package splitpath

import (
	"slices"

	"github.com/sjc5/routesplit/pkg/lru"
)

const DefaultCacheSize = 256

// Splitter memoizes Split results. A Splitter is safe for concurrent use.
type Splitter struct {
	cache *lru.Cache[string, []string]
}

// NewSplitter returns a Splitter holding at most maxItems results. A
// non-positive maxItems falls back to DefaultCacheSize.
func NewSplitter(maxItems int) *Splitter {
	if maxItems <= 0 {
		maxItems = DefaultCacheSize
	}
	return &Splitter{cache: lru.NewCache[string, []string](maxItems)}
}

// Split behaves exactly like the package-level Split. The returned slice is
// owned by the caller.
func (s *Splitter) Split(path string) []string {
	if s == nil {
		return Split(path)
	}
	if cached, ok := s.cache.Get(path); ok {
		return slices.Clone(cached)
	}
	components := Split(path)
	s.cache.Set(path, slices.Clone(components))
	return components
}

// Len returns the number of cached patterns.
func (s *Splitter) Len() int {
	if s == nil {
		return 0
	}
	return s.cache.Len()
}
