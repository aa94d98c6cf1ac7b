// Package splitpath divides route patterns into their "/"-delimited
// components.
//
// Some route patterns embed named capture groups that themselves contain
// slashes, e.g. "/some/path/(?P<with_named_groups>a/b)/etc". The first such
// group is pulled out before the rest of the pattern is split, so it is kept
// as a single component.
package splitpath

import (
	"slices"
	"strings"

	"github.com/sjc5/routesplit/pkg/namedgroup"
)

// Split returns the non-empty components of path in their original order.
//
// The pattern is partitioned on the literal text of its first named group,
// not on its offset. If that exact text recurs later in path, the later
// occurrences act as separators too and are dropped from the result.
func Split(path string) []string {
	parts := []string{path}

	if m, ok := namedgroup.Find(path); ok {
		parts = strings.Split(path, m.Text)
		parts = slices.Insert(parts, 1, m.Text)
	}

	// "/some/path/(?P<g>a/b)/etc" is now ["/some/path/", "(?P<g>a/b)", "/etc"]

	components := make([]string, 0, estimateComponents(path))

	for _, part := range parts {
		if part == "" {
			continue
		}

		if namedgroup.Is(part) {
			components = append(components, part)
			continue
		}

		for _, seg := range strings.Split(part, "/") {
			if seg != "" {
				components = append(components, seg)
			}
		}
	}

	return components
}

func estimateComponents(path string) int {
	return strings.Count(path, "/") + 1
}
