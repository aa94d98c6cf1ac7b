// Package namedgroup recognizes regular-expression named capture groups,
// such as "(?P<id>[\d]+)", embedded in route patterns.
package namedgroup

import "regexp"

// Pattern matches one named capture group. The group may be opened with
// "(?P<name>", "(?<name>" or "(?'name'", and its body may hold at most one
// nested parenthesized expression. Submatch 1 is the group name and
// submatch 2 is the group's inner expression.
const Pattern = `\(\?(?:P<|<|')([^>']+)[>']([^\)]*(\))?\??)\)`

// RE is the compiled form of Pattern. Do not mutate.
var RE = regexp.MustCompile(Pattern)

// Match describes the leftmost named group found in a string.
type Match struct {
	Text   string // the full group, e.g. "(?P<id>[\d]+)"
	Name   string // e.g. "id"
	Expr   string // e.g. "[\d]+"
	Offset int    // byte offset of Text in the searched string
}

// Find returns the leftmost named group in s.
func Find(s string) (Match, bool) {
	loc := RE.FindStringSubmatchIndex(s)
	if loc == nil {
		return Match{}, false
	}
	return Match{
		Text:   s[loc[0]:loc[1]],
		Name:   s[loc[2]:loc[3]],
		Expr:   s[loc[4]:loc[5]],
		Offset: loc[0],
	}, true
}

// Is reports whether s is itself exactly one named group.
func Is(s string) bool {
	loc := RE.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

// Contains reports whether s holds a named group anywhere.
func Contains(s string) bool {
	return RE.MatchString(s)
}
