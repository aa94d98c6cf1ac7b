package tsgen

import (
	"strings"
	"unicode"
)

// namespaceIdent turns a namespace such as "wp/v2" into a PascalCase
// TypeScript identifier ("WpV2"). Results starting with a digit get a
// leading underscore.
func namespaceIdent(ns string) string {
	var b strings.Builder
	upperNext := true

	for _, r := range ns {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}

	ident := b.String()
	if ident != "" && unicode.IsDigit(rune(ident[0])) {
		ident = "_" + ident
	}
	return ident
}
