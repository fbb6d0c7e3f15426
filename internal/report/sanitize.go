package report

import "strings"

// typographicReplacer substitutes the common typographic characters that the
// single-byte document encoding cannot carry with ASCII equivalents. It runs
// before the Latin-1 strip so the substitutions actually apply.
var typographicReplacer = strings.NewReplacer(
	"•", "- ", // bullet
	"→", "->", // right arrow
	"—", "-", // em dash
	"–", "-", // en dash
)

// Sanitize normalizes text for the document encoding: typographic characters
// become their ASCII equivalents, then every rune above U+00FF is dropped.
// Sanitize is idempotent and must be applied to every piece of text placed on
// a page, template and user-supplied alike.
func Sanitize(s string) string {
	s = typographicReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= 0xFF {
			b.WriteRune(r)
		}
	}
	return b.String()
}
