package svg

import "strings"

// xmlEscaper replaces the five XML special characters with their named entities.
var xmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"&", "&amp;",
	"'", "&apos;",
	`"`, "&quot;",
)

// EscapeText makes s safe to embed as SVG text content or attribute value.
func EscapeText(s string) string {
	return xmlEscaper.Replace(s)
}
