package render

import "strings"

var (
	textReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	attrReplacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// Escape escapes text for safe inclusion in HTML content.
// Markup nodes never escape on their own; callers pass untrusted text
// through Escape before handing it to the tree.
func Escape(s string) string {
	return textReplacer.Replace(s)
}

// EscapeAttr escapes text for safe inclusion in an attribute value.
// In addition to the standard HTML entities, it also escapes
// whitespace characters that could break attribute parsing.
func EscapeAttr(s string) string {
	return attrReplacer.Replace(s)
}

// Escaped is a Renderable whose source text is escaped at render time.
type Escaped struct {
	Source Renderable
}

// Render implements Renderable.
func (e Escaped) Render() string {
	return Escape(e.Source.Render())
}
