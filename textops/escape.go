package textops

import "strings"

// escaper maps the five HTML-reserved characters to their named entities.
// strings.Replacer runs a single left-to-right pass, so the ampersands in
// entities it emits are never rescanned (no double-escaping).
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// unescaper restores the six entities the converters accept. &nbsp; maps to
// a plain space and has no escape direction.
var unescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// Escape replaces &, <, >, " and ' with their named entities.
func Escape(s string) string { return escaper.Replace(s) }

// Unescape is the inverse of Escape, plus &nbsp; to space.
func Unescape(s string) string { return unescaper.Replace(s) }
