package textops

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern-based HTML to Markdown conversion. Each pattern below is one
// stage of an ordered rewrite pipeline over the whole fragment; the order
// in ToMarkdown is load-bearing. Block elements are consumed before inline
// ones so that, for example, the inline-code stage never re-matches a code
// block already fenced, and the residual tag sweep runs last.
var (
	h1Pattern = regexp.MustCompile(`(?is)<h1\b[^>]*>(.*?)</h1>`)
	h2Pattern = regexp.MustCompile(`(?is)<h2\b[^>]*>(.*?)</h2>`)
	h3Pattern = regexp.MustCompile(`(?is)<h3\b[^>]*>(.*?)</h3>`)
	h4Pattern = regexp.MustCompile(`(?is)<h4\b[^>]*>(.*?)</h4>`)
	h5Pattern = regexp.MustCompile(`(?is)<h5\b[^>]*>(.*?)</h5>`)
	h6Pattern = regexp.MustCompile(`(?is)<h6\b[^>]*>(.*?)</h6>`)

	// The \b after each tag name keeps prefix-sharing tags apart: without
	// it the paragraph pattern would swallow a <pre> open tag.
	paragraphPattern  = regexp.MustCompile(`(?is)<p\b[^>]*>(.*?)</p>`)
	blockquotePattern = regexp.MustCompile(`(?is)<blockquote\b[^>]*>(.*?)</blockquote>`)
	codeBlockPattern  = regexp.MustCompile(`(?is)<pre\b[^>]*>\s*<code\b[^>]*>(.*?)</code>\s*</pre>`)
	ulPattern         = regexp.MustCompile(`(?is)<ul\b[^>]*>(.*?)</ul>`)
	olPattern         = regexp.MustCompile(`(?is)<ol\b[^>]*>(.*?)</ol>`)
	liPattern         = regexp.MustCompile(`(?is)<li\b[^>]*>(.*?)</li>`)
	hrPattern         = regexp.MustCompile(`(?i)<hr\s*/?>`)
	brPattern         = regexp.MustCompile(`(?i)<br\s*/?>`)

	boldPattern       = regexp.MustCompile(`(?is)<(?:strong|b)\b[^>]*>(.*?)</(?:strong|b)>`)
	italicPattern     = regexp.MustCompile(`(?is)<(?:em|i)\b[^>]*>(.*?)</(?:em|i)>`)
	inlineCodePattern = regexp.MustCompile(`(?is)<code\b[^>]*>(.*?)</code>`)
	linkPattern       = regexp.MustCompile(`(?is)<a\s+href="([^"]*)"[^>]*>(.*?)</a>`)
	imgSrcAltPattern  = regexp.MustCompile(`(?i)<img\s+src="([^"]*)"\s+alt="([^"]*)"[^>]*>`)
	imgAltSrcPattern  = regexp.MustCompile(`(?i)<img\s+alt="([^"]*)"\s+src="([^"]*)"[^>]*>`)

	blankLineRuns = regexp.MustCompile(`\n{3,}`)
)

var headingStages = []*regexp.Regexp{h1Pattern, h2Pattern, h3Pattern, h4Pattern, h5Pattern, h6Pattern}

// rewrite replaces every non-overlapping match of pat with the result of f
// applied to the match's submatch groups.
func rewrite(pat *regexp.Regexp, s string, f func(groups []string) string) string {
	return pat.ReplaceAllStringFunc(s, func(m string) string {
		return f(pat.FindStringSubmatch(m))
	})
}

// ToMarkdown converts an HTML fragment to Markdown through an ordered
// sequence of global rewrites, then removes whatever tags remain, restores
// entities and collapses blank-line runs.
//
// Elements without a dedicated stage (tables, definition lists, ...) lose
// their structure and survive as stripped inner text. Nesting beyond one
// level of list items is not guaranteed to convert cleanly.
func ToMarkdown(html string) string {
	md := html

	// Headings h1 through h6. Must run before the paragraph and residual
	// stages so their inner markup can still be identified and stripped.
	for level, pat := range headingStages {
		hashes := strings.Repeat("#", level+1)
		md = rewrite(pat, md, func(g []string) string {
			return hashes + " " + strings.TrimSpace(StripTags(g[1])) + "\n\n"
		})
	}

	// Paragraphs. Inner markup stays in place for the inline stages below.
	md = rewrite(paragraphPattern, md, func(g []string) string {
		return strings.TrimSpace(g[1]) + "\n\n"
	})

	// Blockquotes: one "> " prefix per inner line.
	md = rewrite(blockquotePattern, md, func(g []string) string {
		lines := strings.Split(strings.TrimSpace(StripTags(g[1])), "\n")
		for i, line := range lines {
			lines[i] = "> " + line
		}
		return strings.Join(lines, "\n") + "\n\n"
	})

	// Fenced code blocks. Content is unescaped, never tag-stripped: code
	// must keep its literal text.
	md = rewrite(codeBlockPattern, md, func(g []string) string {
		return "```\n" + strings.Trim(Unescape(g[1]), "\n") + "\n```\n\n"
	})

	// Unordered lists.
	md = rewrite(ulPattern, md, func(g []string) string {
		var b strings.Builder
		for _, item := range liPattern.FindAllStringSubmatch(g[1], -1) {
			b.WriteString("- ")
			b.WriteString(strings.TrimSpace(StripTags(item[1])))
			b.WriteByte('\n')
		}
		return b.String() + "\n"
	})

	// Ordered lists: the counter restarts at 1 for every <ol> block.
	md = rewrite(olPattern, md, func(g []string) string {
		var b strings.Builder
		for n, item := range liPattern.FindAllStringSubmatch(g[1], -1) {
			fmt.Fprintf(&b, "%d. %s\n", n+1, strings.TrimSpace(StripTags(item[1])))
		}
		return b.String() + "\n"
	})

	md = hrPattern.ReplaceAllString(md, "---\n\n")
	md = brPattern.ReplaceAllString(md, "\n")

	// Inline elements. Bold and italic content is tag-stripped but not
	// unescaped at this point; entity restoration happens once, at the end.
	md = rewrite(boldPattern, md, func(g []string) string {
		return "**" + StripTags(g[1]) + "**"
	})
	md = rewrite(italicPattern, md, func(g []string) string {
		return "*" + StripTags(g[1]) + "*"
	})
	md = rewrite(inlineCodePattern, md, func(g []string) string {
		return "`" + Unescape(g[1]) + "`"
	})

	// Links: only the double-quoted href form, and href must be the first
	// attribute. Images are attempted in both attribute orders.
	md = rewrite(linkPattern, md, func(g []string) string {
		return "[" + StripTags(g[2]) + "](" + g[1] + ")"
	})
	md = imgSrcAltPattern.ReplaceAllString(md, "![$2]($1)")
	md = imgAltSrcPattern.ReplaceAllString(md, "![$1]($2)")

	// Whatever is left is markup this converter does not understand:
	// drop the delimiters, keep the text.
	md = StripTags(md)
	md = Unescape(md)

	md = blankLineRuns.ReplaceAllString(md, "\n\n")
	return strings.TrimSpace(md)
}
