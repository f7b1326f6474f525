package textops

import (
	"strings"
	"testing"
)

func TestToMarkdown_Headings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<h1>Title</h1>", "# Title"},
		{"<h2>Section</h2>", "## Section"},
		{"<h3>Sub</h3>", "### Sub"},
		{"<h6>Deep</h6>", "###### Deep"},
		{"<H1>Shouty</H1>", "# Shouty"},
		{`<h1 class="main">Attr</h1>`, "# Attr"},
		{"<h2><em>Inner</em> markup</h2>", "## Inner markup"},
	}
	for _, tt := range tests {
		if got := ToMarkdown(tt.in); got != tt.want {
			t.Errorf("ToMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToMarkdown_Paragraphs(t *testing.T) {
	got := ToMarkdown("<p>First.</p><p>Second.</p>")
	want := "First.\n\nSecond."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_InlineInsideParagraph(t *testing.T) {
	// Inline markup inside a paragraph must survive to its own stage,
	// not get flattened with the paragraph.
	got := ToMarkdown("<h1>T</h1><p>A <strong>B</strong></p>")
	want := "# T\n\nA **B**"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_Bold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<strong>bold</strong>", "**bold**"},
		{"<b>bold</b>", "**bold**"},
		{"<strong><em>nested</em></strong>", "**nested**"},
	}
	for _, tt := range tests {
		if got := ToMarkdown(tt.in); got != tt.want {
			t.Errorf("ToMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToMarkdown_Italic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<em>it</em>", "*it*"},
		{"<i>it</i>", "*it*"},
	}
	for _, tt := range tests {
		if got := ToMarkdown(tt.in); got != tt.want {
			t.Errorf("ToMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToMarkdown_InlineCode(t *testing.T) {
	got := ToMarkdown("<p>run <code>a &amp; b</code> now</p>")
	want := "run `a & b` now"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_CodeBlock(t *testing.T) {
	got := ToMarkdown("<pre><code>if x &lt; y {\n\treturn\n}\n</code></pre>")
	want := "```\nif x < y {\n\treturn\n}\n```"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_CodeBlockBeforeInlineCode(t *testing.T) {
	// The pre/code stage must consume the block before the inline code
	// stage can see its <code> tag.
	got := ToMarkdown("<pre><code>block</code></pre><p>and <code>inline</code></p>")
	want := "```\nblock\n```\n\nand `inline`"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_CodeBlockFollowedByParagraph(t *testing.T) {
	// The paragraph stage must not treat <pre> as a paragraph open tag;
	// matching it would swallow the block before the fencing stage runs.
	got := ToMarkdown("<pre><code>a &lt; b</code></pre><p>tail</p>")
	want := "```\na < b\n```\n\ntail"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_TagNamePrefixesDoNotMatch(t *testing.T) {
	// A tag that merely starts with a handled tag name falls through to
	// the residual sweep instead of being converted.
	got := ToMarkdown("<h1x>text</h1>")
	if got != "text" {
		t.Fatalf("prefix tag: got %q, want %q", got, "text")
	}

	got = ToMarkdown("<ulx>stray</ulx>")
	if got != "stray" {
		t.Fatalf("prefix tag: got %q, want %q", got, "stray")
	}
}

func TestToMarkdown_UnorderedList(t *testing.T) {
	got := ToMarkdown("<ul><li>One</li><li>Two</li><li>Three</li></ul>")
	want := "- One\n- Two\n- Three"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_OrderedList(t *testing.T) {
	got := ToMarkdown("<ol><li>First</li><li>Second</li></ol>")
	want := "1. First\n2. Second"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_OrderedListCounterRestarts(t *testing.T) {
	got := ToMarkdown("<ol><li>A</li><li>B</li></ol><ol><li>C</li></ol>")
	want := "1. A\n2. B\n\n1. C"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_Blockquote(t *testing.T) {
	got := ToMarkdown("<blockquote>Line one\nLine two</blockquote>")
	want := "> Line one\n> Line two"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_HorizontalRule(t *testing.T) {
	for _, in := range []string{"<hr>", "<hr/>", "<hr />", "<HR>"} {
		if got := ToMarkdown(in); got != "---" {
			t.Errorf("ToMarkdown(%q) = %q, want ---", in, got)
		}
	}
}

func TestToMarkdown_LineBreak(t *testing.T) {
	got := ToMarkdown("<p>one<br>two<br/>three</p>")
	want := "one\ntwo\nthree"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_Links(t *testing.T) {
	got := ToMarkdown(`<p>see <a href="https://example.com">the site</a></p>`)
	want := "see [the site](https://example.com)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// href must be the first attribute; otherwise the anchor falls
	// through to the residual sweep and only its text survives.
	got = ToMarkdown(`<a class="x" href="https://example.com">txt</a>`)
	if got != "txt" {
		t.Fatalf("non-leading href: got %q, want %q", got, "txt")
	}
}

func TestToMarkdown_Images(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`<img src="pic.png" alt="A pic">`, "![A pic](pic.png)"},
		{`<img alt="A pic" src="pic.png">`, "![A pic](pic.png)"},
		{`<img src="pic.png" alt="">`, "![](pic.png)"},
	}
	for _, tt := range tests {
		if got := ToMarkdown(tt.in); got != tt.want {
			t.Errorf("ToMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToMarkdown_ResidualTagsStripped(t *testing.T) {
	got := ToMarkdown("<table><tr><td>Cell</td></tr></table>")
	if got != "Cell" {
		t.Fatalf("table fallback: got %q, want %q", got, "Cell")
	}

	got = ToMarkdown("<div><span>keep me</span></div>")
	if got != "keep me" {
		t.Fatalf("div/span fallback: got %q", got)
	}
}

func TestToMarkdown_EntitiesRestoredOnce(t *testing.T) {
	got := ToMarkdown("<p>a &lt; b &amp;&amp; c &gt; d</p>")
	want := "a < b && c > d"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// Double-encoded entities decode exactly one level.
	got = ToMarkdown("<p>&amp;lt;</p>")
	if got != "&lt;" {
		t.Fatalf("double-encoded: got %q, want %q", got, "&lt;")
	}
}

func TestToMarkdown_BlankLineCollapse(t *testing.T) {
	got := ToMarkdown("<p>a</p>\n\n\n\n\n<p>b</p>")
	want := "a\n\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Fatal("runs of 3+ newlines must collapse")
	}
}

func TestToMarkdown_MultilineElements(t *testing.T) {
	got := ToMarkdown("<p>spans\nmultiple\nlines</p>")
	want := "spans\nmultiple\nlines"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToMarkdown_EmptyInput(t *testing.T) {
	if got := ToMarkdown(""); got != "" {
		t.Fatalf("empty: got %q", got)
	}
	if got := ToMarkdown("   \n\n  "); got != "" {
		t.Fatalf("whitespace: got %q", got)
	}
}

func TestToMarkdown_MalformedInput(t *testing.T) {
	// Malformed markup degrades to stripped text, never an error or panic.
	tests := []struct {
		in   string
		want string
	}{
		{"<p>unclosed", "unclosed"},
		{"orphan</p>", "orphan"},
		{"<h1>open<h2>mixed</h1>", "# openmixed"},
		{"plain text, no tags", "plain text, no tags"},
	}
	for _, tt := range tests {
		if got := ToMarkdown(tt.in); got != tt.want {
			t.Errorf("ToMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToMarkdown_Document(t *testing.T) {
	html := `<h1>Guide</h1>
<p>An <em>introduction</em> with a <a href="https://go.dev">link</a>.</p>
<h2>Steps</h2>
<ol><li>Install</li><li>Configure</li></ol>
<hr>
<p>Footnote &amp; credits.</p>`

	got := ToMarkdown(html)
	want := "# Guide\n\nAn *introduction* with a [link](https://go.dev).\n\n## Steps\n\n1. Install\n2. Configure\n\n---\n\nFootnote & credits."
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}
