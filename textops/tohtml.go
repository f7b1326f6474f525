package textops

import (
	"fmt"
	"regexp"
	"strings"
)

// headingPattern matches 1-6 leading # characters, at least one whitespace
// character, then non-empty content. Seven or more # never match: the
// quantifier backtracks but the character after the run must be whitespace.
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// ToHTML converts plain text to HTML line by line. Lines starting with
// 1-6 # become <h1>..<h6>; blank lines close the current paragraph;
// anything else opens or continues a paragraph, with <br> joining
// consecutive physical lines. Every opened <p> is closed before returning.
func ToHTML(text string) string {
	var out []string
	inParagraph := false

	closeParagraph := func() {
		if inParagraph {
			out = append(out, "</p>")
			inParagraph = false
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			closeParagraph()
			level := len(m[1])
			out = append(out, fmt.Sprintf("<h%d>%s</h%d>", level, Escape(m[2]), level))
			continue
		}

		if line == "" {
			closeParagraph()
			continue
		}

		if inParagraph {
			out = append(out, "<br>")
		} else {
			out = append(out, "<p>")
			inParagraph = true
		}
		out = append(out, Escape(line))
	}
	closeParagraph()

	return strings.Join(out, "\n")
}
