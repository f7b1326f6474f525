package textops

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	separatorRuns = regexp.MustCompile(`[\s_]+`)
	dashRuns      = regexp.MustCompile(`-{2,}`)
)

// Slugify converts arbitrary human text into a URL-safe slug restricted to
// lowercase ASCII letters, digits and single dashes.
//
// Accented letters are NFD-decomposed so the diacritical marks can be
// dropped while the base letter survives ("Café" slugs to "cafe").
// The result may be empty when the input has no retainable characters;
// that is not an error and callers must accept it.
//
// Slugify is idempotent: slugifying a slug returns the same slug.
func Slugify(title string) string {
	s := norm.NFD.String(strings.ToLower(title))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining marks left over from decomposition
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	s = strings.TrimSpace(b.String())
	s = separatorRuns.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
