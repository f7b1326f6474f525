package textops

import "regexp"

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags deletes every <...> tag from a fragment, leaving the text
// between and around the tags untouched. Lossy fallback for markup no
// dedicated conversion handles.
func StripTags(fragment string) string {
	return tagPattern.ReplaceAllString(fragment, "")
}
