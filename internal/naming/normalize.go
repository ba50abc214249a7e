package naming

import (
	"regexp"
	"strings"
)

// Runs of dots, underscores, and whitespace collapse to a single space.
var reSeparatorRun = regexp.MustCompile(`[._\s]+`)

// Hyphens acting as field separators: adjacent to whitespace or sitting at
// either end of the fragment. Hyphens embedded between non-space characters
// (compound words like "Thirty-Seven") deliberately do not match.
var reEdgeHyphens = regexp.MustCompile(`(^|\s)-+|-+(\s|$)`)

var reSpaceRun = regexp.MustCompile(` {2,}`)

// CleanFragment normalizes separators in a filename fragment: dots,
// underscores, and whitespace runs become single spaces, field-separator
// hyphens are removed, and the result carries no leading/trailing or
// doubled spaces. Idempotent; empty input yields empty output.
func CleanFragment(text string) string {
	text = reSeparatorRun.ReplaceAllString(text, " ")
	text = reEdgeHyphens.ReplaceAllString(text, " ")
	text = reSpaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
