package display

import (
	"fmt"
)

// FormatCount returns "N noun" or "N nouns" for summary lines.
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Arrow formats a rename as "old -> new" for log lines.
func Arrow(from, to string) string {
	return fmt.Sprintf("%s -> %s", from, to)
}
