package naming

import (
	"path/filepath"
	"strings"
)

// ResolveShowName picks the final show name for a file. relPath is the file
// path relative to the processing root, fromFilename is the name recovered
// from the stem text (possibly empty).
//
// The folder layout is the most reliable source: when the file lives inside
// a subdirectory of the root, the top-level folder name is normalized and
// used unconditionally, overriding whatever the filename said. Only files
// sitting directly in the root fall back to the filename-derived name.
func ResolveShowName(relPath, fromFilename string) string {
	parts := strings.Split(relPath, string(filepath.Separator))
	if len(parts) > 1 {
		if folder := CleanFragment(parts[0]); folder != "" {
			return folder
		}
	}
	return fromFilename
}
