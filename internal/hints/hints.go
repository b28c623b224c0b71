// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-org2typst/internal/fileutil"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating one of the user-level candidates.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-org2typst/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForPathResolution returns a hint when the source path cannot be resolved.
func ForPathResolution(path string) string {
	if !fileutil.IsOrgFile(path) && filepath.Ext(path) == "" && fileutil.FileExists(path+fileutil.OrgExt) {
		return format("did you mean " + path + fileutil.OrgExt + "?")
	}
	return format("check the file exists and every directory on the path is readable")
}

// ForDestination returns hints for destination creation or write errors.
func ForDestination() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the available templates.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or add templates/<name>.typ under --asset-path")
}

// ForLint suggests how to see diagnostics that were suppressed.
func ForLint(count int) string {
	if count == 0 {
		return ""
	}
	return format("run with --lint to list them")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
