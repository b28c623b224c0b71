package main

import (
	"fmt"

	org2typst "github.com/alnah/go-org2typst"
	"github.com/alnah/go-org2typst/internal/fileutil"
)

// runLint prints diagnostics for the source file or every Org file under
// the source directory. Returns ErrLintFindings if any warning was reported.
func runLint(src string, rep *reporter) error {
	files := []string{src}
	if fileutil.IsDir(src) {
		var err error
		if files, err = fileutil.DiscoverOrgFiles(src); err != nil {
			return fmt.Errorf("discovering files: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("%w in %s", ErrNoOrgFiles, src)
		}
	}

	warnings := 0
	for _, path := range files {
		text, err := readSource(path)
		if err != nil {
			return err
		}
		diags := org2typst.Lint(text)
		rep.diagnostics(path, diags)
		for _, d := range diags {
			if d.Severity == org2typst.SeverityWarning {
				warnings++
			}
		}
	}

	if warnings > 0 {
		return fmt.Errorf("%w: %d", ErrLintFindings, warnings)
	}
	return nil
}
