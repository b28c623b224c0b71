package main

import (
	"errors"

	org2typst "github.com/alnah/go-org2typst"
	"github.com/alnah/go-org2typst/internal/config"
	"github.com/alnah/go-org2typst/internal/fileutil"
)

// Exit codes for the org2typst CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Conversion failures, lint findings, unexpected errors
	ExitUsage   = 2 // Invalid flags, arguments, config, or template
	ExitIO      = 3 // Source or destination I/O
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, fileutil.ErrPathResolution) ||
		errors.Is(err, ErrSourceOpen) ||
		errors.Is(err, ErrSourceRead) ||
		errors.Is(err, ErrDestinationCreate) ||
		errors.Is(err, ErrDestinationWrite) {
		return ExitIO
	}

	// Usage/config/template errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNoOrgFiles) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, org2typst.ErrTemplateNotFound) ||
		errors.Is(err, org2typst.ErrInvalidTemplate) ||
		errors.Is(err, org2typst.ErrEmptyTemplate) ||
		errors.Is(err, org2typst.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
