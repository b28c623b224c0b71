package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	org2typst "github.com/alnah/go-org2typst"
	"github.com/alnah/go-org2typst/internal/assets"
	"github.com/alnah/go-org2typst/internal/config"
	"github.com/alnah/go-org2typst/internal/fileutil"
	"github.com/alnah/go-org2typst/internal/hints"
)

// Sentinel errors for file I/O.
var (
	ErrSourceOpen        = errors.New("cannot open source")
	ErrSourceRead        = errors.New("cannot read source")
	ErrDestinationCreate = errors.New("cannot create destination")
	ErrDestinationWrite  = errors.New("cannot write destination")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// documentConverter is the part of *org2typst.Converter the CLI uses.
type documentConverter interface {
	Convert(ctx context.Context, input org2typst.Input) (*org2typst.Result, error)
}

// Compile-time interface implementation check.
var _ documentConverter = (*org2typst.Converter)(nil)

// conversionResult holds the outcome of a single file conversion.
type conversionResult struct {
	src         string
	dst         string // "-" for stdout
	err         error
	elapsed     time.Duration
	constructs  int
	diagnostics []org2typst.Diagnostic
}

// runJob carries everything a conversion run needs, including reruns
// triggered by watch mode.
type runJob struct {
	conv    documentConverter
	cfg     *config.Config
	src     string // resolved source file or directory
	dst     string // positional destination, may be empty
	isDir   bool
	env     *Environment
	rep     *reporter
	logger  *slog.Logger
	verbose bool
}

// convertAll converts the source file, or every Org file under the source
// directory.
func (j *runJob) convertAll(ctx context.Context) error {
	if !j.isDir {
		res := j.convertOne(ctx, j.src)
		j.report(res)
		return res.err
	}

	files, err := fileutil.DiscoverOrgFiles(j.src)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoOrgFiles, j.src)
	}

	results := convertBatch(ctx, files, j.workers(), j.convertOne)

	failed := 0
	for _, res := range results {
		j.report(res)
		if res.err != nil {
			failed++
		}
	}
	j.rep.summary(len(results)-failed, failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrConversionsFailed, failed, len(results))
	}
	return nil
}

// convertOne converts the file at src to its destination.
func (j *runJob) convertOne(ctx context.Context, src string) conversionResult {
	start := time.Now()
	res := conversionResult{src: src, dst: j.outputPath(src)}

	text, err := readSource(src)
	if err != nil {
		res.err = err
		return res
	}

	out, err := j.conv.Convert(ctx, org2typst.Input{Org: text, Name: src})
	if err != nil {
		res.err = err
		return res
	}
	res.constructs = out.Stats.Total()
	res.diagnostics = out.Diagnostics

	if res.dst == "-" {
		// Stdout gets a trailing newline; files get the document as is.
		if _, err := io.WriteString(j.env.Stdout, out.Typst+"\n"); err != nil {
			res.err = fmt.Errorf("%w: stdout: %v", ErrDestinationWrite, err)
		}
	} else {
		res.err = writeDestination(res.dst, out.Typst)
	}

	res.elapsed = time.Since(start)
	return res
}

// report logs one result and its warnings.
func (j *runJob) report(res conversionResult) {
	j.logger.Debug("conversion finished",
		slog.String("source", res.src),
		slog.String("destination", res.dst),
		slog.Duration("elapsed", res.elapsed),
		slog.Bool("ok", res.err == nil))

	var warnings []org2typst.Diagnostic
	for _, d := range res.diagnostics {
		if d.Severity == org2typst.SeverityWarning {
			warnings = append(warnings, d)
		}
	}
	if len(warnings) > 0 && !j.rep.quiet {
		j.logger.Warn(fmt.Sprintf("%d diagnostic(s)%s", len(warnings), hints.ForLint(len(warnings))),
			slog.String("source", res.src))
	}

	// A single file written to stdout has no status line to keep pipes clean.
	if res.dst == "-" && res.err == nil {
		return
	}
	j.rep.result(res, j.verbose)
}

// outputPath returns the destination for src, or "-" for stdout.
func (j *runJob) outputPath(src string) string {
	if !j.isDir {
		if j.dst == "" {
			return "-"
		}
		return j.dst
	}
	outDir := j.dst
	if outDir == "" {
		outDir = j.cfg.Output.DefaultDir
	}
	return fileutil.TypstOutputPath(src, outDir, j.src)
}

// workers returns the concurrency limit for directory mode.
func (j *runJob) workers() int {
	if j.cfg.Workers > 0 {
		return j.cfg.Workers
	}
	return resolveWorkers()
}

// readSource reads the whole source as UTF-8 text.
func readSource(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v%s", ErrSourceOpen, err, hints.ForPathResolution(path))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSourceRead, path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: not valid UTF-8 text", ErrSourceRead, path)
	}
	return string(data), nil
}

// writeDestination creates parent directories and writes text to path.
func writeDestination(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrDestinationCreate, err, hints.ForDestination())
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions) // #nosec G304 -- path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrDestinationCreate, err, hints.ForDestination())
	}
	if _, err := io.WriteString(f, text); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %v", ErrDestinationWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDestinationWrite, path, err)
	}
	return nil
}

// availableTemplates lists template names for hints, including those
// under assetPath when it is usable.
func availableTemplates(assetPath string) []string {
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return assets.ListTemplates()
	}
	return resolver.List()
}
