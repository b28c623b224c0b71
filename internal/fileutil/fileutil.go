// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source and output extensions.
const (
	OrgExt   = ".org"
	TypstExt = ".typ"
)

// Sentinel errors for file utility operations.
var (
	ErrPathResolution = errors.New("cannot resolve path")
)

// ResolveSource returns the absolute path of p with symlinks evaluated.
// The file must exist.
func ResolveSource(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPathResolution, p, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPathResolution, p, err)
	}
	return resolved, nil
}

// IsOrgFile reports whether path has the .org extension (case-insensitive).
func IsOrgFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), OrgExt)
}

// TypstOutputPath returns where the .typ file for src goes.
//
//   - outDir empty: next to src.
//   - outDir ending in .typ: outDir itself.
//   - baseDir set: mirrored under outDir relative to baseDir.
//   - otherwise: directly in outDir.
func TypstOutputPath(src, outDir, baseDir string) string {
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + TypstExt

	if outDir == "" {
		return filepath.Join(filepath.Dir(src), name)
	}
	if strings.EqualFold(filepath.Ext(outDir), TypstExt) {
		return outDir
	}
	if baseDir != "" {
		if rel, err := filepath.Rel(baseDir, src); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.Join(outDir, filepath.Dir(rel), name)
		}
	}
	return filepath.Join(outDir, name)
}

// DiscoverOrgFiles walks dir and returns every Org file under it, sorted.
// Hidden directories are skipped.
func DiscoverOrgFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsOrgFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "project" -> false (name)
//   - "./custom.yaml" -> true (relative path)
//   - "/absolute/path.yaml" -> true (absolute)
//   - "C:\windows\path.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
