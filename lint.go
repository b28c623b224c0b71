package org2typst

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Severity ranks a Diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns "info" or "warning".
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Diagnostic is a finding about the source that may make the output
// differ from what the author expects. Line is 1-based; 0 means the
// whole document.
type Diagnostic struct {
	Line     int
	Severity Severity
	Message  string
}

// String formats the diagnostic as "line N: severity: message".
func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Severity, d.Message)
}

var (
	lintTitle    = regexp.MustCompile(`(?i:#\+title:)`)
	lintBeginSrc = regexp.MustCompile(`^\s*(?i:#\+begin_src)(?:[ \t]+(\S+))?`)
	lintEndSrc   = regexp.MustCompile(`^\s*(?i:#\+end_src)`)
	lintCiteAny  = regexp.MustCompile(`\[cite[^\]\n]*\]`)
)

// inlineKinds are rewritten wherever they appear, including inside source blocks.
var inlineKinds = map[Kind]bool{
	KindItalic:   true,
	KindCrossRef: true,
	KindQuote:    true,
	KindCitation: true,
}

// Lint inspects source line by line. It never affects conversion output.
func Lint(source string) []Diagnostic {
	var diags []Diagnostic
	warn := func(line int, format string, args ...any) {
		diags = append(diags, Diagnostic{Line: line, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
	}

	titleLine := 0
	openSrc := 0

	for i, line := range strings.Split(source, "\n") {
		n := i + 1

		switch {
		case lintBeginSrc.MatchString(line):
			if openSrc != 0 {
				warn(n, "#+begin_src inside the block opened on line %d", openSrc)
			}
			openSrc = n
			if m := lintBeginSrc.FindStringSubmatch(line); m[1] != "" && lexers.Get(m[1]) == nil {
				warn(n, "unknown source language %q", m[1])
			}
			continue
		case lintEndSrc.MatchString(line):
			if openSrc == 0 {
				warn(n, "#+end_src without a matching #+begin_src")
			}
			openSrc = 0
			continue
		}

		if openSrc != 0 {
			for _, m := range Scan(line) {
				if inlineKinds[m.Construct.Kind()] {
					warn(n, "%s markup inside a source block will be rewritten", m.Construct.Kind())
					break
				}
			}
			continue
		}

		for _, loc := range lintTitle.FindAllStringIndex(line, -1) {
			switch {
			case !isTitleDeclaration(line[loc[0]:]):
				warn(n, "title is not a single word; the declaration is dropped")
			case titleLine != 0:
				warn(n, "repeated title declaration is dropped (first on line %d)", titleLine)
			default:
				titleLine = n
			}
		}

		for _, cite := range lintCiteAny.FindAllString(line, -1) {
			if !isCitation(cite) {
				warn(n, "citation form %q is not rewritten; use [cite:@key]", cite)
			}
		}
	}

	if openSrc != 0 {
		warn(openSrc, "#+begin_src is never closed")
	}
	if titleLine == 0 {
		diags = append(diags, Diagnostic{
			Severity: SeverityInfo,
			Message:  "no #+title: declaration; the template is not applied",
		})
	}

	return diags
}

// isTitleDeclaration reports whether s starts with a title the engine rewrites.
func isTitleDeclaration(s string) bool {
	loc := recognizers[KindTitleAuthor].re.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}

// isCitation reports whether s is exactly one [cite:@key] construct.
func isCitation(s string) bool {
	loc := recognizers[KindCitation].re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
