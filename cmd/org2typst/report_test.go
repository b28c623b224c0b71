package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	org2typst "github.com/alnah/go-org2typst"
)

func TestReporter_Diagnostics(t *testing.T) {
	t.Parallel()

	diags := []org2typst.Diagnostic{
		{Line: 3, Severity: org2typst.SeverityWarning, Message: "stray fence"},
		{Severity: org2typst.SeverityInfo, Message: "no title"},
	}

	t.Run("plain output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		newReporter(&buf, false, false).diagnostics("doc.org", diags)

		want := "doc.org:3: warning: stray fence\ndoc.org: info: no title\n"
		if got := buf.String(); got != want {
			t.Errorf("diagnostics() = %q, want %q", got, want)
		}
	})

	t.Run("quiet drops info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		newReporter(&buf, false, true).diagnostics("doc.org", diags)

		if got := buf.String(); got != "doc.org:3: warning: stray fence\n" {
			t.Errorf("diagnostics() = %q", got)
		}
	})
}

func TestReporter_Result(t *testing.T) {
	t.Parallel()

	ok := conversionResult{src: "a.org", dst: "a.typ", elapsed: 2 * time.Millisecond, constructs: 7}
	fail := conversionResult{src: "b.org", err: errors.New("boom")}

	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		res     conversionResult
		want    string
	}{
		{"success", false, false, ok, "OK a.org -> a.typ\n"},
		{"success verbose", false, true, ok, "OK a.org -> a.typ (2ms, 7 constructs)\n"},
		{"success quiet", true, false, ok, ""},
		{"failure quiet", true, false, fail, "FAIL b.org: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			newReporter(&buf, false, tt.quiet).result(tt.res, tt.verbose)
			if got := buf.String(); got != tt.want {
				t.Errorf("result() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReporter_Summary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newReporter(&buf, false, true)
	r.summary(3, 0)
	if buf.Len() != 0 {
		t.Errorf("quiet success summary should be silent, got %q", buf.String())
	}
	r.summary(2, 1)
	if !strings.Contains(buf.String(), "2 converted, 1 failed") {
		t.Errorf("summary() = %q", buf.String())
	}
}
