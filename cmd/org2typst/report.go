package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	org2typst "github.com/alnah/go-org2typst"
)

// reporterStyles holds lipgloss styles for human-readable output.
type reporterStyles struct {
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	path    lipgloss.Style
	dim     lipgloss.Style
}

// reporter prints per-file results and diagnostics to stderr.
type reporter struct {
	w      io.Writer
	quiet  bool
	styles reporterStyles
}

// newReporter creates a reporter. Colors are enabled only on a terminal.
func newReporter(w io.Writer, isTTY, quiet bool) *reporter {
	styles := reporterStyles{
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),           // Blue
		path:    lipgloss.NewStyle().Bold(true),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	if !isTTY {
		plain := lipgloss.NewStyle()
		styles = reporterStyles{plain, plain, plain, plain, plain, plain}
	}
	return &reporter{w: w, quiet: quiet, styles: styles}
}

// diagnostics prints each diagnostic of the file at path.
func (r *reporter) diagnostics(path string, diags []org2typst.Diagnostic) {
	for _, d := range diags {
		style := r.styles.info
		if d.Severity == org2typst.SeverityWarning {
			style = r.styles.warning
		} else if r.quiet {
			continue
		}

		loc := path
		if d.Line > 0 {
			loc = fmt.Sprintf("%s:%d", path, d.Line)
		}
		fmt.Fprintf(r.w, "%s: %s: %s\n",
			r.styles.path.Render(loc), style.Render(d.Severity.String()), d.Message)
	}
}

// result prints one conversion outcome. Successes are silent in quiet mode.
func (r *reporter) result(res conversionResult, verbose bool) {
	if res.err != nil {
		fmt.Fprintf(r.w, "%s %s: %v\n", r.styles.failure.Render("FAIL"), res.src, res.err)
		return
	}
	if r.quiet {
		return
	}
	line := fmt.Sprintf("%s %s -> %s", r.styles.success.Render("OK"), res.src, res.dst)
	if verbose {
		line += r.styles.dim.Render(fmt.Sprintf(" (%s, %d constructs)", res.elapsed.Round(time.Microsecond), res.constructs))
	}
	fmt.Fprintln(r.w, line)
}

// summary prints the batch totals.
func (r *reporter) summary(ok, failed int) {
	if r.quiet && failed == 0 {
		return
	}
	msg := fmt.Sprintf("%d converted, %d failed", ok, failed)
	if failed > 0 {
		fmt.Fprintln(r.w, r.styles.failure.Render(msg))
		return
	}
	fmt.Fprintln(r.w, r.styles.success.Render(msg))
}
