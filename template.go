package org2typst

import "strings"

// typstEscaper escapes the characters that end or escape a Typst string literal.
var typstEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// typstString quotes s as a Typst string literal.
func typstString(s string) string {
	return `"` + typstEscaper.Replace(s) + `"`
}

// SetupCall returns the show rule that applies the template's project
// function with the given title and single author.
func SetupCall(title, author string) string {
	return "#show: project.with(title: " + typstString(title) +
		", authors: (" + typstString(author) + ",))"
}

// BibliographyDirective returns the #bibliography statement for file.
func BibliographyDirective(file string) string {
	return "#bibliography(" + typstString(file) + ")"
}

// Assemble joins the template, the transformed body and the bibliography
// directive, separated from the body by a blank line.
func Assemble(template, body, bibliography string) string {
	var b strings.Builder
	b.Grow(len(template) + len(body) + len(bibliography) + 20)
	b.WriteString(template)
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(BibliographyDirective(bibliography))
	return b.String()
}

// Render converts source with the embedded default template. It is the
// pure form of Converter.Convert.
func Render(source string, opts Options) string {
	opts = opts.withDefaults()
	body := Transform(source, opts)
	return Assemble(defaultTemplate(), body.Text, opts.Bibliography)
}
