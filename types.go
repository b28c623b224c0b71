package org2typst

import (
	"log/slog"
	"strings"
)

// Fallbacks used when Options leaves a field empty.
const (
	DefaultAuthor       = "Anonymous"
	DefaultBibliography = "refs.bib"
)

// Options parameterizes a single conversion.
type Options struct {
	// DefaultAuthor is used when the title declaration has no author.
	DefaultAuthor string
	// Bibliography is the file named in the trailing #bibliography directive.
	Bibliography string
	// KeepCitationSigil renders [cite:@key] as @key (a Typst reference)
	// instead of the bare key.
	KeepCitationSigil bool
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.DefaultAuthor) == "" {
		o.DefaultAuthor = DefaultAuthor
	}
	if strings.TrimSpace(o.Bibliography) == "" {
		o.Bibliography = DefaultBibliography
	}
	return o
}

// Metadata is the document title and author taken from the first
// "#+title:" declaration.
type Metadata struct {
	Title           string
	Author          string
	Declared        bool // a title declaration was found
	AuthorDefaulted bool // Author came from Options.DefaultAuthor
}

// Stats counts rewritten constructs by kind.
type Stats map[Kind]int

// Total returns the number of rewritten constructs.
func (s Stats) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Body is the transformed document before the template and bibliography
// are attached.
type Body struct {
	Text     string
	Metadata Metadata
	Stats    Stats
}

// Input is the per-conversion payload for Converter.Convert.
type Input struct {
	Org  string // Org source text
	Name string // optional, used in log records
}

// Result is the outcome of Converter.Convert.
type Result struct {
	Typst       string
	Metadata    Metadata
	Stats       Stats
	Diagnostics []Diagnostic
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the settings collected from options.
type converterConfig struct {
	opts      Options
	template  string
	assetPath string
	logger    *slog.Logger
}

// WithDefaultAuthor sets the author used when the document declares none.
func WithDefaultAuthor(name string) Option {
	return func(c *Converter) {
		c.cfg.opts.DefaultAuthor = name
	}
}

// WithBibliography sets the bibliography file referenced at the end of the output.
func WithBibliography(file string) Option {
	return func(c *Converter) {
		c.cfg.opts.Bibliography = file
	}
}

// WithCitationSigil keeps the @ in rewritten citations.
func WithCitationSigil(keep bool) Option {
	return func(c *Converter) {
		c.cfg.opts.KeepCitationSigil = keep
	}
}

// WithTemplate selects the template by name (templates/{name}.typ).
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.template = name
	}
}

// WithAssetPath sets a directory whose templates override the embedded ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithLogger sets the logger for debug records. Nil discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = logger
	}
}
