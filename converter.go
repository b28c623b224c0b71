package org2typst

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-org2typst/internal/assets"
)

// Converter wraps Transform with a loaded template and fixed Options.
// It holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	cfg         converterConfig
	assetLoader assets.TemplateLoader
	template    string
	logger      *slog.Logger
}

// NewConverter creates a Converter. Without options it uses the embedded
// "project" template, DefaultAuthor and DefaultBibliography.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:         converterConfig{template: assets.DefaultTemplateName},
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.cfg.opts = c.cfg.opts.withDefaults()

	c.logger = c.cfg.logger
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	name := c.cfg.template
	if name == "" {
		name = assets.DefaultTemplateName
	}
	tpl, err := c.assetLoader.LoadTemplate(name)
	if err != nil {
		switch {
		case errors.Is(err, assets.ErrTemplateNotFound):
			return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
		case errors.Is(err, assets.ErrInvalidAssetName):
			return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
		default:
			return nil, fmt.Errorf("loading template %q: %w", name, err)
		}
	}
	if strings.TrimSpace(tpl) == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyTemplate, name)
	}
	c.template = tpl

	c.logger.Debug("converter ready",
		slog.String("template", name),
		slog.String("default_author", c.cfg.opts.DefaultAuthor),
		slog.String("bibliography", c.cfg.opts.Bibliography))

	return c, nil
}

// Options returns the effective conversion options.
func (c *Converter) Options() Options {
	return c.cfg.opts
}

// Convert transforms input.Org, wraps it in the template and appends the
// bibliography directive. Diagnostics from Lint are attached to the result.
// Recovers from internal panics so a bad document cannot crash a batch.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrConversion, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	body := Transform(input.Org, c.cfg.opts)
	res := &Result{
		Typst:       Assemble(c.template, body.Text, c.cfg.opts.Bibliography),
		Metadata:    body.Metadata,
		Stats:       body.Stats,
		Diagnostics: Lint(input.Org),
	}

	c.logger.Debug("converted",
		slog.String("name", input.Name),
		slog.String("title", res.Metadata.Title),
		slog.Int("constructs", res.Stats.Total()),
		slog.Int("diagnostics", len(res.Diagnostics)),
		slog.Duration("elapsed", time.Since(start)))

	return res, nil
}

// defaultTemplate returns the embedded default template.
func defaultTemplate() string {
	tpl, err := assets.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		panic("org2typst: embedded template missing: " + err.Error())
	}
	return tpl
}
