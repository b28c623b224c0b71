package main

import (
	"context"
	"log/slog"

	"github.com/alnah/go-org2typst/internal/watch"
)

// watch reconverts changed files until ctx is cancelled.
func (j *runJob) watch(ctx context.Context) error {
	opts := watch.Options{
		Debounce: j.cfg.DebounceDuration(watch.DefaultDebounce),
		Logger:   j.logger,
	}

	return watch.Watch(ctx, j.src, opts, func(path string) {
		if ctx.Err() != nil {
			return
		}
		j.logger.Info("change detected", slog.String("path", path))
		j.report(j.convertOne(ctx, path))
	})
}
