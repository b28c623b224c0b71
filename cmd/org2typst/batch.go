package main

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// resolveWorkers returns the default concurrency, GOMAXPROCS as set by
// automaxprocs in main.
func resolveWorkers() int {
	return max(1, runtime.GOMAXPROCS(0))
}

// convertBatch runs convert for every file with at most workers in flight.
// Results keep the order of files. A cancelled context marks the files not
// yet started as failed with the context error.
func convertBatch(ctx context.Context, files []string, workers int, convert func(context.Context, string) conversionResult) []conversionResult {
	results := make([]conversionResult, len(files))
	if len(files) == 0 {
		return results
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(workers, len(files))))

	for i, src := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				results[i] = conversionResult{src: src, err: err}
				return nil
			}
			results[i] = convert(gCtx, src)
			return nil
		})
	}
	// Per-file errors live in results; the group never fails.
	_ = g.Wait()

	return results
}
