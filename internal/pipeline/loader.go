package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/theirongolddev/ledgerlens/internal/logger"
	"github.com/theirongolddev/ledgerlens/internal/model"
	"github.com/theirongolddev/ledgerlens/internal/source"
)

// LoadResult holds the output of the data loading pipeline.
type LoadResult struct {
	Transactions []model.Transaction
	Files        []source.DiscoveredFile
	TotalFiles   int
	ParsedFiles  int
	FileErrors   int
	RowErrors    int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load discovers and parses every data file under path. Files are parsed
// concurrently but their records are concatenated in discovery order.
// A file that cannot be read is counted and logged, not fatal.
func Load(ctx context.Context, path string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanPath(path)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}

	result := &LoadResult{Files: files, TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	log := logger.FromContext(ctx)
	results := make([]source.ParseResult, len(files))
	var processed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = source.ParseFile(gctx, files[i])
			n := processed.Add(1)
			if progressFn != nil {
				progressFn(int(n), len(files))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, pr := range results {
		if pr.Err != nil {
			result.FileErrors++
			log.Warn().Err(pr.Err).Str("file", pr.File.Path).Msg("skipping unreadable file")
			continue
		}
		result.ParsedFiles++
		result.RowErrors += pr.RowErrors
		result.Transactions = append(result.Transactions, pr.Transactions...)
	}

	if result.RowErrors > 0 {
		log.Debug().Int("row_errors", result.RowErrors).Msg("defaulted malformed rows")
	}
	return result, nil
}
