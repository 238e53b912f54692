// Package aggregate runs the color extraction pipeline over designer
// collections and whole seasons and persists the aggregated statistics.
package aggregate

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/trendlens/runway-color/internal/utils"
	"github.com/trendlens/runway-color/pkg/colors"
	"github.com/trendlens/runway-color/pkg/loader"
	"github.com/trendlens/runway-color/pkg/types"
)

// Output filenames written into the analyzed directory.
const (
	ColorAnalysisFile   = "color_analysis.json"
	ColorDictionaryFile = "color_dictionary.json"
)

// Options controls aggregation scheduling and output shape.
type Options struct {
	// Workers caps outstanding image tasks. The pool is owned by the
	// Aggregator and shared by collection- and season-level processing, so
	// nesting never multiplies concurrency.
	Workers int
	// BatchSize is the progress-log interval in images.
	BatchSize int
	// ImageTimeout bounds a single decode+extract; a timeout is skipped like
	// a decode failure.
	ImageTimeout time.Duration
	// TopColors is how many ranked colors the color dictionary keeps per
	// designer.
	TopColors int
}

// DefaultOptions returns the default aggregation options.
func DefaultOptions() Options {
	return Options{
		Workers:      4,
		BatchSize:    100,
		ImageTimeout: 30 * time.Second,
		TopColors:    5,
	}
}

// Aggregator runs Loader -> Extractor over every image of a collection and
// merges the per-image observations into per-color statistics.
type Aggregator struct {
	loader    *loader.Loader
	extractor *colors.Extractor
	logger    hclog.Logger
	opts      Options
	sem       chan struct{}
}

// New creates an Aggregator. Zero-valued options fall back to defaults; a
// nil logger disables logging.
func New(l *loader.Loader, e *colors.Extractor, logger hclog.Logger, opts Options) *Aggregator {
	defaults := DefaultOptions()
	if opts.Workers <= 0 {
		opts.Workers = defaults.Workers
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaults.BatchSize
	}
	if opts.ImageTimeout <= 0 {
		opts.ImageTimeout = defaults.ImageTimeout
	}
	if opts.TopColors <= 0 {
		opts.TopColors = defaults.TopColors
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Aggregator{
		loader:    l,
		extractor: e,
		logger:    logger,
		opts:      opts,
		sem:       make(chan struct{}, opts.Workers),
	}
}

// CollectionResult holds the outcome of analyzing one designer collection.
type CollectionResult struct {
	Designer    string
	TotalImages int // eligible image files found
	Succeeded   int // images that produced observations
	Stats       types.CollectionColorStats
}

// AnalyzeCollection processes every eligible image directly inside dir and
// aggregates per-color statistics. A failing image is logged and skipped;
// the result stays valid for the images that succeeded. An empty directory
// fails with *NoImagesFoundError.
func (a *Aggregator) AnalyzeCollection(ctx context.Context, dir string) (*CollectionResult, error) {
	files, err := utils.ListCollectionImages(dir)
	if err != nil {
		return nil, fmt.Errorf("list images in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, &NoImagesFoundError{Dir: dir}
	}

	type accum struct {
		count    int
		totalPct float64
	}
	acc := make(map[string]*accum)

	var mu sync.Mutex
	var wg sync.WaitGroup
	succeeded := 0
	processed := 0

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		a.sem <- struct{}{}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()

			observations, err := a.processImage(ctx, path)

			mu.Lock()
			defer mu.Unlock()
			processed++
			if processed%a.opts.BatchSize == 0 {
				a.logger.Info("collection progress", "dir", dir, "processed", processed, "total", len(files))
			}
			if err != nil {
				a.logger.Warn("skipping image", "path", path, "reason", err)
				return
			}
			succeeded++
			for _, obs := range observations {
				entry := acc[obs.Color]
				if entry == nil {
					entry = &accum{}
					acc[obs.Color] = entry
				}
				entry.count++
				entry.totalPct += obs.Percentage
			}
		}(path)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := make(types.CollectionColorStats, len(acc))
	for hex, entry := range acc {
		stats[hex] = types.ColorStat{
			Count:             entry.count,
			AveragePercentage: math.Round(entry.totalPct/float64(entry.count)*100) / 100,
		}
	}

	result := &CollectionResult{
		Designer:    filepath.Base(dir),
		TotalImages: len(files),
		Succeeded:   succeeded,
		Stats:       stats,
	}
	a.logSummary(dir, result)
	return result, nil
}

func (a *Aggregator) logSummary(dir string, result *CollectionResult) {
	ranked := result.Stats.Ranked()
	if len(ranked) > a.opts.TopColors {
		ranked = ranked[:a.opts.TopColors]
	}
	top := make([]string, len(ranked))
	for i, rc := range ranked {
		top[i] = rc.Color
	}
	a.logger.Info("collection analyzed",
		"dir", dir,
		"attempted", result.TotalImages,
		"succeeded", result.Succeeded,
		"top_colors", top)
}

// processImage runs Loader then Extractor under the per-image timeout. A
// timeout is treated like any other per-image failure. The caller's pool slot
// is released only when the underlying work finishes: decode and clustering
// cannot be interrupted, so returning early on timeout must not free capacity
// while they still run, or a timeout storm would exceed the worker cap.
func (a *Aggregator) processImage(ctx context.Context, path string) ([]types.ColorObservation, error) {
	ctx, cancel := context.WithTimeout(ctx, a.opts.ImageTimeout)
	defer cancel()

	type outcome struct {
		obs []types.ColorObservation
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() { <-a.sem }()

		img, err := a.loader.Load(path)
		if err != nil {
			done <- outcome{err: err}
			return
		}
		if err := ctx.Err(); err != nil {
			done <- outcome{err: err}
			return
		}
		obs, err := a.extractor.Extract(img)
		done <- outcome{obs: obs, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-done:
		return out.obs, out.err
	}
}
