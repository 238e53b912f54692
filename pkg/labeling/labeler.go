// Package labeling assigns garment categories to runway images using a
// vision-model backend and aggregates the labels per collection.
package labeling

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-hclog"

	"github.com/trendlens/runway-color/internal/utils"
	"github.com/trendlens/runway-color/pkg/client"
	"github.com/trendlens/runway-color/pkg/loader"
	"github.com/trendlens/runway-color/pkg/types"
)

// LabelAnalysisFile is the output filename written into the labeled directory.
const LabelAnalysisFile = "label_analysis.json"

// categories is the garment taxonomy the model is asked to pick from.
var categories = []string{
	"dress", "gown", "skirt", "top", "blouse", "shirt", "sweater",
	"jacket", "blazer", "coat", "trousers", "jeans", "shorts",
	"jumpsuit", "suit", "swimwear", "lingerie", "accessories",
}

const promptTemplate = `You are labeling a runway fashion photograph.
Pick exactly one category from this list: %s.
Respond with JSON only, no prose, in this shape:
{"category": "...", "attributes": ["..."], "colors": ["..."], "confidence": 0.0}
Attributes are short descriptors (e.g. "pleated", "oversized", "floral").
Colors are plain color names of the garment, not the background or skin.`

// Options controls labeling throughput and the payload sent to the model.
type Options struct {
	Model        string
	SendSize     int // longest edge of the image sent to the model
	SendQuality  int // JPEG quality of the payload
	Workers      int
	ImageTimeout time.Duration
}

// DefaultOptions returns the default labeling options.
func DefaultOptions() Options {
	return Options{
		Model:        "llava:latest",
		SendSize:     512,
		SendQuality:  85,
		Workers:      4,
		ImageTimeout: 5 * time.Minute,
	}
}

// Labeler runs a VisionClient over collection images and tallies categories
// and attributes.
type Labeler struct {
	client client.VisionClient
	loader *loader.Loader
	logger hclog.Logger
	opts   Options
	prompt string
	sem    chan struct{}
}

// New creates a Labeler. Zero-valued options fall back to defaults; a nil
// logger disables logging.
func New(vc client.VisionClient, logger hclog.Logger, opts Options) *Labeler {
	defaults := DefaultOptions()
	if opts.Model == "" {
		opts.Model = defaults.Model
	}
	if opts.SendSize <= 0 {
		opts.SendSize = defaults.SendSize
	}
	if opts.SendQuality <= 0 {
		opts.SendQuality = defaults.SendQuality
	}
	if opts.Workers <= 0 {
		opts.Workers = defaults.Workers
	}
	if opts.ImageTimeout <= 0 {
		opts.ImageTimeout = defaults.ImageTimeout
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	// Decode at full resolution: SendSize alone governs the payload sent to
	// the model, independent of the color pipeline's resize bound.
	return &Labeler{
		client: vc,
		loader: loader.NewWithConfig(loader.Config{ResizeSize: 0}),
		logger: logger,
		opts:   opts,
		prompt: fmt.Sprintf(promptTemplate, strings.Join(categories, ", ")),
		sem:    make(chan struct{}, opts.Workers),
	}
}

// LabelImage labels a single image file.
func (lb *Labeler) LabelImage(ctx context.Context, path string) (*types.LabelResult, error) {
	ctx, cancel := context.WithTimeout(ctx, lb.opts.ImageTimeout)
	defer cancel()

	img, err := lb.loader.Load(path)
	if err != nil {
		return nil, err
	}
	imgB64, err := lb.prepareImage(img)
	if err != nil {
		return nil, fmt.Errorf("prepare image %s: %w", path, err)
	}
	return lb.client.LabelImage(ctx, lb.opts.Model, lb.prompt, imgB64)
}

// LabelCollection labels every eligible image directly inside dir and writes
// the tally to label_analysis.json. A failing image is logged and skipped.
func (lb *Labeler) LabelCollection(ctx context.Context, dir string) (*types.CollectionLabelStats, error) {
	files, err := utils.ListCollectionImages(dir)
	if err != nil {
		return nil, fmt.Errorf("list images in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no eligible image files found in %s", dir)
	}

	stats := &types.CollectionLabelStats{
		Categories: make(map[string]int),
		Attributes: make(map[string]int),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		lb.sem <- struct{}{}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-lb.sem }()

			result, err := lb.LabelImage(ctx, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				lb.logger.Warn("skipping image", "path", path, "reason", err)
				return
			}
			stats.TotalImages++
			stats.Categories[result.Category]++
			for _, attr := range result.Attributes {
				stats.Attributes[strings.ToLower(attr)]++
			}
		}(path)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outPath := filepath.Join(dir, LabelAnalysisFile)
	if err := writeLabelStats(outPath, stats); err != nil {
		return nil, err
	}
	lb.logger.Info("collection labeled", "dir", dir, "labeled", stats.TotalImages, "attempted", len(files))
	return stats, nil
}

// prepareImage shrinks the image for transport and encodes it as base64 JPEG.
func (lb *Labeler) prepareImage(img image.Image) (string, error) {
	bounds := img.Bounds()
	if bounds.Dx() > lb.opts.SendSize || bounds.Dy() > lb.opts.SendSize {
		img = imaging.Fit(img, lb.opts.SendSize, lb.opts.SendSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: lb.opts.SendQuality}); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
