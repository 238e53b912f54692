// Package runwaycolor extracts dominant garment colors from runway
// photographs and aggregates them into fashion-trend statistics.
//
// Images are normalized and downscaled, skin tones are filtered out, and the
// remaining pixels are clustered to find the colors of the clothes. Per-image
// observations are then aggregated over a designer's collection and over a
// whole season.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		runwaycolor "github.com/trendlens/runway-color"
//	)
//
//	func main() {
//		rc := runwaycolor.New()
//
//		// Dominant colors of a single look
//		observations, err := rc.AnalyzeImage("look.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//		for _, obs := range observations {
//			fmt.Printf("%s %.2f%%\n", obs.Color, obs.Percentage)
//		}
//
//		// Aggregated statistics of a whole collection
//		result, err := rc.AnalyzeCollection(context.Background(), "shows/fw26/acne-studios")
//		if err != nil {
//			log.Fatal(err)
//		}
//		for _, rc := range result.Stats.Ranked() {
//			fmt.Printf("%s seen in %d images\n", rc.Color, rc.Stat.Count)
//		}
//	}
//
// The package consists of four main components:
//
// 1. Loader (pkg/loader): decodes and normalizes images
// 2. Skintone (pkg/skintone): classifies skin-tone colors
// 3. Colors (pkg/colors): clusters pixels into dominant colors
// 4. Aggregate (pkg/aggregate): runs the pipeline over collections and seasons
package runwaycolor

import (
	"context"
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/trendlens/runway-color/pkg/aggregate"
	"github.com/trendlens/runway-color/pkg/colors"
	"github.com/trendlens/runway-color/pkg/loader"
	"github.com/trendlens/runway-color/pkg/types"
)

// Version of the runway-color library
const Version = "1.0.0"

// RunwayColor provides a high-level interface over the analysis pipeline
type RunwayColor struct {
	loader     *loader.Loader
	extractor  *colors.Extractor
	aggregator *aggregate.Aggregator
}

// New creates a RunwayColor with default configuration
func New() *RunwayColor {
	return NewWithConfig(loader.DefaultConfig(), colors.DefaultConfig(), aggregate.DefaultOptions(), nil)
}

// NewWithConfig creates a RunwayColor with custom configuration. A nil logger
// disables logging.
func NewWithConfig(loaderConfig loader.Config, extractorConfig colors.Config, opts aggregate.Options, logger hclog.Logger) *RunwayColor {
	l := loader.NewWithConfig(loaderConfig)
	e := colors.NewWithConfig(extractorConfig)
	return &RunwayColor{
		loader:     l,
		extractor:  e,
		aggregator: aggregate.New(l, e, logger, opts),
	}
}

// LoadImage loads and normalizes an image from file
func (rc *RunwayColor) LoadImage(path string) (*image.NRGBA, error) {
	return rc.loader.Load(path)
}

// ExtractColors returns the dominant non-skin colors of an already loaded image
func (rc *RunwayColor) ExtractColors(img image.Image) ([]types.ColorObservation, error) {
	return rc.extractor.Extract(img)
}

// AnalyzeImage loads an image file and returns its dominant non-skin colors
func (rc *RunwayColor) AnalyzeImage(path string) ([]types.ColorObservation, error) {
	img, err := rc.loader.Load(path)
	if err != nil {
		return nil, err
	}
	return rc.extractor.Extract(img)
}

// AnalyzeImageURL downloads an image and returns its dominant non-skin colors
func (rc *RunwayColor) AnalyzeImageURL(ctx context.Context, imageURL string) ([]types.ColorObservation, error) {
	img, err := rc.loader.LoadFromURL(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	return rc.extractor.Extract(img)
}

// AnalyzeCollection aggregates color statistics over one designer collection
func (rc *RunwayColor) AnalyzeCollection(ctx context.Context, dir string) (*aggregate.CollectionResult, error) {
	return rc.aggregator.AnalyzeCollection(ctx, dir)
}

// AnalyzeSeason aggregates color statistics over every designer collection of
// a season and writes color_analysis.json into the season directory
func (rc *RunwayColor) AnalyzeSeason(ctx context.Context, seasonDir string) (types.SeasonColorStats, error) {
	return rc.aggregator.AnalyzeSeason(ctx, seasonDir)
}

// CreateColorDictionary builds the per-designer color dictionary of a season
// and writes color_dictionary.json into the season directory
func (rc *RunwayColor) CreateColorDictionary(ctx context.Context, seasonDir string) (types.ColorDictionary, error) {
	return rc.aggregator.CreateColorDictionary(ctx, seasonDir)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
