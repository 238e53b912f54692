// Package colors extracts dominant garment colors from runway images using
// k-means clustering with skin-tone suppression.
package colors

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"sort"

	"github.com/trendlens/runway-color/pkg/skintone"
	"github.com/trendlens/runway-color/pkg/types"
)

// Config holds configuration for dominant-color extraction.
//
// The extractor clusters with k = 2*NColors: over-clustering compensates for
// skin and background clusters that are discarded afterwards, so enough
// surviving clusters remain to fill the requested top N.
type Config struct {
	// NColors is the maximum number of colors returned per image.
	NColors int
	// MinAreaPercentage discards clusters covering less of the image than
	// this, in [0,100]. Lower keeps more (noisier) colors; higher drops
	// legitimately secondary garment colors.
	MinAreaPercentage float64
	// Seed fixes the clustering initialization for reproducible output.
	Seed int64
	// MaxIterations bounds the clustering loop; exceeding it without meeting
	// a convergence criterion is reported as an ExtractionError.
	MaxIterations int
	// Convergence is the average centroid movement below which clustering
	// stops, in RGB distance units.
	Convergence float64
	// QuantizeStep, when positive, rounds each output channel to the nearest
	// multiple of the step before hex encoding, so near-identical centroids
	// aggregate under one key. Zero keeps exact values.
	QuantizeStep int
	// SkinFilter classifies a candidate color as skin. Nil uses the default
	// skin-tone thresholds.
	SkinFilter func(color.Color) bool
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		NColors:           5,
		MinAreaPercentage: 5.0,
		Seed:              42,
		MaxIterations:     50,
		Convergence:       1.0,
		QuantizeStep:      0,
		SkinFilter:        skintone.IsSkinTone,
	}
}

// Validate checks the extraction configuration.
func (c Config) Validate() error {
	if c.NColors < 1 {
		return fmt.Errorf("n_colors must be at least 1, got %d", c.NColors)
	}
	if c.NColors > 64 {
		return fmt.Errorf("n_colors too large: %d (maximum: 64)", c.NColors)
	}
	if c.MinAreaPercentage < 0 || c.MinAreaPercentage > 100 {
		return fmt.Errorf("min_area_percentage must be in [0,100], got %g", c.MinAreaPercentage)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.QuantizeStep < 0 || c.QuantizeStep > 128 {
		return fmt.Errorf("quantize_step must be in [0,128], got %d", c.QuantizeStep)
	}
	return nil
}

// ExtractionError reports a pixel grid that could not be clustered.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "color extraction failed: " + e.Reason
}

// Extractor finds dominant colors in preprocessed pixel grids.
type Extractor struct {
	config Config
}

// New creates an Extractor with the default configuration.
func New() *Extractor {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an Extractor with a custom configuration. Zero values
// for MaxIterations, Convergence, and SkinFilter fall back to the defaults.
func NewWithConfig(config Config) *Extractor {
	if config.MaxIterations == 0 {
		config.MaxIterations = DefaultConfig().MaxIterations
	}
	if config.Convergence == 0 {
		config.Convergence = DefaultConfig().Convergence
	}
	if config.SkinFilter == nil {
		config.SkinFilter = skintone.IsSkinTone
	}
	return &Extractor{config: config}
}

// Extract returns up to NColors representative colors of img ranked by area
// share, excluding skin tones and clusters below the minimum area. Fewer than
// NColors observations is a normal outcome, not an error. Output is
// deterministic for a fixed seed: equal percentages keep cluster order.
func (e *Extractor) Extract(img image.Image) ([]types.ColorObservation, error) {
	pixels := flattenPixels(img)
	if len(pixels) == 0 {
		return nil, &ExtractionError{Reason: "empty pixel grid"}
	}

	k := e.config.NColors * 2
	centroids, counts, err := e.cluster(pixels, k)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		rgb color.NRGBA
		pct float64 // unrounded
	}

	total := float64(len(pixels))
	candidates := make([]candidate, 0, len(centroids))
	for i, c := range centroids {
		if counts[i] == 0 {
			continue
		}
		rgb := centroidToRGB(c, e.config.QuantizeStep)
		pct := 100 * float64(counts[i]) / total
		if pct < e.config.MinAreaPercentage {
			continue
		}
		if e.config.SkinFilter(rgb) {
			continue
		}
		candidates = append(candidates, candidate{rgb: rgb, pct: pct})
	}

	// Stable sort keeps cluster order for equal percentages.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].pct > candidates[j].pct
	})
	if len(candidates) > e.config.NColors {
		candidates = candidates[:e.config.NColors]
	}

	observations := make([]types.ColorObservation, len(candidates))
	for i, c := range candidates {
		observations[i] = types.ColorObservation{
			Color:      fmt.Sprintf("#%02x%02x%02x", c.rgb.R, c.rgb.G, c.rgb.B),
			Percentage: math.Round(c.pct*100) / 100,
		}
	}
	return observations, nil
}

// cluster runs k-means over the pixels. When the image holds no more unique
// colors than k, each unique color becomes its own cluster directly, which
// keeps synthetic and flat images exact and avoids degenerate clustering.
func (e *Extractor) cluster(pixels []point3, k int) ([]point3, []int, error) {
	unique := uniqueColors(pixels)
	if len(unique) <= k {
		centroids := make([]point3, len(unique))
		counts := make([]int, len(unique))
		for i, u := range unique {
			centroids[i] = u.p
			counts[i] = u.count
		}
		return centroids, counts, nil
	}

	rng := rand.New(rand.NewSource(e.config.Seed))
	centroids, counts, converged := kmeans(pixels, k, rng, e.config.MaxIterations, e.config.Convergence)
	if !converged {
		return nil, nil, &ExtractionError{
			Reason: fmt.Sprintf("clustering did not converge within %d iterations", e.config.MaxIterations),
		}
	}
	return centroids, counts, nil
}

type uniqueColor struct {
	p     point3
	count int
}

// uniqueColors tallies distinct pixel values, ordered by count descending
// then packed RGB ascending so the result is independent of map iteration.
func uniqueColors(pixels []point3) []uniqueColor {
	counts := make(map[uint32]int)
	for _, p := range pixels {
		counts[packRGB(p)]++
	}

	unique := make([]uniqueColor, 0, len(counts))
	for packed, count := range counts {
		unique = append(unique, uniqueColor{p: unpackRGB(packed), count: count})
	}
	sort.Slice(unique, func(i, j int) bool {
		if unique[i].count != unique[j].count {
			return unique[i].count > unique[j].count
		}
		return packRGB(unique[i].p) < packRGB(unique[j].p)
	})
	return unique
}

func packRGB(p point3) uint32 {
	return uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

func unpackRGB(packed uint32) point3 {
	return point3{
		R: float64((packed >> 16) & 0xff),
		G: float64((packed >> 8) & 0xff),
		B: float64(packed & 0xff),
	}
}

// centroidToRGB clamps a centroid to 8-bit channels, optionally snapping each
// channel to the nearest multiple of step.
func centroidToRGB(p point3, step int) color.NRGBA {
	return color.NRGBA{
		R: quantizeChannel(p.R, step),
		G: quantizeChannel(p.G, step),
		B: quantizeChannel(p.B, step),
		A: 255,
	}
}

func quantizeChannel(v float64, step int) uint8 {
	if step > 0 {
		v = math.Round(v/float64(step)) * float64(step)
	} else {
		v = math.Round(v)
	}
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// flattenPixels converts the image to a flat list of RGB points. Alpha is
// dropped; the loader already normalizes channel order and depth.
func flattenPixels(img image.Image) []point3 {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil
	}

	points := make([]point3, 0, width*height)
	if nrgba, ok := img.(*image.NRGBA); ok && bounds.Min == (image.Point{}) {
		for y := 0; y < height; y++ {
			row := y * nrgba.Stride
			for x := 0; x < width; x++ {
				offset := row + x*4
				points = append(points, point3{
					R: float64(nrgba.Pix[offset]),
					G: float64(nrgba.Pix[offset+1]),
					B: float64(nrgba.Pix[offset+2]),
				})
			}
		}
		return points
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			points = append(points, point3{
				R: float64(r >> 8),
				G: float64(g >> 8),
				B: float64(b >> 8),
			})
		}
	}
	return points
}
