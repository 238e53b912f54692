// Package loader reads runway images into normalized pixel grids ready for
// color clustering.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP with image.Decode
)

// Config holds configuration for image loading.
type Config struct {
	// ResizeSize bounds the longest image edge in pixels. Downscaling uses
	// area averaging so downstream color statistics are not skewed by a
	// handful of edge pixels. Zero disables resizing.
	ResizeSize int
}

// DefaultConfig returns the default loader configuration.
func DefaultConfig() Config {
	return Config{ResizeSize: 250}
}

// ImageReadError reports a file that could not be opened or decoded.
type ImageReadError struct {
	Path string
	Err  error
}

func (e *ImageReadError) Error() string {
	return fmt.Sprintf("read image %s: %v", e.Path, e.Err)
}

func (e *ImageReadError) Unwrap() error {
	return e.Err
}

// Loader decodes and normalizes images: RGB channel order, 8 bits per
// channel, alpha dropped, grayscale replicated to three channels, longest
// edge bounded by the configured resize size.
type Loader struct {
	config Config
}

// New creates a Loader with the default configuration.
func New() *Loader {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Loader with a custom configuration.
func NewWithConfig(config Config) *Loader {
	return &Loader{config: config}
}

// Load reads the image at path. Supported formats: JPEG, PNG, GIF, WebP.
// Failures are reported as *ImageReadError.
func (l *Loader) Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		// Retry WebP payloads explicitly; some encoders produce files the
		// registered decoder rejects.
		if strings.HasSuffix(strings.ToLower(path), ".webp") {
			if webpImg, werr := openWebP(path); werr == nil {
				return l.normalize(webpImg), nil
			}
		}
		return nil, &ImageReadError{Path: path, Err: err}
	}
	return l.normalize(img), nil
}

// LoadFromReader decodes an image from r and normalizes it like Load.
func (l *Loader) LoadFromReader(r io.Reader) (*image.NRGBA, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ImageReadError{Path: "(reader)", Err: err}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		webpImg, werr := webp.Decode(bytes.NewReader(data))
		if werr != nil {
			return nil, &ImageReadError{Path: "(reader)", Err: err}
		}
		img = webpImg
	}
	return l.normalize(img), nil
}

// LoadFromURL downloads an image over HTTP(S) and normalizes it like Load.
func (l *Loader) LoadFromURL(ctx context.Context, imageURL string) (*image.NRGBA, error) {
	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return nil, &ImageReadError{Path: imageURL, Err: err}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, &ImageReadError{Path: imageURL, Err: fmt.Errorf("unsupported URL scheme: %s", parsedURL.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, &ImageReadError{Path: imageURL, Err: err}
	}
	req.Header.Set("User-Agent", "runway-color/1.0")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &ImageReadError{Path: imageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ImageReadError{Path: imageURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	img, err := l.LoadFromReader(resp.Body)
	if err != nil {
		var readErr *ImageReadError
		if errors.As(err, &readErr) {
			return nil, &ImageReadError{Path: imageURL, Err: readErr.Err}
		}
		return nil, err
	}
	return img, nil
}

// Dimensions returns the width and height of the image at path without fully
// decoding it.
func Dimensions(path string) (width, height int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, &ImageReadError{Path: path, Err: err}
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, &ImageReadError{Path: path, Err: err}
	}
	return config.Width, config.Height, nil
}

// normalize converts to NRGBA and bounds the longest edge. The Box filter
// performs area averaging, which minimizes aliasing before clustering.
func (l *Loader) normalize(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if l.config.ResizeSize > 0 && (w > l.config.ResizeSize || h > l.config.ResizeSize) {
		if w >= h {
			return imaging.Resize(img, l.config.ResizeSize, 0, imaging.Box)
		}
		return imaging.Resize(img, 0, l.config.ResizeSize, imaging.Box)
	}
	return imaging.Clone(img)
}

func openWebP(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return webp.Decode(file)
}
