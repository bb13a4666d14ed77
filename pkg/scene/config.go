package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ImageConfig describes the raster to produce
type ImageConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// NewImageConfig derives the height from the width and aspect ratio,
// truncating and never going below one row
func NewImageConfig(width int, aspectRatio float64, samplesPerPixel, maxDepth int) ImageConfig {
	height := 1
	if aspectRatio > 0 {
		height = max(1, int(float64(width)/aspectRatio))
	}
	return ImageConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	}
}

// Validate rejects configurations the renderer cannot work with
func (c ImageConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.MaxDepth)
	}
	return nil
}

// AspectRatio returns width / height
func (c ImageConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// SamplingConfig returns the renderer settings for this image
func (c ImageConfig) SamplingConfig() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
	}
}

// ParseAspectRatio parses "W:H" (such as "16:9") or a plain ratio ("1.5")
func ParseAspectRatio(s string) (float64, error) {
	var ratio float64
	if w, h, ok := strings.Cut(s, ":"); ok {
		width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidAspectRatio, s, err)
		}
		height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidAspectRatio, s, err)
		}
		if height == 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAspectRatio, s)
		}
		ratio = width / height
	} else {
		value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidAspectRatio, s, err)
		}
		ratio = value
	}

	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAspectRatio, s)
	}
	return ratio, nil
}
