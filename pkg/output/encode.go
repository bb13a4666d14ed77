// Package output turns rendered images into files: the plain-text PPM
// contract plus PNG and BMP encoders and an optional resampling step.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Format identifies an output image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidScale  = errors.New("scale factor must be positive")
)

// ParseFormat converts a name such as "png" or "PPM" into a Format
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatPPM, FormatPNG, FormatBMP:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (expected ppm, png or bmp)", ErrUnknownFormat, name)
	}
}

// FormatForPath picks the format matching a file extension, falling back
// to fallback for unknown extensions and stdout ("-")
func FormatForPath(path string, fallback Format) Format {
	if path == "" || path == "-" {
		return fallback
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return fallback
}

// Encode writes img to w in the requested format
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// Scale resamples img by factor with Catmull-Rom filtering. The result is
// always at least 1x1.
func Scale(img image.Image, factor float64) (*image.RGBA, error) {
	if !(factor > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidScale, factor)
	}

	src := img.Bounds()
	width := max(1, int(float64(src.Dx())*factor))
	height := max(1, int(float64(src.Dy())*factor))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst, nil
}
