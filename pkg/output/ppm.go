package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// ppmMaxValue is the largest channel value in the emitted PPM files
const ppmMaxValue = 255

// WritePPM writes img as plain-text PPM (P3): a header with the width,
// height and max value, then one "R G B" line per pixel, top row first,
// left to right within a row.
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", bounds.Dx(), bounds.Dy(), ppmMaxValue); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return fmt.Errorf("write ppm pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush ppm: %w", err)
	}
	return nil
}
