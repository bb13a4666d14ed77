package renderer

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// maxChannel keeps quantized values below 256
const maxChannel = 0.999

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	MaxSamples     int           // Samples requested per pixel
	Duration       time.Duration // Wall time spent rendering
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// ToneMap converts a linear color to 8-bit RGBA: gamma 2 (sqrt per channel),
// clamp to [0, 0.999], then scale by 256 and truncate
func ToneMap(colorVec core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(colorVec.X),
		G: quantize(colorVec.Y),
		B: quantize(colorVec.Z),
		A: 255,
	}
}

func quantize(linear float64) uint8 {
	// Negative or NaN input would poison the square root
	if !(linear > 0) {
		return 0
	}
	gamma := math.Min(math.Sqrt(linear), maxChannel)
	return uint8(256 * gamma)
}

// newPixelGrid allocates a height × width grid of pixel statistics
func newPixelGrid(width, height int) [][]PixelStats {
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}
	return pixelStats
}

// assembleImage tone maps a pixel grid (row 0 = top) into an image and
// tallies the sample counts
func assembleImage(pixelStats [][]PixelStats, targetSamples int) (*image.RGBA, RenderStats) {
	height := len(pixelStats)
	width := 0
	if height > 0 {
		width = len(pixelStats[0])
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	stats := RenderStats{
		TotalPixels: width * height,
		MaxSamples:  targetSamples,
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := &pixelStats[y][x]
			img.SetRGBA(x, y, ToneMap(pixel.GetColor()))
			stats.TotalSamples += pixel.SampleCount
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}

	return img, stats
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an
// 8-bit image in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			total += 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
		}
	}
	return total / float64(pixels)
}
