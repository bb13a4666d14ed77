package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TileRenderer renders rectangular regions of the image. The wrapped
// raytracer is only read, so one TileRenderer can serve many workers as
// long as each brings its own sampler.
type TileRenderer struct {
	raytracer *Raytracer
}

// NewTileRenderer creates a new tile renderer backed by the given raytracer
func NewTileRenderer(raytracer *Raytracer) *TileRenderer {
	return &TileRenderer{raytracer: raytracer}
}

// RenderTileBounds renders pixels within the specified bounds into the shared
// pixel grid. Bounds of concurrently rendered tiles must not overlap.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  tr.raytracer.config.SamplesPerPixel,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := &pixelStats[y][x]
			before := ps.SampleCount
			tr.raytracer.samplePixel(x, y, ps, sampler)
			stats.TotalSamples += ps.SampleCount - before
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}
