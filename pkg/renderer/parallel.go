package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ParallelConfig contains configuration for tiled parallel rendering
type ParallelConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; tile i draws from Seed + i
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		TileSize:   32,
		NumWorkers: 0,
		Seed:       42,
	}
}

// ParallelRaytracer renders tiles concurrently. Pixels and samples are
// independent, so the only shared state is the read-only scene and the
// pixel grid, which tiles partition without overlap.
type ParallelRaytracer struct {
	width, height int
	config        ParallelConfig
	sampling      SamplingConfig
	tiles         []*Tile
	raytracer     *Raytracer
	tileRenderer  *TileRenderer
	logger        core.Logger
}

// NewParallelRaytracer creates a new parallel raytracer
func NewParallelRaytracer(scene core.Scene, width, height int, sampling SamplingConfig, config ParallelConfig, logger core.Logger) *ParallelRaytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultParallelConfig().TileSize
	}
	if logger == nil {
		logger = NopLogger{}
	}

	raytracer := NewRaytracer(scene, width, height, sampling)

	return &ParallelRaytracer{
		width:        width,
		height:       height,
		config:       config,
		sampling:     sampling,
		tiles:        NewTileGrid(width, height, config.TileSize, config.Seed),
		raytracer:    raytracer,
		tileRenderer: NewTileRenderer(raytracer),
		logger:       logger,
	}
}

// RenderPass renders every tile once and assembles the image in scan order
func (pr *ParallelRaytracer) RenderPass() (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	pixelStats := newPixelGrid(pr.width, pr.height)

	workerPool := NewWorkerPool(pr.tileRenderer, pr.config.NumWorkers, len(pr.tiles))
	workerPool.Start()

	pr.logger.Printf("Rendering %dx%d at %d samples/pixel, depth %d (%d tiles, %d workers)...\n",
		pr.width, pr.height, pr.sampling.SamplesPerPixel, pr.sampling.MaxDepth,
		len(pr.tiles), workerPool.GetNumWorkers())

	for taskID, tile := range pr.tiles {
		workerPool.SubmitTask(TileTask{
			Tile:       tile,
			TaskID:     taskID,
			PixelStats: pixelStats,
		})
	}

	var renderErr error
	progressEvery := max(1, len(pr.tiles)/progressSteps)
	for i := 0; i < len(pr.tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil && renderErr == nil {
			renderErr = result.Error
		}
		if (i+1)%progressEvery == 0 {
			pr.logger.Printf("Tiles completed: %d/%d\n", i+1, len(pr.tiles))
		}
	}
	workerPool.Stop()

	if renderErr != nil {
		return nil, RenderStats{}, fmt.Errorf("render pass: %w", renderErr)
	}

	img, stats := assembleImage(pixelStats, pr.sampling.SamplesPerPixel)
	stats.Duration = time.Since(startTime)

	pr.logger.Printf("Rendered %d samples in %v\n", stats.TotalSamples, stats.Duration)
	return img, stats, nil
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID      int             // Unique tile identifier
	Bounds  image.Rectangle // Pixel bounds (x0,y0,x1,y1), y0 = 0 is the top row
	Sampler core.Sampler    // Tile-specific random source
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewSeededSampler(seed + int64(id)),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
