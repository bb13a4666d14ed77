package renderer

import (
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// progressSteps is how many progress lines a render logs at most
const progressSteps = 10

// Raytracer renders an image one pixel at a time in scan order: top row
// first, left to right. It is the single-threaded reference renderer.
type Raytracer struct {
	scene      core.Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene core.Scene, width, height int, config SamplingConfig) *Raytracer {
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		sampler:    core.NewSeededSampler(42), // Deterministic for testing
		logger:     NopLogger{},
	}
}

// SetSampler replaces the random source used for jitter and scattering
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// SetLogger sets where progress is reported
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// samplePixel accumulates SamplesPerPixel jittered samples for image pixel
// (x, y), where y = 0 is the top row
func (rt *Raytracer) samplePixel(x, y int, ps *PixelStats, sampler core.Sampler) {
	camera := rt.scene.GetCamera()

	// Camera v grows upward while image rows grow downward
	j := rt.height - 1 - y

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		u := (float64(x) + jitter.X) / float64(rt.width)
		v := (float64(j) + jitter.Y) / float64(rt.height)

		ray := camera.GetRay(u, v)
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene, sampler))
	}
}

// RenderPixel resolves one pixel, returning its averaged linear color
func (rt *Raytracer) RenderPixel(x, y int) core.Vec3 {
	var ps PixelStats
	rt.samplePixel(x, y, &ps, rt.sampler)
	return ps.GetColor()
}

// RenderPass renders every pixel with multi-sampling and returns an image
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	startTime := time.Now()
	pixelStats := newPixelGrid(rt.width, rt.height)

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel, depth %d...\n",
		rt.width, rt.height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	progressEvery := max(1, rt.height/progressSteps)
	for y := 0; y < rt.height; y++ {
		if y%progressEvery == 0 {
			rt.logger.Printf("Scanlines remaining: %d\n", rt.height-y)
		}
		for x := 0; x < rt.width; x++ {
			rt.samplePixel(x, y, &pixelStats[y][x], rt.sampler)
		}
	}

	img, stats := assembleImage(pixelStats, rt.config.SamplesPerPixel)
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("Rendered %d samples in %v\n", stats.TotalSamples, stats.Duration)
	return img, stats
}
