package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	Scene   string  // Built-in scene name
	Width   int     // Image width in pixels
	Aspect  string  // Aspect ratio as "W:H" or a plain number
	Samples int     // Samples per pixel (0 = scene default)
	Depth   int     // Max bounce depth (0 = scene default)
	Workers int     // Parallel workers (0 = CPU count, 1 = sequential)
	Seed    int64   // Random seed (0 = time based)
	Format  string  // ppm, png or bmp (empty = from the output extension)
	Out     string  // Output path ("-" = stdout)
	Scale   float64 // Resample factor applied before encoding
	Help    bool
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if config.Help {
		printHelp(os.Stdout)
		return
	}

	logger := renderer.NewDefaultLogger(os.Stderr)
	if err := run(config, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet registers every option on a new flag set writing into config
func newFlagSet(config *Config, errOut io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&config.Scene, "scene", "default", "Scene type: 'default', 'two-spheres' or 'spheregrid'")
	fs.IntVar(&config.Width, "width", 400, "Image width in pixels")
	fs.StringVar(&config.Aspect, "aspect", "16:9", "Aspect ratio as W:H or a number")
	fs.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.Depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	fs.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count, 1 = sequential)")
	fs.Int64Var(&config.Seed, "seed", 0, "Random seed (0 = time based)")
	fs.StringVar(&config.Format, "format", "", "Output format: ppm, png or bmp (default from -out extension, else ppm)")
	fs.StringVar(&config.Out, "out", "-", "Output file, '-' for stdout")
	fs.Float64Var(&config.Scale, "scale", 1, "Resample the image by this factor before writing")
	fs.BoolVar(&config.Help, "help", false, "Show help information")
	return fs
}

// parseFlags parses the command line into a Config
func parseFlags(args []string, errOut io.Writer) (Config, error) {
	var config Config
	if err := newFlagSet(&config, errOut).Parse(args); err != nil {
		return Config{}, err
	}
	return config, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	var config Config
	newFlagSet(&config, w).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-12s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Progress is logged to stderr. With -out - the image is written to stdout.")
}

// createScene builds the named scene with a camera matching the image shape
func createScene(sceneType string, aspectRatio float64) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}
	return scene.NewScene(sceneType, aspectRatio)
}

// run renders according to config and writes the image to a file or stdout
func run(config Config, stdout io.Writer, logger core.Logger) error {
	aspectRatio, err := scene.ParseAspectRatio(config.Aspect)
	if err != nil {
		return err
	}

	selectedScene, err := createScene(config.Scene, aspectRatio)
	if err != nil {
		return err
	}

	samples := selectedScene.SamplingConfig.SamplesPerPixel
	if config.Samples != 0 {
		samples = config.Samples
	}
	depth := selectedScene.SamplingConfig.MaxDepth
	if config.Depth != 0 {
		depth = config.Depth
	}

	imageConfig := scene.NewImageConfig(config.Width, aspectRatio, samples, depth)
	if err := imageConfig.Validate(); err != nil {
		return err
	}

	format := output.FormatForPath(config.Out, output.FormatPPM)
	if config.Format != "" {
		if format, err = output.ParseFormat(config.Format); err != nil {
			return err
		}
	}
	if !(config.Scale > 0) {
		return fmt.Errorf("%w: %g", output.ErrInvalidScale, config.Scale)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Printf("Using %s scene (%d primitives), seed %d\n",
		selectedScene.Name, selectedScene.GetPrimitiveCount(), seed)

	img, stats, err := render(selectedScene, imageConfig, config.Workers, seed, logger)
	if err != nil {
		return err
	}
	logger.Printf("Samples per pixel: %.1f over %d pixels in %v\n",
		stats.AverageSamples, stats.TotalPixels, stats.Duration)

	var result image.Image = img
	if config.Scale != 1 {
		scaled, err := output.Scale(img, config.Scale)
		if err != nil {
			return err
		}
		result = scaled
	}

	return writeImage(config.Out, result, format, stdout, logger)
}

// render uses the sequential raytracer for a single worker and the tiled
// parallel renderer otherwise
func render(s *scene.Scene, imageConfig scene.ImageConfig, workers int, seed int64, logger core.Logger) (*image.RGBA, renderer.RenderStats, error) {
	sampling := imageConfig.SamplingConfig()

	if workers == 1 {
		raytracer := renderer.NewRaytracer(s, imageConfig.Width, imageConfig.Height, sampling)
		raytracer.SetSampler(core.NewSeededSampler(seed))
		raytracer.SetLogger(logger)
		img, stats := raytracer.RenderPass()
		return img, stats, nil
	}

	parallelConfig := renderer.DefaultParallelConfig()
	parallelConfig.NumWorkers = workers
	parallelConfig.Seed = seed

	pr := renderer.NewParallelRaytracer(s, imageConfig.Width, imageConfig.Height, sampling, parallelConfig, logger)
	return pr.RenderPass()
}

// writeImage encodes img to path, or to stdout when path is "-" or empty
func writeImage(path string, img image.Image, format output.Format, stdout io.Writer, logger core.Logger) (err error) {
	if path == "" || path == "-" {
		return output.Encode(stdout, img, format)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", closeErr)
		}
	}()

	if err := output.Encode(file, img, format); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", path)
	return nil
}
