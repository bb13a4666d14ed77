package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTwoSpheresScene creates a blue and a red diffuse sphere touching at the
// center of a 90 degree view
func NewTwoSpheresScene(aspectRatio float64) (*Scene, error) {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.AspectRatio = aspectRatio

	s := newScene("two-spheres", cameraConfig, renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        25,
	})

	r := math.Cos(math.Pi / 4)

	blue, err := NewLambertian(core.NewVec3(0, 0, 1))
	if err != nil {
		return nil, err
	}
	red, err := NewLambertian(core.NewVec3(1, 0, 0))
	if err != nil {
		return nil, err
	}

	if err := s.AddSphere(core.NewVec3(-r, 0, -1), r, blue); err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(r, 0, -1), r, red); err != nil {
		return nil, err
	}

	return s, nil
}
