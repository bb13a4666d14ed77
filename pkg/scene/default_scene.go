package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates three spheres (glass, diffuse, metal) resting on a
// large ground sphere
func NewDefaultScene(aspectRatio float64) (*Scene, error) {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.AspectRatio = aspectRatio

	s := newScene("default", cameraConfig, renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	})

	ground, err := NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	if err != nil {
		return nil, err
	}
	center, err := NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	if err != nil {
		return nil, err
	}
	glass, err := NewDielectric(1.5)
	if err != nil {
		return nil, err
	}
	gold, err := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	if err != nil {
		return nil, err
	}

	spheres := []struct {
		center core.Vec3
		radius float64
		mat    core.Material
	}{
		{core.NewVec3(0, -100.5, -1), 100, ground},
		{core.NewVec3(0, 0, -1), 0.5, center},
		{core.NewVec3(-1, 0, -1), 0.5, glass},
		{core.NewVec3(1, 0, -1), 0.5, gold},
	}
	for _, sp := range spheres {
		if err := s.AddSphere(sp.center, sp.radius, sp.mat); err != nil {
			return nil, err
		}
	}

	return s, nil
}
