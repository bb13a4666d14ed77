package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	World          *geometry.ShapeList // Objects in the scene
	TopColor       core.Vec3           // Background color straight up
	BottomColor    core.Vec3           // Background color straight down
	SamplingConfig renderer.SamplingConfig
	CameraConfig   renderer.CameraConfig
}

// newScene creates an empty scene with the blue-to-white sky
func newScene(name string, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		Camera:         renderer.NewCamera(cameraConfig),
		World:          geometry.NewShapeList(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White horizon
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() core.Camera {
	return s.Camera
}

// GetWorld returns the list of all surfaces
func (s *Scene) GetWorld() core.Shape {
	return s.World
}

// GetBackgroundColors returns the sky gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetPrimitiveCount returns the number of surfaces in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// AddSphere validates and adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat core.Material) error {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return fmt.Errorf("sphere at %v: %w: got %g", center, ErrInvalidRadius, radius)
	}
	if mat == nil {
		return fmt.Errorf("sphere at %v: %w", center, ErrMissingMaterial)
	}
	s.World.Add(geometry.NewSphere(center, radius, mat))
	return nil
}

// NewLambertian creates a diffuse material after checking the albedo
func NewLambertian(albedo core.Vec3) (*material.Lambertian, error) {
	if err := validateAlbedo(albedo); err != nil {
		return nil, err
	}
	return material.NewLambertian(albedo), nil
}

// NewMetal creates a metal material, rejecting fuzz outside [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) (*material.Metal, error) {
	if err := validateAlbedo(albedo); err != nil {
		return nil, err
	}
	if !(fuzz >= 0 && fuzz <= 1) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidFuzz, fuzz)
	}
	return material.NewMetal(albedo, fuzz), nil
}

// NewDielectric creates a glass-like material with the given refractive index
func NewDielectric(refractiveIndex float64) (*material.Dielectric, error) {
	if !(refractiveIndex > 0) || math.IsInf(refractiveIndex, 1) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidRefractiveIndex, refractiveIndex)
	}
	return material.NewDielectric(refractiveIndex), nil
}

func validateAlbedo(albedo core.Vec3) error {
	for _, c := range []float64{albedo.X, albedo.Y, albedo.Z} {
		if !(c >= 0) || math.IsInf(c, 1) {
			return fmt.Errorf("%w: got %v", ErrInvalidAlbedo, albedo)
		}
	}
	return nil
}
