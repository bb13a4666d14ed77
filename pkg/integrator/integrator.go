package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor resolves a camera ray to a linear RGB color
	RayColor(ray core.Ray, scene core.Scene, sampler core.Sampler) core.Vec3
}
