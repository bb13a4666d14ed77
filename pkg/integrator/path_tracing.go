package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ShadowAcneEpsilon is the lower bound of every intersection search. A
// scattered ray starting on a surface must not re-hit that surface due to
// floating-point error at its origin.
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a
// fixed bounce budget
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce budget of each path
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray. Each bounce multiplies the
// running throughput by the material attenuation. Paths end at a miss
// (throughput × background), at an absorbing material (black) or when the
// depth budget runs out (black).
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene core.Scene, sampler core.Sampler) core.Vec3 {
	world := scene.GetWorld()
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.maxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(BackgroundGradient(ray, scene))
		}

		if hit.Material == nil {
			panic(fmt.Sprintf("integrator: surface hit at t=%g point=%v has no material", hit.T, hit.Point))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit exceeded, no more light is gathered
	return core.Vec3{X: 0, Y: 0, Z: 0}
}

// BackgroundGradient returns the sky color seen along a ray that escapes
// the scene: (1-t)*bottom + t*top with t = 0.5*(unit_direction.y + 1)
func BackgroundGradient(r core.Ray, scene core.Scene) core.Vec3 {
	topColor, bottomColor := scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}
