package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 7

// NewSphereGridScene creates a square grid of small spheres on a ground
// sphere, cycling diffuse, metal and glass materials across the grid
func NewSphereGridScene(aspectRatio float64) (*Scene, error) {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.AspectRatio = aspectRatio
	cameraConfig.Origin = core.NewVec3(0, 0.4, 0.5) // Slightly above the grid

	s := newScene("spheregrid", cameraConfig, renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        40,
	})

	ground, err := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	if err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(0, -1000.5, 0), 1000, ground); err != nil {
		return nil, err
	}

	glass, err := NewDielectric(1.5)
	if err != nil {
		return nil, err
	}

	// Grid spans x in [-2, 2] and z in [-1.5, -5.5]
	extent := 4.0
	spacing := extent / float64(sphereGridSize-1)
	radius := spacing * 0.35

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			position := core.NewVec3(
				float64(i)*spacing-extent/2,
				-0.5+radius, // Resting on the ground
				-1.5-float64(j)*spacing,
			)

			// Hue varies across X, chroma across Z
			hue := float64(i) / float64(sphereGridSize-1) * 360.0
			chroma := minChroma + float64(j)/float64(sphereGridSize-1)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			var mat core.Material
			switch (i + j) % 3 {
			case 0:
				mat, err = NewLambertian(color)
			case 1:
				roughness := 0.05 + 0.1*float64((i*j)%3)/2.0
				mat, err = NewMetal(color, roughness)
			default:
				mat = glass
			}
			if err != nil {
				return nil, err
			}

			if err := s.AddSphere(position, radius, mat); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}
