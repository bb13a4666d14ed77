package scene

import "errors"

// Validation errors returned while building scenes and image configs
var (
	ErrInvalidDimensions      = errors.New("image width and height must be positive")
	ErrInvalidAspectRatio     = errors.New("aspect ratio must be positive and finite")
	ErrInvalidSamples         = errors.New("samples per pixel must be positive")
	ErrInvalidDepth           = errors.New("max depth must be positive")
	ErrInvalidRadius          = errors.New("sphere radius must be positive and finite")
	ErrInvalidAlbedo          = errors.New("albedo components must be finite and non-negative")
	ErrInvalidFuzz            = errors.New("metal fuzz must be within [0, 1]")
	ErrInvalidRefractiveIndex = errors.New("refractive index must be positive and finite")
	ErrMissingMaterial        = errors.New("surface has no material")
	ErrUnknownScene           = errors.New("unknown scene")
)
