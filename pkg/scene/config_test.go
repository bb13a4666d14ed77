package scene

import (
	"errors"
	"math"
	"testing"
)

func TestNewImageConfig(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		aspectRatio float64
		height      int
	}{
		{"16:9 at 400", 400, 16.0 / 9.0, 225},
		{"16:9 at 1000 truncates", 1000, 16.0 / 9.0, 562},
		{"square", 64, 1.0, 64},
		{"portrait", 100, 0.5, 200},
		{"very wide keeps one row", 10, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewImageConfig(tt.width, tt.aspectRatio, 10, 5)
			if config.Width != tt.width || config.Height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, config.Width, config.Height)
			}
			if config.SamplesPerPixel != 10 || config.MaxDepth != 5 {
				t.Errorf("Expected samples 10 and depth 5, got %d and %d", config.SamplesPerPixel, config.MaxDepth)
			}
		})
	}
}

func TestImageConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		config   ImageConfig
		expected error
	}{
		{"valid", ImageConfig{Width: 4, Height: 3, SamplesPerPixel: 1, MaxDepth: 1}, nil},
		{"zero width", ImageConfig{Width: 0, Height: 3, SamplesPerPixel: 1, MaxDepth: 1}, ErrInvalidDimensions},
		{"negative height", ImageConfig{Width: 4, Height: -1, SamplesPerPixel: 1, MaxDepth: 1}, ErrInvalidDimensions},
		{"zero samples", ImageConfig{Width: 4, Height: 3, SamplesPerPixel: 0, MaxDepth: 1}, ErrInvalidSamples},
		{"zero depth", ImageConfig{Width: 4, Height: 3, SamplesPerPixel: 1, MaxDepth: 0}, ErrInvalidDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expected == nil {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestImageConfig_SamplingConfig(t *testing.T) {
	config := ImageConfig{Width: 8, Height: 4, SamplesPerPixel: 32, MaxDepth: 12}

	sampling := config.SamplingConfig()
	if sampling.SamplesPerPixel != 32 || sampling.MaxDepth != 12 {
		t.Errorf("Expected 32 samples and depth 12, got %+v", sampling)
	}
	if config.AspectRatio() != 2 {
		t.Errorf("Expected aspect ratio 2, got %f", config.AspectRatio())
	}
}

func TestParseAspectRatio(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"16:9", 16.0 / 9.0},
		{"1:1", 1},
		{" 4 : 3 ", 4.0 / 3.0},
		{"2.35", 2.35},
		{"3:2", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAspectRatio(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestParseAspectRatio_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "16:0", "0:9", "-1", "16:x", "x:9", "inf", "-16:9"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseAspectRatio(input); !errors.Is(err, ErrInvalidAspectRatio) {
				t.Errorf("ParseAspectRatio(%q): expected ErrInvalidAspectRatio, got %v", input, err)
			}
		})
	}
}
