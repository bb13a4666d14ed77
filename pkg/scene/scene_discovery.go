package scene

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by NewScene
	DisplayName string // Human readable name
	Description string
}

type sceneEntry struct {
	description string
	build       func(aspectRatio float64) (*Scene, error)
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		description: "Diffuse, glass and metal spheres on a ground sphere",
		build:       NewDefaultScene,
	},
	"two-spheres": {
		description: "Blue and red diffuse spheres side by side",
		build:       NewTwoSpheresScene,
	},
	"spheregrid": {
		description: "Grid of diffuse, metal and glass spheres",
		build:       NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, entry := range builtinScenes {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: entry.description,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewScene builds the named built-in scene for the given aspect ratio
func NewScene(name string, aspectRatio float64) (*Scene, error) {
	entry, ok := builtinScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if !(aspectRatio > 0) {
		return nil, fmt.Errorf("scene %s: %w: got %g", name, ErrInvalidAspectRatio, aspectRatio)
	}

	s, err := entry.build(aspectRatio)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	return s, nil
}

// titleCase converts a scene ID like "two-spheres" to "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}
