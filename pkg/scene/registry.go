package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Builder constructs a ready-to-render scene
type Builder func(opts Options) *Scene

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string
	Build       Builder
}

var builtInScenes = map[string]SceneInfo{}

func register(id, description string, build Builder) {
	builtInScenes[id] = SceneInfo{
		ID:          id,
		DisplayName: titleCase(id),
		Description: description,
		Build:       build,
	}
}

func init() {
	register("default", "Ground with lambertian, metal and glass spheres under a sky gradient", NewDefaultScene)
	register("bouncing-spheres", "Random field of moving, metal and glass spheres with depth of field", NewBouncingSpheresScene)
	register("checkered-spheres", "Two large spheres with a spatial checker texture", NewCheckeredSpheresScene)
	register("earth", "Image textured globe", NewEarthScene)
	register("perlin-spheres", "Marble spheres from Perlin turbulence", NewPerlinSpheresScene)
	register("quads", "Five colored quads, one image textured", NewQuadsScene)
	register("simple-light", "Marble spheres lit by area and sphere emitters", NewSimpleLightScene)
	register("cornell-box", "Cornell box with two rotated blocks", NewCornellBoxScene)
	register("cornell-smoke", "Cornell box with smoke blocks", NewCornellSmokeScene)
	register("final", "Every feature combined", NewFinalScene)
}

// Names returns the registered scene IDs in sorted order
func Names() []string {
	names := make([]string, 0, len(builtInScenes))
	for id := range builtInScenes {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every registered scene, sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, id := range Names() {
		scenes = append(scenes, builtInScenes[id])
	}
	return scenes
}

// New builds the scene registered under id
func New(id string, opts Options) (*Scene, error) {
	info, ok := builtInScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, id, strings.Join(Names(), ", "))
	}
	return info.Build(opts), nil
}

// titleCase converts an ID-style string to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
