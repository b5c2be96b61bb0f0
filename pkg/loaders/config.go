package loaders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/renderer"
)

// RenderConfig is the on-disk form of render settings. Every field is
// optional; zero values leave the scene's defaults in place, except Seed where
// an explicit 0 is a valid choice.
type RenderConfig struct {
	Scene           string        `json:"scene"`
	Output          string        `json:"output"`
	SamplesPerPixel int           `json:"samplesPerPixel"`
	MaxDepth        int           `json:"maxDepth"`
	Workers         int           `json:"workers"`
	Seed            *int64        `json:"seed,omitempty"`
	Scale           float64       `json:"scale"`
	Caption         string        `json:"caption"`
	Texture         string        `json:"texture"`
	Camera          *CameraConfig `json:"camera,omitempty"`
}

// CameraConfig holds camera overrides. Vectors are [x, y, z] arrays.
type CameraConfig struct {
	Center        []float64 `json:"center"`
	LookAt        []float64 `json:"lookAt"`
	Up            []float64 `json:"up"`
	Width         int       `json:"width"`
	AspectRatio   float64   `json:"aspectRatio"`
	VFov          float64   `json:"vfov"`
	DefocusAngle  float64   `json:"defocusAngle"`
	FocusDistance float64   `json:"focusDistance"`
}

// LoadRenderConfig reads a JSON render configuration file. Unknown fields
// are rejected so typos do not silently fall back to defaults.
func LoadRenderConfig(filename string) (*RenderConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := ParseRenderConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// ParseRenderConfig decodes and validates a JSON render configuration
func ParseRenderConfig(data []byte) (*RenderConfig, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var config RenderConfig
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse render config: %w", err)
	}

	if config.Camera != nil {
		for name, v := range map[string][]float64{
			"center": config.Camera.Center,
			"lookAt": config.Camera.LookAt,
			"up":     config.Camera.Up,
		} {
			if v != nil && len(v) != 3 {
				return nil, fmt.Errorf("camera %s must have 3 components, got %d", name, len(v))
			}
		}
	}

	for name, v := range map[string]float64{
		"samplesPerPixel": float64(config.SamplesPerPixel),
		"maxDepth":        float64(config.MaxDepth),
		"workers":         float64(config.Workers),
		"scale":           config.Scale,
	} {
		if v < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative, got %g", renderer.ErrInvalidConfig, name, v)
		}
	}

	return &config, nil
}

// SamplingOverrides returns the sampling fields as renderer overrides. A seed
// of 0 cannot be expressed this way; use SeedOverride for that.
func (c *RenderConfig) SamplingOverrides() renderer.SamplingConfig {
	seed, _ := c.SeedOverride()
	return renderer.SamplingConfig{
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		NumWorkers:      c.Workers,
		Seed:            seed,
	}
}

// SeedOverride returns the configured seed and whether the file set one
func (c *RenderConfig) SeedOverride() (int64, bool) {
	if c.Seed == nil {
		return 0, false
	}
	return *c.Seed, true
}

// CameraOverrides returns the camera fields as renderer overrides
func (c *RenderConfig) CameraOverrides() renderer.CameraConfig {
	if c.Camera == nil {
		return renderer.CameraConfig{}
	}
	return renderer.CameraConfig{
		Center:        toVec3(c.Camera.Center),
		LookAt:        toVec3(c.Camera.LookAt),
		Up:            toVec3(c.Camera.Up),
		Width:         c.Camera.Width,
		AspectRatio:   c.Camera.AspectRatio,
		VFov:          c.Camera.VFov,
		DefocusAngle:  c.Camera.DefocusAngle,
		FocusDistance: c.Camera.FocusDistance,
	}
}

func toVec3(v []float64) core.Vec3 {
	if len(v) != 3 {
		return core.Vec3{}
	}
	return core.NewVec3(v[0], v[1], v[2])
}
