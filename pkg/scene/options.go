package scene

import (
	"math/rand"

	"github.com/df07/go-scanline-pathtracer/pkg/background"
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/loaders"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
	"github.com/df07/go-scanline-pathtracer/pkg/renderer"
)

// DefaultTexturePath is the equirectangular map used by the earth and quads scenes
const DefaultTexturePath = "earthmap.jpg"

// sceneSeed makes randomly generated scene content identical between runs
const sceneSeed = 42

// Options carries inputs shared by every scene builder
type Options struct {
	TexturePath string      // Image for textured scenes; a checkerboard is used if it cannot be loaded
	Logger      core.Logger // Receives load warnings (nil = discard)
}

func (o Options) logger() core.Logger {
	if o.Logger == nil {
		return core.NopLogger()
	}
	return o.Logger
}

// earthTexture loads the scene image texture, falling back to a procedural
// checkerboard so a missing file does not abort the render
func earthTexture(opts Options) material.ColorSource {
	path := opts.TexturePath
	if path == "" {
		path = DefaultTexturePath
	}

	texture, err := loaders.LoadImageTexture(path)
	if err != nil {
		opts.logger().Printf("Warning: %v; using checkerboard texture\n", err)
		return material.NewCheckerboardTexture(512, 256, 32,
			core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	}
	return texture
}

// daylight is the sky color for scenes without light sources
func daylight() background.Background {
	return background.NewConstant(core.NewVec3(0.70, 0.80, 1.00))
}

// darkness is the background for scenes lit only by emitters
func darkness() background.Background {
	return background.NewConstant(core.NewVec3(0, 0, 0))
}

// sampling returns the default sampling config with per-scene quality settings
func sampling(samplesPerPixel, maxDepth int) renderer.SamplingConfig {
	return renderer.DefaultSamplingConfig().Merge(renderer.SamplingConfig{
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	})
}

func newSceneRandom() *rand.Rand {
	return rand.New(rand.NewSource(sceneSeed))
}

// randomRange returns a random float64 in [lo, hi)
func randomRange(random *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*random.Float64()
}

// randomColor returns a color with each component in [lo, hi)
func randomColor(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(randomRange(random, lo, hi), randomRange(random, lo, hi), randomRange(random, lo, hi))
}
