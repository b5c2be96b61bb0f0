package scene

import (
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
	"github.com/df07/go-scanline-pathtracer/pkg/renderer"
)

// NewBouncingSpheresScene creates a large field of small random spheres, the
// diffuse ones moving upward during the shutter interval
func NewBouncingSpheresScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:        core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			Width:         400,
			AspectRatio:   16.0 / 9.0,
			VFov:          50,
			DefocusAngle:  0.2,
			FocusDistance: 10.0,
		},
		Background:     daylight(),
		SamplingConfig: sampling(100, 50),
	}

	random := newSceneRandom()
	checker := material.NewCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	field := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	for a := -21; a < 21; a++ {
		for b := -21; b < 21; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
				center2 := center.Add(core.NewVec3(0, randomRange(random, 0, 0.5), 0))
				field = append(field, geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomColor(random, 0.5, 1)
				fuzz := randomRange(random, 0, 0.5)
				field = append(field, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				field = append(field, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	field = append(field,
		geometry.NewSphere(core.NewVec3(4, 1.5, 1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(4, -1, 0), 2.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
	)

	s.Shapes = append(s.Shapes,
		geometry.NewBVH(field),
		geometry.NewSphere(core.NewVec3(0, 0.5, 2), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	s.Preprocess()
	return s
}

// NewCheckeredSpheresScene creates two large spheres sharing a spatial checker texture
func NewCheckeredSpheresScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(13, 2, 3),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 16.0 / 9.0,
			VFov:        20,
		},
		Background:     daylight(),
		SamplingConfig: sampling(100, 50),
	}

	checker := material.NewTexturedLambertian(
		material.NewCheckerTexture(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	s.Preprocess()
	return s
}

// NewEarthScene creates a single globe with an image texture
func NewEarthScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(35, 0, 2),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 16.0 / 9.0,
			VFov:        20,
		},
		Background:     daylight(),
		SamplingConfig: sampling(100, 50),
	}

	surface := material.NewTexturedLambertian(earthTexture(opts))
	s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(0, 0, 0), 5, surface))

	s.Preprocess()
	return s
}

// NewPerlinSpheresScene creates a marble ground and sphere from Perlin noise
func NewPerlinSpheresScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(13, 2, 3),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 16.0 / 9.0,
			VFov:        20,
		},
		Background:     daylight(),
		SamplingConfig: sampling(50, 50),
	}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, newSceneRandom()))
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	s.Preprocess()
	return s
}
