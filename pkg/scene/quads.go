package scene

import (
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
	"github.com/df07/go-scanline-pathtracer/pkg/renderer"
)

// NewQuadsScene creates five colored quads around the camera axis, the back
// one carrying the image texture
func NewQuadsScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(0, 0, 9),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 2.0,
			VFov:        80,
		},
		Background:     daylight(),
		SamplingConfig: sampling(100, 50),
	}

	earthSurface := material.NewTexturedLambertian(earthTexture(opts))
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	s.Shapes = append(s.Shapes,
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), earthSurface),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	s.Preprocess()
	return s
}

// NewSimpleLightScene creates marble spheres lit by a rectangular and a spherical emitter
func NewSimpleLightScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(26, 3, 6),
			LookAt:      core.NewVec3(0, 2, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 16.0 / 9.0,
			VFov:        20,
		},
		Background:     darkness(),
		SamplingConfig: sampling(100, 50),
	}

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, newSceneRandom()))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)

	s.Preprocess()
	return s
}
