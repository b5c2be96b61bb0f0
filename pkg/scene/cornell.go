package scene

import (
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
	"github.com/df07/go-scanline-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const cornellSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
	}
}

// cornellWalls returns the five walls of the open box
func cornellWalls() []geometry.Shape {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Shape{
		geometry.NewQuad(core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, cornellSize, 0), core.NewVec3(0, 0, cornellSize), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, cornellSize, 0), core.NewVec3(0, 0, cornellSize), red),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, 0, cornellSize), white),
		geometry.NewQuad(core.NewVec3(cornellSize, cornellSize, cornellSize), core.NewVec3(-cornellSize, 0, 0), core.NewVec3(0, 0, -cornellSize), white),
		geometry.NewQuad(core.NewVec3(0, 0, cornellSize), core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, cornellSize, 0), white),
	}
}

// cornellBlocks returns the tall and short blocks, rotated and placed in the box
func cornellBlocks() (tall, short geometry.Shape) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	return tall, short
}

// NewCornellBoxScene creates the classic Cornell box with two rotated blocks
func NewCornellBoxScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig:   cornellCamera(),
		Background:     darkness(),
		SamplingConfig: sampling(200, 50),
	}

	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	tall, short := cornellBlocks()

	s.Shapes = append(s.Shapes, cornellWalls()...)
	s.Shapes = append(s.Shapes,
		geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
		tall,
		short,
	)

	s.Preprocess()
	return s
}

// NewCornellSmokeScene replaces the Cornell blocks with dark and light smoke
func NewCornellSmokeScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig:   cornellCamera(),
		Background:     darkness(),
		SamplingConfig: sampling(200, 50),
	}

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	tall, short := cornellBlocks()

	s.Shapes = append(s.Shapes, cornellWalls()...)
	s.Shapes = append(s.Shapes,
		geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light),
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	s.Preprocess()
	return s
}
