package scene

import (
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
	"github.com/df07/go-scanline-pathtracer/pkg/renderer"
)

// NewFinalScene combines every feature: instanced boxes, motion blur, glass,
// metal, subsurface and global fog, an image texture, noise and a rotated sphere cluster
func NewFinalScene(opts Options) *Scene {
	s := &Scene{
		CameraConfig: renderer.CameraConfig{
			Center:      core.NewVec3(478, 278, -600),
			LookAt:      core.NewVec3(278, 278, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 1.0,
			VFov:        40,
		},
		Background:     darkness(),
		SamplingConfig: sampling(250, 4),
	}

	random := newSceneRandom()

	// Floor of random-height boxes
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	var floor []geometry.Shape
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := randomRange(random, 1, 101)
			floor = append(floor, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	s.Shapes = append(s.Shapes, geometry.NewBVH(floor))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Shapes = append(s.Shapes,
		geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	s.Shapes = append(s.Shapes,
		geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass shell filled with blue subsurface medium
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Shapes = append(s.Shapes, boundary, geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.Shapes = append(s.Shapes, geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture(opts))),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(material.NewNoiseTexture(0.2, random))),
	)

	// Cluster of small spheres, rotated and moved as one instance
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]geometry.Shape, 0, 1000)
	for j := 0; j < 1000; j++ {
		cluster = append(cluster, geometry.NewSphere(randomColor(random, 0, 165), 10, white))
	}
	s.Shapes = append(s.Shapes,
		geometry.NewTranslate(geometry.NewRotateY(geometry.NewBVH(cluster), 15), core.NewVec3(-100, 270, 395)))

	s.Preprocess()
	return s
}
