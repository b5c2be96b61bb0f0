package scene

import (
	"github.com/df07/go-scanline-pathtracer/pkg/background"
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
	"github.com/df07/go-scanline-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Shapes         []geometry.Shape // Top-level objects in the scene
	Background     background.Background
	SamplingConfig renderer.SamplingConfig
	World          geometry.Shape // Acceleration structure built by Preprocess
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// GetWorld implements renderer.Scene. Preprocess must have been called.
func (s *Scene) GetWorld() geometry.Shape { return s.World }

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() background.Background { return s.Background }

// GetSamplingConfig implements renderer.Scene
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig { return s.SamplingConfig }

// Preprocess builds the acceleration structure and the camera. The scene must
// not be modified afterwards since workers share it without locking.
func (s *Scene) Preprocess() {
	switch len(s.Shapes) {
	case 0:
		s.World = geometry.NewList()
	case 1:
		s.World = s.Shapes[0]
	default:
		s.World = geometry.NewBVH(s.Shapes)
	}

	s.Camera = renderer.NewCamera(s.CameraConfig)
}

// ApplyOverrides merges camera and sampling overrides into the scene defaults
// and rebuilds the camera
func (s *Scene) ApplyOverrides(camera renderer.CameraConfig, sampling renderer.SamplingConfig) {
	s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, camera)
	s.SamplingConfig = s.SamplingConfig.Merge(sampling)
	s.Camera = renderer.NewCamera(s.CameraConfig)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, looking through
// aggregates and wrappers
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.List:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitivesInShape(child)
		}
		return count
	case *geometry.BVH:
		count := 0
		for _, child := range obj.Primitives() {
			count += countPrimitivesInShape(child)
		}
		return count
	case *geometry.Translate:
		return countPrimitivesInShape(obj.Object)
	case *geometry.RotateY:
		return countPrimitivesInShape(obj.Object)
	case *geometry.ConstantMedium:
		return countPrimitivesInShape(obj.Boundary)
	default:
		return 1
	}
}

// NewGroundQuad creates a large quad to replace infinite ground planes
// Creates a horizontal quad centered at the given point with normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v points up
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}
