package renderer

import (
	"github.com/df07/go-scanline-pathtracer/pkg/background"
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
	"github.com/df07/go-scanline-pathtracer/pkg/integrator"
)

// RowRenderer renders single scanlines using an integrator
type RowRenderer struct {
	camera          *Camera
	world           geometry.Shape
	background      background.Background
	integrator      integrator.Integrator
	samplesPerPixel int
}

// NewRowRenderer creates a row renderer for the given scene and integrator
func NewRowRenderer(scene Scene, integratorInst integrator.Integrator) *RowRenderer {
	return &RowRenderer{
		camera:          scene.GetCamera(),
		world:           scene.GetWorld(),
		background:      scene.GetBackground(),
		integrator:      integratorInst,
		samplesPerPixel: max(1, scene.GetSamplingConfig().SamplesPerPixel),
	}
}

// RenderRow fills row with the averaged radiance of scanline j. The sampler is
// owned by the caller and must not be shared with another goroutine.
func (rr *RowRenderer) RenderRow(j int, row []core.Vec3, sampler core.Sampler) RenderStats {
	for i := range row {
		var ps PixelStats
		for s := 0; s < rr.samplesPerPixel; s++ {
			ray := rr.camera.GetRay(i, j, sampler)
			ps.AddSample(rr.integrator.Radiance(ray, rr.world, rr.background, sampler))
		}
		row[i] = ps.GetColor()
	}

	stats := RenderStats{
		TotalPixels:  len(row),
		TotalSamples: len(row) * rr.samplesPerPixel,
		RowsRendered: 1,
	}
	stats.finalize()
	return stats
}
