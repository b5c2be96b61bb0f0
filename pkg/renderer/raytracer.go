package renderer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-scanline-pathtracer/pkg/background"
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
	"github.com/df07/go-scanline-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Worker goroutines (0 = runtime.NumCPU())
	Seed            int64 // Base seed; row j uses Seed+j
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        10,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Merge returns c with every non-zero field of override applied. A zero Seed
// keeps c.Seed; assign the field directly to render with seed 0.
func (c SamplingConfig) Merge(override SamplingConfig) SamplingConfig {
	if override.SamplesPerPixel != 0 {
		c.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		c.MaxDepth = override.MaxDepth
	}
	if override.NumWorkers != 0 {
		c.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		c.Seed = override.Seed
	}
	return c
}

// ErrInvalidConfig is returned when a sampling configuration cannot be rendered
var ErrInvalidConfig = errors.New("invalid sampling config")

// Validate checks the configuration for values that cannot be rendered
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel must be at least 1, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetBackground() background.Background
	GetSamplingConfig() SamplingConfig
}

// Raytracer renders a scene scanline by scanline on a worker pool
type Raytracer struct {
	scene      Scene
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer using the scene's sampling configuration
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger()
	}
	config := scene.GetSamplingConfig()
	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:     logger,
	}
}

// SetIntegrator replaces the path tracing integrator
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Render traces every pixel of the scene and returns the linear frame buffer.
// Each row is one pool task with its own sampler seeded from the row index, so
// the output does not depend on the number of workers. Cancelling ctx skips the
// rows that have not started yet.
func (rt *Raytracer) Render(ctx context.Context) (*FrameBuffer, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	camera := rt.scene.GetCamera()
	width, height := camera.Width(), camera.Height()

	fb := NewFrameBuffer(width, height)
	rowRenderer := NewRowRenderer(rt.scene, rt.integrator)
	rowStats := make([]RenderStats, height)

	var progressMu sync.Mutex
	pool := NewWorkerPool(rt.config.NumWorkers, func(remaining int) {
		progressMu.Lock()
		rt.logger.Printf("\rRemaining scanlines: %d ", remaining)
		progressMu.Unlock()
	})
	defer pool.Shutdown()

	rt.logger.Printf("Rendering %dx%d with %d workers, %d spp, depth %d\n",
		width, height, pool.NumWorkers(), rt.config.SamplesPerPixel, rt.config.MaxDepth)

	for j := 0; j < height; j++ {
		pool.Enqueue(func() {
			if ctx.Err() != nil {
				return
			}
			sampler := core.NewSeededSampler(rt.config.Seed + int64(j))
			rowStats[j] = rowRenderer.RenderRow(j, fb.Row(j), sampler)
		})
	}

	pool.WaitUntilDone()
	// Joins the workers so no progress callback is still printing
	pool.Shutdown()

	stats := RenderStats{Workers: pool.NumWorkers()}
	for _, rs := range rowStats {
		stats.Add(rs)
	}
	stats.finalize()
	stats.Duration = time.Since(start)

	if err := pool.Err(); err != nil {
		return nil, stats, fmt.Errorf("render failed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, fmt.Errorf("render cancelled after %d of %d rows: %w", stats.RowsRendered, height, err)
	}

	rt.logger.Printf("\nDone!\n")

	return fb, stats, nil
}
