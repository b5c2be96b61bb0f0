package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
	"github.com/df07/go-scanline-pathtracer/pkg/loaders"
	"github.com/df07/go-scanline-pathtracer/pkg/output"
	"github.com/df07/go-scanline-pathtracer/pkg/renderer"
	"github.com/df07/go-scanline-pathtracer/pkg/scene"
)

// defaultOutput matches the file name the renderer has always written
const defaultOutput = "image.ppm"

// stdoutOutput writes PPM to standard output
const stdoutOutput = "-"

// options holds the parsed command line
type options struct {
	sceneName  string
	width      int
	spp        int
	depth      int
	workers    int
	seed       int64
	seedSet    bool // -seed or the config file chose a seed, possibly 0
	out        string
	configPath string
	scale      float64
	caption    string
	texture    string
	list       bool
	help       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.sceneName, "scene", "", "Scene name (see -list); default 'default'")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.spp, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Worker goroutines (0 = number of CPUs)")
	fs.Int64Var(&opts.seed, "seed", 0, "Base random seed; row j uses seed+j (scene default when omitted)")
	fs.StringVar(&opts.out, "out", "", "Output file (.ppm, .png, .jpg, .bmp, .tif) or '-' for PPM on stdout")
	fs.StringVar(&opts.configPath, "config", "", "JSON render config file; flags take precedence")
	fs.Float64Var(&opts.scale, "scale", 0, "Resize factor applied after rendering (0 = none)")
	fs.StringVar(&opts.caption, "caption", "", "Caption drawn at the bottom of the image")
	fs.StringVar(&opts.texture, "texture", "", "Image texture for the earth, quads and final scenes")
	fs.BoolVar(&opts.list, "list", false, "List available scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	return opts, fs, nil
}

// applyConfig fills options left at their zero value from a config file
func applyConfig(opts *options, config *loaders.RenderConfig) {
	if opts.sceneName == "" {
		opts.sceneName = config.Scene
	}
	if opts.out == "" {
		opts.out = config.Output
	}
	if opts.spp == 0 {
		opts.spp = config.SamplesPerPixel
	}
	if opts.depth == 0 {
		opts.depth = config.MaxDepth
	}
	if opts.workers == 0 {
		opts.workers = config.Workers
	}
	if seed, ok := config.SeedOverride(); ok && !opts.seedSet {
		opts.seed = seed
		opts.seedSet = true
	}
	if opts.scale == 0 {
		opts.scale = config.Scale
	}
	if opts.caption == "" {
		opts.caption = config.Caption
	}
	if opts.texture == "" {
		opts.texture = config.Texture
	}
}

// createScene builds a registered scene by name
func createScene(name string, sceneOpts scene.Options) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}
	return scene.New(name, sceneOpts)
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Scanline Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	printScenes(w)
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-18s %s\n", info.ID, info.Description)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.help {
		printHelp(stdout, fs)
		return nil
	}
	if opts.list {
		printScenes(stdout)
		return nil
	}

	var cameraOverrides renderer.CameraConfig
	if opts.configPath != "" {
		config, err := loaders.LoadRenderConfig(opts.configPath)
		if err != nil {
			return err
		}
		applyConfig(opts, config)
		cameraOverrides = config.CameraOverrides()
	}
	if opts.sceneName == "" {
		opts.sceneName = "default"
	}
	if opts.out == "" {
		opts.out = defaultOutput
	}
	if opts.out != stdoutOutput {
		// Fail before spending time on the render
		if _, err := output.FormatFromPath(opts.out); err != nil {
			return err
		}
	}
	if opts.width != 0 {
		cameraOverrides.Width = opts.width
	}

	logger := renderer.NewWriterLogger(stderr)

	selectedScene, err := buildScene(opts, cameraOverrides, logger)
	if err != nil {
		return err
	}
	describeScene(logger, opts.sceneName, selectedScene)

	raytracer := renderer.NewRaytracer(selectedScene, logger)
	fb, stats, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	img := fb.ToImage()
	if opts.scale > 0 && opts.scale != 1 {
		img = output.Downscale(img, opts.scale)
	}
	output.DrawCaption(img, opts.caption)

	if opts.out == stdoutOutput {
		if err := output.WritePPM(stdout, img); err != nil {
			return fmt.Errorf("error writing PPM: %w", err)
		}
	} else if err := output.SaveImage(opts.out, img); err != nil {
		return err
	}

	printSummary(logger, stats, img, opts.out)
	return nil
}

// buildScene creates the selected scene and applies camera, sampling and seed overrides
func buildScene(opts *options, cameraOverrides renderer.CameraConfig, logger core.Logger) (*scene.Scene, error) {
	selectedScene, err := createScene(opts.sceneName, scene.Options{TexturePath: opts.texture, Logger: logger})
	if err != nil {
		return nil, err
	}
	selectedScene.ApplyOverrides(cameraOverrides, renderer.SamplingConfig{
		SamplesPerPixel: opts.spp,
		MaxDepth:        opts.depth,
		NumWorkers:      opts.workers,
	})
	// Merge treats a zero seed as unset
	if opts.seedSet {
		selectedScene.SamplingConfig.Seed = opts.seed
	}
	return selectedScene, nil
}

func describeScene(logger core.Logger, name string, s *scene.Scene) {
	logger.Printf("Using %s scene (%d primitives)\n", name, s.GetPrimitiveCount())

	world := s.GetWorld()
	if !world.BoundingBox().IsValid() {
		logger.Printf("Warning: scene has no geometry, every pixel will show the background\n")
	}
	if bvh, ok := world.(*geometry.BVH); ok {
		bvhStats := bvh.Stats()
		logger.Printf("BVH: %d nodes, %d leaves, depth %d\n", bvhStats.TotalNodes, bvhStats.LeafNodes, bvhStats.MaxDepth)
	}
}

// printSummary reports render statistics with locale digit grouping
func printSummary(logger core.Logger, stats renderer.RenderStats, img image.Image, out string) {
	p := message.NewPrinter(language.English)
	logger.Printf("%s", p.Sprintf("Render completed in %v: %d pixels, %d samples (%.1f per pixel) on %d workers\n",
		stats.Duration.Round(time.Millisecond), stats.TotalPixels, stats.TotalSamples, stats.AverageSamples, stats.Workers))
	logger.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))
	if out != stdoutOutput {
		logger.Printf("Render saved as %s\n", out)
	}
}
