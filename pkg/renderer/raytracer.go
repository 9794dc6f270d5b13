package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

var (
	// ErrInvalidConfig is wrapped by sampling configuration errors reported from Init
	ErrInvalidConfig = errors.New("invalid sampling configuration")
	// ErrNotInitialized is returned by Render before a successful Init
	ErrNotInitialized = errors.New("raytracer not initialized")
)

// Raytracer drives a full render of a scene: Init once, then Render, then read Frame
type Raytracer struct {
	scene  *scene.Scene
	logger core.Logger

	config   scene.SamplingConfig
	camera   *geometry.Camera
	renderer *TileRenderer
	frame    *FrameBuffer
	workers  int
}

// NewRaytracer creates a raytracer for sc. A nil logger discards output.
func NewRaytracer(sc *scene.Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{scene: sc, logger: logger}
}

// Init validates the configuration and derives the camera and frame buffer
func (rt *Raytracer) Init() error {
	config := rt.scene.Sampling
	if err := validateSamplingConfig(config); err != nil {
		return err
	}

	camera, err := geometry.NewCamera(rt.scene.Camera, config.Width, config.Height)
	if err != nil {
		return fmt.Errorf("init camera: %w", err)
	}

	rt.config = config
	rt.camera = camera
	rt.frame = NewFrameBuffer(config.Width, config.Height, config.AuxPasses)
	rt.renderer = NewTileRenderer(camera, integrator.NewPathTracer(rt.scene.Shapes, rt.scene.Background),
		rt.frame, config.SamplesPerPixel, config.MaxBounces)

	rt.workers = config.NumWorkers
	if rt.workers <= 0 {
		rt.workers = HardwareParallelism()
	}
	return nil
}

// Render fills the frame buffer and blocks until every worker has finished
func (rt *Raytracer) Render() (RenderStats, error) {
	if rt.renderer == nil {
		return RenderStats{}, ErrNotInitialized
	}

	startTime := time.Now()
	bands := PartitionRows(rt.config.Height, rt.workers)
	progress := newProgressReporter(rt.config.Height, rt.logger)
	pool := NewWorkerPool(bands, rt.renderer, rt.config.Seed, progress)

	rt.logger.Printf("Rendering %q at %dx%d, %d spp, %d bounces (using %d workers)...\n",
		rt.scene.Name, rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel,
		rt.config.MaxBounces, pool.GetNumWorkers())

	pool.Run()

	stats := RenderStats{
		TotalPixels:     rt.config.Width * rt.config.Height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		Workers:         pool.GetNumWorkers(),
		Duration:        time.Since(startTime),
	}
	stats.TotalSamples = stats.TotalPixels * stats.SamplesPerPixel

	rt.logger.Printf("Render completed in %v\n", stats.Duration)
	return stats, nil
}

// Frame returns the frame buffer; it is complete once Render has returned
func (rt *Raytracer) Frame() *FrameBuffer {
	return rt.frame
}

// SamplePixel returns the averaged radiance of pixel (i, j) drawn from random
func (rt *Raytracer) SamplePixel(i, j int, random *rand.Rand) (core.Vec3, error) {
	if rt.renderer == nil {
		return core.Vec3{}, ErrNotInitialized
	}
	return rt.renderer.SamplePixel(i, j, random), nil
}

func validateSamplingConfig(config scene.SamplingConfig) error {
	switch {
	case config.Width <= 0 || config.Height <= 0:
		return fmt.Errorf("image size %dx%d must be positive: %w", config.Width, config.Height, ErrInvalidConfig)
	case config.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel %d must be positive: %w", config.SamplesPerPixel, ErrInvalidConfig)
	case config.MaxBounces < 0:
		return fmt.Errorf("max bounces %d must not be negative: %w", config.MaxBounces, ErrInvalidConfig)
	case config.NumWorkers < 0:
		return fmt.Errorf("worker count %d must not be negative: %w", config.NumWorkers, ErrInvalidConfig)
	}
	return nil
}
