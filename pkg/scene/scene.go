package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is populated once and must not be modified while a render is running.
type Scene struct {
	Name       string
	Camera     geometry.CameraConfig
	Sampling   SamplingConfig
	Background integrator.Background
	Shapes     *geometry.ShapeList
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxBounces      int   // Maximum path length; 0 renders black
	NumWorkers      int   // Parallel row bands (0 = hardware parallelism)
	Seed            int64 // Base seed; band k uses Seed+k
	AuxPasses       bool  // Also accumulate albedo, normal and depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 20,
		MaxBounces:      10,
		NumWorkers:      0,
		Seed:            1,
	}
}

// New creates an empty scene with default camera, sampling and background
func New(name string) *Scene {
	return &Scene{
		Name:       name,
		Camera:     geometry.DefaultCameraConfig(),
		Sampling:   DefaultSamplingConfig(),
		Background: integrator.DefaultBackground(),
		Shapes:     geometry.NewShapeList(),
	}
}

// AddSphere adds a sphere with the given material and returns it
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Shapes.Add(sphere)
	return sphere
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.Shapes.Len()
}
