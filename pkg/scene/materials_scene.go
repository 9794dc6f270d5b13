package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// NewMaterialsScene creates a row of three spheres showing each scattering material,
// including a hollow glass sphere made from an air bubble inside glass
func NewMaterialsScene() *Scene {
	s := New("materials")
	s.Camera = geometry.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		DefocusAngle:  10,
		FocusDistance: 3.4,
	}
	s.Sampling.SamplesPerPixel = 100
	s.Sampling.MaxBounces = 50

	ground := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.AddSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, ground)
	s.AddSphere(core.NewVec3(0.0, 0.0, -1.2), 0.5, center)
	s.AddSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, left)
	s.AddSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.4, bubble)
	s.AddSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, right)

	return s
}

// NewSingleSphereScene creates one white diffuse unit sphere lit only by the sky
func NewSingleSphereScene() *Scene {
	s := New("single-sphere")
	s.Camera = geometry.CameraConfig{
		Center:        core.NewVec3(0, 0, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          60,
		FocusDistance: 3,
	}
	s.Sampling.Width = 200
	s.Sampling.Height = 200

	s.AddSphere(core.NewVec3(0, 0, 0), 1.0, material.NewLambertian(core.NewVec3(1, 1, 1)))
	return s
}
