package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// NewRandomSpheresScene creates the field of small random spheres around three large ones.
// Many of the small spheres are lights, so the sky is dimmed to let them stand out.
func NewRandomSpheresScene(seed int64) *Scene {
	s := New("random-spheres")
	s.Camera = geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		DefocusAngle:  0.6,
		FocusDistance: 10,
	}
	s.Sampling.Width = 640
	s.Sampling.Height = 360
	s.Sampling.SamplesPerPixel = 100
	s.Sampling.MaxBounces = 50
	s.Background.Exposure = 0.05

	random := rand.New(rand.NewSource(seed))

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	// Shared by every small glass sphere
	glass := material.NewDielectric(1.5)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.5:
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.8:
				color := core.FromHSV(random.Float64(), 0.7, 1)
				mat = material.NewEmissive(color.MultiplyVec(color), core.RandomRange(random, 6, 20))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(random, 0.5, 1)
				mat = material.NewMetal(albedo, core.RandomRange(random, 0, 0.5))
			default:
				mat = glass
			}
			s.AddSphere(center, 0.2, mat)
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return s
}
