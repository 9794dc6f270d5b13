package material

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Interact scatters toward normal + a uniform unit vector, which yields a cosine-weighted lobe
func (l *Lambertian) Interact(rayIn core.Ray, hit HitRecord, random *rand.Rand) ScatterResult {
	direction := hit.Normal.Add(core.RandomUnitVector(random))

	// The random vector nearly cancelled the normal
	if direction.NearZero() {
		direction = hit.Normal
	}

	return Scattered{
		Attenuation: l.Albedo,
		Ray:         core.NewRay(hit.Point, direction),
	}
}
