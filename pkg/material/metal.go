package material

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: min(1.0, max(0.0, fuzzness))}
}

// Interact reflects the ray and perturbs it by the fuzz radius.
// Rays perturbed below the surface are absorbed.
func (m *Metal) Interact(rayIn core.Ray, hit HitRecord, random *rand.Rand) ScatterResult {
	reflected := rayIn.Direction.Reflect(hit.Normal).Normalize()
	reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzzness))

	if reflected.Dot(hit.Normal) <= 0 {
		return Absorbed{}
	}

	return Scattered{
		Attenuation: m.Albedo,
		Ray:         core.NewRay(hit.Point, reflected),
	}
}
