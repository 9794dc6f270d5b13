package material

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Color     core.Vec3 // Base color
	Intensity float64   // Scalar applied to the base color
}

// NewEmissive creates a new emissive material
func NewEmissive(color core.Vec3, intensity float64) *Emissive {
	return &Emissive{Color: color, Intensity: intensity}
}

// Interact never scatters; the path ends at the light
func (e *Emissive) Interact(rayIn core.Ray, hit HitRecord, random *rand.Rand) ScatterResult {
	return Emitted{Color: e.Emission()}
}

// Emission returns the emitted radiance
func (e *Emissive) Emission() core.Vec3 {
	return e.Color.Multiply(e.Intensity)
}
