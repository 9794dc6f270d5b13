package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmissive_EmitsScaledColor(t *testing.T) {
	light := NewEmissive(core.NewVec3(1.0, 0.5, 0.25), 4)
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	result := light.Interact(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, rand.New(rand.NewSource(1)))

	emitted, ok := result.(Emitted)
	require.True(t, ok, "emissive should emit, got %T", result)
	assert.Equal(t, core.NewVec3(4, 2, 1), emitted.Color)
}

func TestAbsorber_NeitherScattersNorEmits(t *testing.T) {
	result := Absorber{}.Interact(core.Ray{}, HitRecord{}, nil)
	assert.Equal(t, Absorbed{}, result)
}

func TestAlbedo(t *testing.T) {
	assert.Equal(t, core.NewVec3(0.1, 0.2, 0.3), Albedo(Scattered{Attenuation: core.NewVec3(0.1, 0.2, 0.3)}))
	assert.Equal(t, core.NewVec3(2, 2, 2), Albedo(Emitted{Color: core.NewVec3(2, 2, 2)}))
	assert.Equal(t, core.Vec3{}, Albedo(Absorbed{}))
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	var front HitRecord
	front.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1)), outward)
	assert.True(t, front.FrontFace)
	assert.Equal(t, outward, front.Normal)

	var back HitRecord
	back.SetFaceNormal(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), outward)
	assert.False(t, back.FrontFace)
	assert.Equal(t, core.NewVec3(0, 0, -1), back.Normal)
}
