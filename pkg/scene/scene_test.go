package scene

import (
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"random spheres", "random-spheres", false},
		{"materials", "materials", false},
		{"single sphere", "single-sphere", false},
		{"sphere grid", "sphere-grid", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := Create(tt.sceneType)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, sc)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, sc)
			assert.Equal(t, tt.sceneType, sc.Name)
			assert.Positive(t, sc.Sampling.Width)
			assert.Positive(t, sc.Sampling.Height)
			assert.Positive(t, sc.GetPrimitiveCount())

			_, err = geometry.NewCamera(sc.Camera, sc.Sampling.Width, sc.Sampling.Height)
			assert.NoError(t, err, "built-in camera should be valid")
		})
	}
}

func TestNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"materials", "random-spheres", "single-sphere", "sphere-grid"}, Names())
	assert.Len(t, List(), 4)
}

func TestRandomSpheresScene_DeterministicPerSeed(t *testing.T) {
	a := NewRandomSpheresScene(7)
	b := NewRandomSpheresScene(7)
	require.Equal(t, a.GetPrimitiveCount(), b.GetPrimitiveCount())

	for i, shape := range a.Shapes.Shapes() {
		sa := shape.(*geometry.Sphere)
		sb := b.Shapes.Shapes()[i].(*geometry.Sphere)
		assert.Equal(t, sa.Center, sb.Center)
		assert.Equal(t, sa.Radius, sb.Radius)
	}

	// Ground plus three feature spheres plus at most 22x22 small spheres
	assert.GreaterOrEqual(t, a.GetPrimitiveCount(), 4)
	assert.LessOrEqual(t, a.GetPrimitiveCount(), 4+22*22)
	assert.Equal(t, 0.05, a.Background.Exposure)
}

func TestAddSphere(t *testing.T) {
	sc := New("test")
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	sphere := sc.AddSphere(core.NewVec3(1, 2, 3), -1, mat)
	assert.Equal(t, 0.0, sphere.Radius, "negative radius clamps to zero")
	assert.Same(t, mat, sphere.Material)
	assert.Equal(t, 1, sc.GetPrimitiveCount())
}

func TestSphereGridScene(t *testing.T) {
	sc := NewSphereGridScene(5)
	// Sun, ground and the grid
	assert.Equal(t, 2+25, sc.GetPrimitiveCount())

	small := NewSphereGridScene(1)
	assert.Equal(t, 2+4, small.GetPrimitiveCount(), "grid size is at least 2")
}

func TestOklchToRGB(t *testing.T) {
	grey := oklchToRGB(0.5, 0, 0)
	assert.InDelta(t, grey.X, grey.Y, 1e-6)
	assert.InDelta(t, grey.Y, grey.Z, 1e-6)

	white := oklchToRGB(1, 0, 0)
	assert.InDelta(t, 1.0, white.X, 1e-3)

	vivid := oklchToRGB(0.65, 0.4, 30)
	for _, c := range []float64{vivid.X, vivid.Y, vivid.Z} {
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 1.0)
	}
}

func TestMaterialsScene(t *testing.T) {
	sc := NewMaterialsScene()
	shapes := sc.Shapes.Shapes()
	require.Len(t, shapes, 5)

	ground := shapes[0].(*geometry.Sphere)
	assert.Equal(t, 100.0, ground.Radius)
	assert.Equal(t, core.NewVec3(0.1, 0.2, 0.5), ground.Material.(*material.Lambertian).Albedo)

	// Hollow glass: an air bubble of inverted index inside the glass sphere
	outer := shapes[2].(*geometry.Sphere)
	bubble := shapes[3].(*geometry.Sphere)
	assert.Equal(t, outer.Center, bubble.Center)
	assert.Equal(t, 1.5, outer.Material.(*material.Dielectric).RefractiveIndex)
	assert.InDelta(t, 1.0/1.5, bubble.Material.(*material.Dielectric).RefractiveIndex, 1e-12)
}
