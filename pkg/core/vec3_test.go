package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVecInDelta(t *testing.T, expected, actual Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "X component")
	assert.InDelta(t, expected.Y, actual.Y, delta, "Y component")
	assert.InDelta(t, expected.Z, actual.Z, delta, "Z component")
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		normal   Vec3
		expected Vec3
	}{
		{"head on", NewVec3(0, -1, 0), NewVec3(0, 1, 0), NewVec3(0, 1, 0)},
		{"45 degrees", NewVec3(1, -1, 0), NewVec3(0, 1, 0), NewVec3(1, 1, 0)},
		{"grazing", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVecInDelta(t, tt.expected, tt.v.Reflect(tt.normal), 1e-12)
		})
	}
}

func TestVec3_Refract(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	// Matching indices pass straight through
	in := NewVec3(1, -1, 0).Normalize()
	assertVecInDelta(t, in, in.Refract(normal, 1.0), 1e-12)

	// Entering glass bends toward the normal
	out := in.Refract(normal, 1.0/1.5)
	assert.InDelta(t, 1.0, out.Length(), 1e-9)
	sinIn := math.Abs(in.X)
	sinOut := math.Abs(out.X)
	assert.InDelta(t, sinIn/1.5, sinOut, 1e-9, "Snell's law")
}

func TestVec3_NearZero(t *testing.T) {
	assert.True(t, NewVec3(0, 0, 0).NearZero())
	assert.True(t, NewVec3(1e-9, -1e-9, 5e-9).NearZero())
	assert.False(t, NewVec3(1e-9, 1e-7, 0).NearZero())
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	assertVecInDelta(t, NewVec3(0.6, 0, 0.8), v, 1e-12)

	// Zero vectors stay zero instead of turning into NaN
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3_CrossAndLerp(t *testing.T) {
	assert.Equal(t, NewVec3(0, 0, 1), NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)))

	a := NewVec3(1, 1, 1)
	b := NewVec3(0.5, 0.7, 1.0)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assertVecInDelta(t, NewVec3(0.75, 0.85, 1.0), a.Lerp(b, 0.5), 1e-12)
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	assert.Equal(t, NewVec3(1, 2, -1), r.At(2))
}
