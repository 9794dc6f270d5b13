package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeList_NearestHitRegardlessOfOrder(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))
	nearSphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, near)
	farSphere := NewSphere(core.NewVec3(0, 0, -6), 0.5, far)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	clip := core.NewInterval(0.001, math.Inf(1))

	orders := map[string]*ShapeList{
		"near first": NewShapeList(nearSphere, farSphere),
		"far first":  NewShapeList(farSphere, nearSphere),
	}

	for name, list := range orders {
		t.Run(name, func(t *testing.T) {
			hit, isHit := list.Hit(ray, clip)
			require.True(t, isHit)
			assert.InDelta(t, 1.5, hit.T, 1e-9)
			assert.Same(t, near, hit.Material)
		})
	}
}

func TestShapeList_EmptyAndMiss(t *testing.T) {
	list := NewShapeList()
	_, isHit := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), core.UniverseInterval)
	assert.False(t, isHit)

	list.Add(NewSphere(core.NewVec3(5, 5, 5), 1, nil))
	assert.Equal(t, 1, list.Len())
	_, isHit = list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), core.UniverseInterval)
	assert.False(t, isHit)
}
