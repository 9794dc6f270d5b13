package geometry

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// ShapeList is an insertion-ordered set of shapes searched linearly.
// It is populated before rendering and read-only afterwards.
type ShapeList struct {
	shapes []Shape
}

// NewShapeList creates a shape list holding the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{shapes: append([]Shape(nil), shapes...)}
}

// Add appends a shape
func (l *ShapeList) Add(shape Shape) {
	l.shapes = append(l.shapes, shape)
}

// Len returns the number of shapes
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Shapes returns the shapes in insertion order
func (l *ShapeList) Shapes() []Shape {
	return l.shapes
}

// Hit returns the globally nearest hit by shrinking the upper bound to the closest t found so far
func (l *ShapeList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, rayT.WithMax(closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
