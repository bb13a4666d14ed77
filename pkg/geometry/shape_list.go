package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ShapeList is an ordered aggregate of shapes that is itself a shape.
// Lists may be nested.
type ShapeList struct {
	shapes []core.Shape
}

// NewShapeList creates a list holding the given shapes
func NewShapeList(shapes ...core.Shape) *ShapeList {
	return &ShapeList{shapes: append([]core.Shape(nil), shapes...)}
}

// Add appends a shape to the list
func (l *ShapeList) Add(shape core.Shape) {
	l.shapes = append(l.shapes, shape)
}

// Len returns the number of direct members
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Shapes returns the direct members in insertion order
func (l *ShapeList) Shapes() []core.Shape {
	return l.shapes
}

// Hit returns the nearest hit among all members. The upper bound of the
// search interval shrinks to the closest t found so far, so overlapping
// shapes resolve to whichever is nearest along the ray regardless of order.
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
