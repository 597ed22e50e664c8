package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// HittableList owns an ordered, flat collection of spheres
type HittableList struct {
	spheres []Sphere
}

// NewHittableList creates a list holding the given spheres
func NewHittableList(spheres ...Sphere) *HittableList {
	l := &HittableList{}
	for _, s := range spheres {
		l.Add(s)
	}
	return l
}

// Add appends a sphere; the list owns it from now on
func (l *HittableList) Add(s Sphere) {
	l.spheres = append(l.spheres, s)
}

// Clear removes every sphere
func (l *HittableList) Clear() {
	l.spheres = nil
}

// Len returns the number of spheres
func (l *HittableList) Len() int {
	return len(l.spheres)
}

// Hit returns the closest intersection across all spheres inside (tMin, tMax).
// Ties keep the sphere added first.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closestHit material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for i := range l.spheres {
		if hit, isHit := l.spheres[i].Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
