package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// HittableList is an ordered collection of hittables tested linearly.
// It is itself a Hittable, so lists can nest.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes every object
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest intersection among all objects. The search window
// shrinks to each accepted hit, so only strictly closer hits replace it.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	var closestHit material.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, rayT.WithMax(closestSoFar)); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
