package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// Hittable is anything a ray can intersect. Hit reports the intersection
// whose t lies strictly inside rayT.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool)
}
