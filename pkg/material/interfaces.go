package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter either returns the attenuation and the scattered ray, or
	// reports false when the incoming ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit surface normal, always facing against the ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether the ray hit the side the outward normal points to
	Material  Material    // Material of the hit object
}

// SetFaceNormal orients the normal against the ray and records whether the
// outward normal already faced the ray. Both fields must only be set here.
// outwardNormal is assumed to be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) <= 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
