package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Color // Metal color
	Fuzzness float64    // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Color, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Calculate perfect reflection direction
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzzness))
	}

	scattered := core.NewRay(hit.Point, reflected)

	// Perturbed below the surface: absorbed
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
