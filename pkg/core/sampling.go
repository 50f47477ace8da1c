package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler whose sequence is fixed by seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomRange returns a random float64 in [min, max)
func RandomRange(sampler Sampler, min, max float64) float64 {
	return min + (max-min)*sampler.Get1D()
}

// RandomVec3 returns a vector uniformly distributed in [0,1)^3
func RandomVec3(sampler Sampler) Vec3 {
	return sampler.Get3D()
}

// RandomVec3Range returns a vector uniformly distributed in [min,max)^3
func RandomVec3Range(sampler Sampler, min, max float64) Vec3 {
	s := sampler.Get3D()
	span := max - min
	return NewVec3(min+span*s.X, min+span*s.Y, min+span*s.Z)
}

// RandomInUnitSphere rejection-samples a point strictly inside the unit sphere.
// Points too close to the origin are rejected as well so the result can
// always be normalized.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := RandomVec3Range(sampler, -1, 1)
		lengthSquared := p.LengthSquared()
		// Accept if inside unit sphere
		if 1e-160 < lengthSquared && lengthSquared < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// RandomOnHemisphere returns a unit vector in the hemisphere around normal
func RandomOnHemisphere(normal Vec3, sampler Sampler) Vec3 {
	onUnitSphere := RandomUnitVector(sampler)
	if onUnitSphere.Dot(normal) > 0.0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// SequenceSampler replays predetermined values for each dimension.
// It panics when a sequence is exhausted.
type SequenceSampler struct {
	values1D []float64
	values2D []Vec2
	values3D []Vec3
	index1D  int
	index2D  int
	index3D  int
}

// NewSequenceSampler creates a sampler with predetermined values for each dimension
func NewSequenceSampler(values1D []float64, values2D []Vec2, values3D []Vec3) *SequenceSampler {
	return &SequenceSampler{
		values1D: values1D,
		values2D: values2D,
		values3D: values3D,
	}
}

// Get1D returns the next predetermined 1D value
func (s *SequenceSampler) Get1D() float64 {
	if s.index1D >= len(s.values1D) {
		panic("SequenceSampler ran out of 1D values")
	}
	val := s.values1D[s.index1D]
	s.index1D++
	return val
}

// Get2D returns the next predetermined 2D value
func (s *SequenceSampler) Get2D() Vec2 {
	if s.index2D >= len(s.values2D) {
		panic("SequenceSampler ran out of 2D values")
	}
	val := s.values2D[s.index2D]
	s.index2D++
	return val
}

// Get3D returns the next predetermined 3D value
func (s *SequenceSampler) Get3D() Vec3 {
	if s.index3D >= len(s.values3D) {
		panic("SequenceSampler ran out of 3D values")
	}
	val := s.values3D[s.index3D]
	s.index3D++
	return val
}

// Reset rewinds all value sequences
func (s *SequenceSampler) Reset() {
	s.index1D = 0
	s.index2D = 0
	s.index3D = 0
}
