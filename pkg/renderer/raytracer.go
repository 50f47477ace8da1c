package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// hitWindow starts just above zero so a scattered ray does not re-hit the
// surface it left because of floating-point error.
var hitWindow = core.NewInterval(0.001, math.Inf(1))

// intensity is the range color channels are clamped to before quantization
var intensity = core.NewInterval(0.000, 0.999)

var (
	backgroundBottom = core.NewVec3(1.0, 1.0, 1.0)
	backgroundTop    = core.NewVec3(0.5, 0.7, 1.0)
)

// RayCounters tallies how traced rays ended
type RayCounters struct {
	Traced         int // Every ray passed to RayColor with depth left
	Escaped        int // Rays that hit nothing and returned the background
	Absorbed       int // Rays a material absorbed
	DepthExhausted int // Rays cut off by the bounce limit
}

// Raytracer resolves the color carried back along a ray
type Raytracer struct {
	world    geometry.Hittable
	sampler  core.Sampler
	counters RayCounters
}

// NewRaytracer creates a raytracer for a read-only world
func NewRaytracer(world geometry.Hittable, sampler core.Sampler) *Raytracer {
	return &Raytracer{
		world:   world,
		sampler: sampler,
	}
}

// Counters returns the ray tallies accumulated so far
func (rt *Raytracer) Counters() RayCounters {
	return rt.counters
}

// RayColor returns the color for a given ray, following at most depth bounces
func (rt *Raytracer) RayColor(r core.Ray, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		rt.counters.DepthExhausted++
		return core.Color{}
	}
	rt.counters.Traced++

	hit, isHit := rt.world.Hit(r, hitWindow)
	if !isHit {
		rt.counters.Escaped++
		return BackgroundColor(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, hit, rt.sampler)
	if !didScatter {
		rt.counters.Absorbed++
		return core.Color{}
	}

	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1))
}

// BackgroundColor returns the sky gradient seen along a ray that hits nothing
func BackgroundColor(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return backgroundBottom.Lerp(backgroundTop, a)
}

// ToRGBA converts a linear color to 8-bit display color: gamma 2 correction,
// clamping to [0, 0.999] and truncation.
func ToRGBA(c core.Color) color.RGBA {
	c = c.GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255.999 * intensity.Clamp(c.X)),
		G: uint8(255.999 * intensity.Clamp(c.Y)),
		B: uint8(255.999 * intensity.Clamp(c.Z)),
		A: 255,
	}
}
