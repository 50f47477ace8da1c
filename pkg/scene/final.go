package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Grid extent of the small spheres, in each direction from the origin
const gridExtent = 11

// NewFinalScene creates the cover scene: a ground sphere, a grid of small
// randomly placed spheres and three large feature spheres.
func NewFinalScene(sampler core.Sampler) *Scene {
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			// Keep the area around the metal feature sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}
			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			Width:           1200,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            20,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			Up:              core.NewVec3(0, 1, 0),
			DefocusAngle:    0.6,
			FocusDistance:   10.0,
		},
	}
}
