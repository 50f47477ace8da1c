package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewThreeSpheresScene creates a row of three spheres resting on a large
// ground sphere. The left sphere is a hollow glass shell.
func NewThreeSpheresScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.50)
	bubble := material.NewDielectric(1.00 / 1.50)
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, ground),
		geometry.NewSphere(core.NewVec3(0.0, 0.0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1.0, 0.0, -1.0), 0.4, bubble),
		geometry.NewSphere(core.NewVec3(1.0, 0.0, -1.0), 0.5, metal),
	)

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			Width:           400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFov:            20,
			LookFrom:        core.NewVec3(-2, 2, 1),
			LookAt:          core.NewVec3(0, 0, -1),
			Up:              core.NewVec3(0, 1, 0),
			DefocusAngle:    10.0,
			FocusDistance:   3.4,
		},
	}
}

// NewSingleSphereScene creates one diffuse unit sphere at the origin
func NewSingleSphereScene() *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	config := renderer.DefaultCameraConfig()
	config.Width = 200
	config.SamplesPerPixel = 50
	config.MaxDepth = 50
	config.LookFrom = core.NewVec3(0, 0, 3)
	config.FocusDistance = 3

	return &Scene{World: world, CameraConfig: config}
}
