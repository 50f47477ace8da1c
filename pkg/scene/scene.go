package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by Lookup for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// Scene pairs a world with the camera it is meant to be viewed through
type Scene struct {
	Name         string
	Description  string
	World        *geometry.HittableList
	CameraConfig renderer.CameraConfig
}

type builder struct {
	description string
	build       func(sampler core.Sampler) *Scene
}

var registry = map[string]builder{
	"final": {
		description: "Cover image: a field of random small spheres around three large ones",
		build:       NewFinalScene,
	},
	"three-spheres": {
		description: "Diffuse, hollow glass and fuzzy metal spheres on a large ground sphere",
		build:       func(core.Sampler) *Scene { return NewThreeSpheresScene() },
	},
	"single": {
		description: "One unit sphere at the origin viewed along -Z",
		build:       func(core.Sampler) *Scene { return NewSingleSphereScene() },
	},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Description returns the one-line description of a registered scene
func Description(name string) string {
	return registry[name].description
}

// Lookup builds the named scene. Scenes with random placement draw from
// sampler, so the same seed always yields the same world.
func Lookup(name string, sampler core.Sampler) (*Scene, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s := b.build(sampler)
	s.Name = name
	s.Description = b.description
	return s, nil
}
