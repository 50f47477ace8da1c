package renderer

import (
	"fmt"
	"math"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/log"
)

// CameraConfig holds the user-facing camera parameters. None of the values
// are validated: degenerate settings produce degenerate geometry.
type CameraConfig struct {
	AspectRatio     float64     // Ratio of image width over height
	Width           int         // Rendered image width in pixels
	SamplesPerPixel int         // Number of random samples for each pixel
	MaxDepth        int         // Maximum number of ray bounces into the scene
	VFov            float64     // Vertical field of view in degrees
	LookFrom        core.Point3 // Point the camera is looking from
	LookAt          core.Point3 // Point the camera is looking at
	Up              core.Vec3   // Camera-relative up direction
	DefocusAngle    float64     // Variation angle of rays through each pixel, in degrees
	FocusDistance   float64     // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns the default camera parameters
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		Width:           100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, -1),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// Camera generates rays for rendering and drives the render loop
type Camera struct {
	Config CameraConfig

	imageHeight  int
	center       core.Point3 // Camera center
	pixel00      core.Point3 // Location of pixel (0, 0)
	pixelDeltaU  core.Vec3   // Offset to the pixel to the right
	pixelDeltaV  core.Vec3   // Offset to the pixel below
	u, v, w      core.Vec3   // Camera frame basis vectors
	defocusDiskU core.Vec3   // Defocus disk horizontal radius
	defocusDiskV core.Vec3   // Defocus disk vertical radius

	logger log.Logger
}

// NewCamera creates a camera and derives its geometry from config
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{Config: config}
	c.Initialize()
	return c
}

// SetLogger attaches a logger for scanline progress. A nil logger disables it.
func (c *Camera) SetLogger(logger log.Logger) {
	c.logger = logger
}

// Initialize derives the view geometry from Config. Render calls it on
// entry; call it directly after changing Config before using GetRay.
func (c *Camera) Initialize() {
	cfg := c.Config

	c.imageHeight = int(float64(cfg.Width) / cfg.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	c.center = cfg.LookFrom

	// Viewport dimensions use the real image ratio, not the requested one
	theta := degreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDistance
	viewportWidth := viewportHeight * (float64(cfg.Width) / float64(c.imageHeight))

	c.w = cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	c.u = cfg.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(cfg.Width))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	upperLeft := c.center.
		Subtract(c.w.Multiply(cfg.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00 = upperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDistance * math.Tan(degreesToRadians(cfg.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.Config.Width
}

// Height returns the image height in pixels, derived from width and aspect ratio
func (c *Camera) Height() int {
	return c.imageHeight
}

// Basis returns the camera frame: u points right, v up, w backwards
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// PixelCenter returns the world position of the center of pixel (i, j)
func (c *Camera) PixelCenter(i, j int) core.Point3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay returns a randomly jittered ray through pixel (i, j), starting at
// the camera center or, with defocus enabled, on the defocus disk.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	pixelSample := c.PixelCenter(i, j).
		Add(c.pixelDeltaU.Multiply(jitter.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(jitter.Y - 0.5))

	origin := c.center
	if c.Config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

// Render traces the world row by row, top to bottom and left to right,
// and writes one quantized color per pixel to sink.
func (c *Camera) Render(world geometry.Hittable, sampler core.Sampler, sink PixelSink) (RenderStats, error) {
	switch {
	case world == nil:
		return RenderStats{}, ErrNilWorld
	case sampler == nil:
		return RenderStats{}, ErrNilSampler
	case sink == nil:
		return RenderStats{}, ErrNilSink
	}

	c.Initialize()

	width, height := c.Width(), c.Height()
	samplesPerPixel := c.Config.SamplesPerPixel
	raytracer := NewRaytracer(world, sampler)
	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        c.Config.MaxDepth,
	}
	startTime := time.Now()

	if err := sink.Begin(width, height); err != nil {
		return stats, fmt.Errorf("renderer: writing image header: %w", err)
	}

	for j := 0; j < height; j++ {
		if c.logger != nil {
			c.logger.Infof("scanlines remaining: %d", height-j)
		}
		for i := 0; i < width; i++ {
			var ps PixelStats
			for s := 0; s < samplesPerPixel; s++ {
				ray := c.GetRay(i, j, sampler)
				ps.AddSample(raytracer.RayColor(ray, c.Config.MaxDepth))
			}
			stats.PrimaryRays += ps.SampleCount

			if err := sink.WritePixel(ToRGBA(ps.GetColor())); err != nil {
				stats.merge(raytracer.Counters(), time.Since(startTime))
				return stats, fmt.Errorf("renderer: writing pixel (%d, %d): %w", i, j, err)
			}
		}
	}

	if err := sink.End(); err != nil {
		stats.merge(raytracer.Counters(), time.Since(startTime))
		return stats, fmt.Errorf("renderer: finishing image: %w", err)
	}

	stats.merge(raytracer.Counters(), time.Since(startTime))
	if c.logger != nil {
		c.logger.Infof("done: %dx%d in %v", width, height, stats.Duration)
	}
	return stats, nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
