package renderer

import (
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	SamplesPerPixel int           // Samples taken per pixel
	MaxDepth        int           // Bounce limit used
	PrimaryRays     int           // Camera rays generated
	TotalRays       int           // Rays traced, including scattered rays
	EscapedRays     int           // Rays that returned the background
	AbsorbedRays    int           // Rays absorbed by a material
	DepthExhausted  int           // Rays terminated by the bounce limit
	Duration        time.Duration // Wall time of the render
}

// TotalPixels returns the number of pixels in the image
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// RaysPerSecond returns the traced ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalRays) / s.Duration.Seconds()
}

func (s *RenderStats) merge(counters RayCounters, duration time.Duration) {
	s.TotalRays = counters.Traced
	s.EscapedRays = counters.Escaped
	s.AbsorbedRays = counters.Absorbed
	s.DepthExhausted = counters.DepthExhausted
	s.Duration = duration
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB accumulator for final result
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Color{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
