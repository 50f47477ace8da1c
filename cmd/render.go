package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a scene to a PPM or PNG image.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	format := ctx.String("format")
	if format != "ppm" && format != "png" {
		return fmt.Errorf("unsupported output format %q (want ppm or png)", format)
	}

	sampler := core.NewSeededSampler(ctx.Int64("seed"))
	sc, err := scene.Lookup(ctx.String("scene"), sampler)
	if err != nil {
		return err
	}
	logger.Noticef("rendering scene %q (%d objects)", sc.Name, sc.World.Len())

	cfg, err := cameraConfig(ctx, sc.CameraConfig)
	if err != nil {
		return err
	}

	camera := renderer.NewCamera(cfg)
	camera.SetLogger(logger)
	logger.Noticef(
		"image %dx%d, %d spp, max depth %d, vfov %.1f, defocus %.2f, focus %.2f",
		camera.Width(), camera.Height(), cfg.SamplesPerPixel, cfg.MaxDepth,
		cfg.VFov, cfg.DefocusAngle, cfg.FocusDistance,
	)

	out, err := openOutput(ctx.String("output"))
	if err != nil {
		return err
	}
	defer out.Close()

	var stats renderer.RenderStats
	switch format {
	case "ppm":
		stats, err = camera.Render(sc.World, sampler, renderer.NewPPMWriter(out))
	case "png":
		sink := renderer.NewImageSink()
		stats, err = camera.Render(sc.World, sampler, sink)
		if err == nil {
			err = renderer.EncodePNG(out, sink.Image())
		}
	}
	if err != nil {
		logger.Errorf("render failed: %v", err)
		out.Discard()
		return err
	}

	if err = out.Close(); err != nil {
		return err
	}
	logger.Noticef("render completed in %v", stats.Duration)

	if ctx.Bool("stats") {
		displayRenderStats(stats)
	}
	return nil
}

// Start from the scene's camera and apply the flags that were set.
func cameraConfig(ctx *cli.Context, cfg renderer.CameraConfig) (renderer.CameraConfig, error) {
	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("aspect") {
		cfg.AspectRatio = ctx.Float64("aspect")
	}
	if ctx.IsSet("spp") {
		cfg.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		cfg.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("vfov") {
		cfg.VFov = ctx.Float64("vfov")
	}
	if ctx.IsSet("defocus") {
		cfg.DefocusAngle = ctx.Float64("defocus")
	}
	if ctx.IsSet("focus") {
		cfg.FocusDistance = ctx.Float64("focus")
	}

	switch {
	case cfg.Width <= 0:
		return cfg, errors.New("width must be positive")
	case cfg.AspectRatio <= 0:
		return cfg, errors.New("aspect ratio must be positive")
	case cfg.SamplesPerPixel <= 0:
		return cfg, errors.New("samples per pixel must be positive")
	case cfg.MaxDepth < 0:
		return cfg, errors.New("max depth must not be negative")
	case cfg.VFov <= 0 || cfg.VFov >= 180:
		return cfg, errors.New("vertical field of view must be between 0 and 180 degrees")
	case cfg.DefocusAngle < 0:
		return cfg, errors.New("defocus angle must not be negative")
	case cfg.FocusDistance <= 0:
		return cfg, errors.New("focus distance must be positive")
	}
	return cfg, nil
}

// renderOutput is the image destination: stdout or a file that is
// removed again if the render fails.
type renderOutput struct {
	io.Writer
	file   *os.File
	closed bool
}

// Open the render destination; "-" selects stdout.
func openOutput(path string) (*renderOutput, error) {
	if path == "-" {
		return &renderOutput{Writer: os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return &renderOutput{Writer: f, file: f}, nil
}

// Close closes the output file. Repeated calls are no-ops.
func (o *renderOutput) Close() error {
	if o.file == nil || o.closed {
		return nil
	}
	o.closed = true
	return o.file.Close()
}

// Discard closes and deletes a partially written output file
func (o *renderOutput) Discard() {
	if o.file == nil {
		return
	}
	_ = o.Close()
	if err := os.Remove(o.file.Name()); err != nil {
		logger.Warningf("removing partial output %s: %v", o.file.Name(), err)
	}
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Image", "Samples", "Primary rays", "Rays traced", "Escaped", "Absorbed", "Depth limit"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.PrimaryRays),
		fmt.Sprintf("%d", stats.TotalRays),
		fmt.Sprintf("%d", stats.EscapedRays),
		fmt.Sprintf("%d", stats.AbsorbedRays),
		fmt.Sprintf("%d", stats.DepthExhausted),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", stats.Duration.String()})

	table.Render()
	logger.Noticef("render statistics (%.0f rays/s)\n%s", stats.RaysPerSecond(), buf.String())
}
