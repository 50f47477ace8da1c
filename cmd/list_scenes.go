package cmd

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes with their default image settings.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Width", "Aspect", "Samples", "Description"})

	for _, name := range scene.Names() {
		s, err := scene.Lookup(name, core.NewSeededSampler(0))
		if err != nil {
			return err
		}
		cfg := s.CameraConfig
		table.Append([]string{
			name,
			fmt.Sprintf("%d", cfg.Width),
			fmt.Sprintf("%.3f", cfg.AspectRatio),
			fmt.Sprintf("%d", cfg.SamplesPerPixel),
			s.Description,
		})
	}

	table.Render()
	return nil
}
