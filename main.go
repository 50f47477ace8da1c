package main

import (
	"fmt"
	"os"

	"github.com/df07/go-weekend-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	// Free -v for the verbosity flag
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "weekend-raytracer"
	app.Usage = "render sphere scenes with recursive path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Trace a built-in scene and write the image as plain PPM (P3) or PNG.

Camera flags override the scene's own camera settings only when given.
Renders with the same seed are byte-identical.`,
			SkipArgReorder: true,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "final",
					Usage: "scene to render (see list-scenes)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Usage: "image aspect ratio (width / height)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum number of ray bounces",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "vertical field of view in degrees",
				},
				cli.Float64Flag{
					Name:  "defocus",
					Usage: "defocus angle in degrees (0 disables depth of field)",
				},
				cli.Float64Flag{
					Name:  "focus",
					Usage: "distance to the plane of perfect focus",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed for scene layout and sampling",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: "ppm",
					Usage: "output format: ppm or png",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "-",
					Usage: "output file, - for stdout",
				},
				cli.BoolFlag{
					Name:  "stats",
					Usage: "log a table of render statistics",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
