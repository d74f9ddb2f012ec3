package main

import (
	"os"

	"github.com/tracelab/go-raytrace/cmd"
	"github.com/tracelab/go-raytrace/pkg/log"
	"github.com/tracelab/go-raytrace/pkg/renderer"
	"github.com/urfave/cli"
)

var logger = log.New("main")

func main() {
	defaults := renderer.DefaultParams()

	app := cli.NewApp()
	app.Name = "go-raytrace"
	app.Usage = "render scenes with progressive path tracing"
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
			Name:      "render",
			Usage:     "render a built-in scene to a PNG file",
			ArgsUsage: "scene_name",
			Action:    cmd.RenderScene,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "resolution, r",
					Value: defaults.Resolution,
					Usage: "image resolution along the long edge",
				},
				cli.StringFlag{
					Name:  "shader",
					Value: defaults.Shader.String(),
					Usage: "shading algorithm (raytrace, matte, eyelight, normal, texcoord, color)",
				},
				cli.IntFlag{
					Name:  "samples, s",
					Value: defaults.Samples,
					Usage: "target samples per pixel",
				},
				cli.IntFlag{
					Name:  "bounces, b",
					Value: defaults.Bounces,
					Usage: "maximum bounce depth",
				},
				cli.IntFlag{
					Name:  "camera",
					Value: defaults.Camera,
					Usage: "camera index",
				},
				cli.BoolFlag{
					Name:  "noparallel",
					Usage: "disable worker parallelism",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "out.png",
					Usage: "output image filename",
				},
			},
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
