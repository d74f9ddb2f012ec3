package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/tracelab/go-raytrace/pkg/core"
	"github.com/tracelab/go-raytrace/pkg/geometry"
	"github.com/tracelab/go-raytrace/pkg/renderer"
	"github.com/tracelab/go-raytrace/pkg/scene"
	"github.com/urfave/cli"
)

// RenderScene renders a built-in scene in batch mode: one blocking pass per
// sample until the target is reached, then a PNG write.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene name argument")
	}
	sceneName := ctx.Args().First()

	shader, err := renderer.ParseShaderType(ctx.String("shader"))
	if err != nil {
		return err
	}

	params := renderer.DefaultParams()
	params.Resolution = ctx.Int("resolution")
	params.Shader = shader
	params.Samples = ctx.Int("samples")
	params.Bounces = ctx.Int("bounces")
	params.Camera = ctx.Int("camera")
	params.NoParallel = ctx.Bool("noparallel")

	s, err := scene.ByName(sceneName)
	if err != nil {
		return err
	}
	if params.Camera < 0 || params.Camera >= len(s.Cameras) {
		return fmt.Errorf("scene %q has no camera %d", sceneName, params.Camera)
	}

	logger.Noticef("rendering %q with shader %q", sceneName, params.Shader)

	buildStart := time.Now()
	bvh := geometry.BuildBVH(s)
	logger.Infof("build bvh: %v", time.Since(buildStart))

	state := renderer.NewState(s, params)

	renderStart := time.Now()
	for state.Samples < params.Samples {
		sampleStart := time.Now()
		if err := state.RenderSamples(s, bvh, params); err != nil {
			return err
		}
		logger.Infof("render sample %d/%d: %v", state.Samples, params.Samples, time.Since(sampleStart))
	}
	renderTime := time.Since(renderStart)
	logger.Noticef("render image: %v", renderTime)

	img := state.GetImage()
	outName := ctx.String("out")
	if err := savePNG(outName, img); err != nil {
		return err
	}
	logger.Noticef("saved %s", outName)

	displayRenderStats(state.Stats(), renderTime)
	return nil
}

// displayRenderStats prints an accumulation summary table
func displayRenderStats(stats renderer.RenderStats, renderTime time.Duration) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Resolution", "Pixels", "Samples", "Samples/pixel", "Avg luminance", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.Samples),
		fmt.Sprintf("%.1f", stats.Coverage),
		fmt.Sprintf("%.4f", stats.AvgLuminance),
		fmt.Sprintf("%s", renderTime),
	})
	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}

// savePNG converts a linear radiance image to 8-bit sRGB and writes it
func savePNG(filename string, img *core.Image) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			pixel := img.At(x, y)
			if img.Linear {
				pixel = core.LinearToSRGBVec(pixel)
			}
			rgb := pixel.XYZ().Clamp(0, 1)
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * rgb.X),
				G: uint8(255 * rgb.Y),
				B: uint8(255 * rgb.Z),
				A: uint8(255 * max(0, min(1, pixel.W))),
			})
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, out)
}
