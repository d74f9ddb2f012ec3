package renderer

import (
	"fmt"

	"github.com/tracelab/go-raytrace/pkg/core"
	"github.com/tracelab/go-raytrace/pkg/geometry"
	"github.com/tracelab/go-raytrace/pkg/scene"
)

// Preview fills a full-resolution image with a fast low-resolution estimate
// for interactive feedback: a temporary single-sample state at
// resolution/ratio is rendered synchronously and upsampled nearest-neighbour.
// The real accumulation state is not touched. A ratio that leaves no preview
// pixels is a configuration error.
func Preview(img *core.Image, st *State, s *scene.Scene, bvh *geometry.BVH, params Params) error {
	if params.PreviewRatio < 1 {
		return fmt.Errorf("preview ratio %d must be at least 1", params.PreviewRatio)
	}

	previewParams := params
	previewParams.Resolution /= params.PreviewRatio
	previewParams.Samples = 1

	previewState := NewState(s, previewParams)
	if previewState.Width < 1 || previewState.Height < 1 {
		return fmt.Errorf("preview ratio %d leaves no pixels at resolution %d",
			params.PreviewRatio, params.Resolution)
	}
	if err := previewState.RenderSamples(s, bvh, previewParams); err != nil {
		return err
	}
	preview := previewState.GetImage()

	for j := 0; j < img.Height; j++ {
		pj := min(j/params.PreviewRatio, preview.Height-1)
		for i := 0; i < img.Width; i++ {
			pi := min(i/params.PreviewRatio, preview.Width-1)
			img.Set(i, j, preview.At(pi, pj))
		}
	}
	return nil
}
