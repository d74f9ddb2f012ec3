package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/tracelab/go-raytrace/pkg/core"
	"github.com/tracelab/go-raytrace/pkg/geometry"
	"github.com/tracelab/go-raytrace/pkg/scene"
)

// State owns the progressive accumulation buffers for an image of fixed
// resolution: per-pixel unnormalized radiance sums, hit counts, one random
// stream per pixel, and the pass counter. Buffers are sized once at
// construction; a configuration change requires a new State.
//
// Each pixel's accumulator, hit counter and random stream are written by at
// most one worker during a pass, so no locking is needed.
type State struct {
	Width, Height int
	Samples       int
	Accum         []core.Vec4
	Hits          []int
	Rngs          []*rand.Rand
}

// NewState sizes the buffers from the selected camera's aspect ratio and the
// configured resolution, zeroes the accumulators and assigns the per-pixel
// random streams. The streams are never reseeded for the State's lifetime.
func NewState(s *scene.Scene, params Params) *State {
	camera := &s.Cameras[params.Camera]

	var width, height int
	if camera.Aspect >= 1 {
		width = params.Resolution
		height = int(math.Round(float64(params.Resolution) / camera.Aspect))
	} else {
		height = params.Resolution
		width = int(math.Round(float64(params.Resolution) * camera.Aspect))
	}

	return &State{
		Width:   width,
		Height:  height,
		Samples: 0,
		Accum:   make([]core.Vec4, width*height),
		Hits:    make([]int, width*height),
		Rngs:    core.MakePixelRNGs(width * height),
	}
}

// samplePixelInto draws one jittered sensor sample for pixel (i, j), shades
// it, sanitizes non-finite radiance to zero, and adds it into accum/hits
func (st *State) samplePixelInto(accum []core.Vec4, hits []int, s *scene.Scene, bvh *geometry.BVH, shader shaderFunc, i, j int, params Params) {
	idx := j*st.Width + i
	rng := st.Rngs[idx]

	uv := core.NewVec2(
		(float64(i)+rng.Float64())/float64(st.Width),
		(float64(j)+rng.Float64())/float64(st.Height),
	)
	ray := scene.EvalCamera(&s.Cameras[params.Camera], uv)

	radiance := shader(s, bvh, ray, 0, rng, params)
	if !radiance.IsFinite() {
		radiance = core.Vec4{}
	}

	accum[idx] = accum[idx].Add(radiance)
	hits[idx]++
}

// renderInto samples every pixel once, adding into accum/hits. Work fans out
// across workers by row; rows partition the pixels, so each accumulator cell
// and random stream stays owned by exactly one worker. A worker checks stop
// before each pixel and bails cooperatively. Reports whether the full frame
// was covered.
func (st *State) renderInto(accum []core.Vec4, hits []int, s *scene.Scene, bvh *geometry.BVH, shader shaderFunc, params Params, stop *atomic.Bool) bool {
	numWorkers := runtime.NumCPU()
	if params.NoParallel {
		numWorkers = 1
	}

	rows := make(chan int, st.Height)
	for j := 0; j < st.Height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				for i := 0; i < st.Width; i++ {
					if stop != nil && stop.Load() {
						return
					}
					st.samplePixelInto(accum, hits, s, bvh, shader, i, j, params)
				}
			}
		}()
	}
	wg.Wait()

	return stop == nil || !stop.Load()
}

// RenderSamples advances the accumulation by exactly one full-frame pass,
// blocking until it completes. The pass counter is incremented only after
// every pixel has been sampled. No-op once the configured sample target is
// reached.
func (st *State) RenderSamples(s *scene.Scene, bvh *geometry.BVH, params Params) error {
	if st.Samples >= params.Samples {
		return nil
	}

	shader, err := GetShader(params)
	if err != nil {
		return err
	}

	st.renderInto(st.Accum, st.Hits, s, bvh, shader, params, nil)
	st.Samples++
	return nil
}

// GetImage reads out the current radiance estimate as a linear image.
// The caller must ensure at least one pass has completed; with a zero pass
// counter the average is undefined.
func (st *State) GetImage() *core.Image {
	img := core.NewImage(st.Width, st.Height, true)
	st.copyPixels(img)
	return img
}

// CopyImage writes each pixel's accumulator divided by the pass counter into
// an existing image. The target must match the state's size and be linear;
// a mismatch is a configuration error.
func (st *State) CopyImage(img *core.Image) error {
	if img.Width != st.Width || img.Height != st.Height {
		return fmt.Errorf("image size %dx%d does not match state %dx%d",
			img.Width, img.Height, st.Width, st.Height)
	}
	if !img.Linear {
		return fmt.Errorf("expected linear image")
	}

	st.copyPixels(img)
	return nil
}

// copyPixels averages the accumulators into a size-matched linear image
func (st *State) copyPixels(img *core.Image) {
	scale := 1.0 / float64(st.Samples)
	for idx := range st.Accum {
		img.Pixels[idx] = st.Accum[idx].Multiply(scale)
	}
}
