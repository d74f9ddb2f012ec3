package renderer

import (
	"sync"
	"sync/atomic"

	"github.com/tracelab/go-raytrace/pkg/core"
	"github.com/tracelab/go-raytrace/pkg/geometry"
	"github.com/tracelab/go-raytrace/pkg/scene"
)

// Session controls asynchronous rendering passes over a State so an
// interactive front end can start, cancel and restart without tearing the
// accumulation buffers. At most one pass is in flight per session.
//
// The stop flag is the only cross-goroutine signal besides the per-pixel
// cells: workers read it before each unit of pixel work, the controller
// writes it under Cancel.
type Session struct {
	stop atomic.Bool
	done atomic.Bool
	wg   sync.WaitGroup
}

// NewSession creates an idle session
func NewSession() *Session {
	return &Session{}
}

// Start launches one full-frame pass on a background worker, cancelling any
// pass still in flight first. No-op once the state has reached the
// configured sample target. An unrecognized shader is reported immediately.
//
// The pass renders into scratch buffers that are merged into the state only
// on completion: a cancelled pass leaves the state exactly as it was, so the
// accumulators never disagree with the pass counter.
func (c *Session) Start(st *State, s *scene.Scene, bvh *geometry.BVH, params Params) error {
	if st.Samples >= params.Samples {
		return nil
	}

	shader, err := GetShader(params)
	if err != nil {
		return err
	}

	// Restarting implicitly cancels the previous pass
	c.Cancel()
	c.stop.Store(false)
	c.done.Store(false)

	scratch := make([]core.Vec4, len(st.Accum))
	hits := make([]int, len(st.Hits))

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		if !st.renderInto(scratch, hits, s, bvh, shader, params, &c.stop) {
			return // cancelled; discard the incomplete pass
		}

		for idx := range st.Accum {
			st.Accum[idx] = st.Accum[idx].Add(scratch[idx])
			st.Hits[idx] += hits[idx]
		}
		st.Samples++

		c.done.Store(true)
	}()

	return nil
}

// Cancel requests the in-flight pass to stop and blocks until its worker
// exits. Cancellation is cooperative: workers finish the pixel they have
// begun, so latency is bounded but non-zero. Safe to call when idle.
func (c *Session) Cancel() {
	c.stop.Store(true)
	c.wg.Wait()
}

// Done reports whether the most recently started pass completed without
// being cancelled. A front end polls this to know when to read out the image
// and start the next pass.
func (c *Session) Done() bool {
	return c.done.Load()
}
