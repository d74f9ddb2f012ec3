package renderer

import (
	"testing"
	"time"

	"github.com/tracelab/go-raytrace/pkg/core"
	"github.com/tracelab/go-raytrace/pkg/geometry"
)

// waitDone polls a session until its pass completes or the deadline expires
func waitDone(t *testing.T, session *Session) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for !session.Done() {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for the pass to complete")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSession_CompletedPassMatchesBlocking(t *testing.T) {
	s := emissiveQuadScene(core.NewVec3(1, 2, 3))
	bvh := geometry.BuildBVH(s)
	params := testParams()

	async := NewState(s, params)
	session := NewSession()
	if err := session.Start(async, s, bvh, params); err != nil {
		t.Fatal(err)
	}
	waitDone(t, session)

	blocking := NewState(s, params)
	if err := blocking.RenderSamples(s, bvh, params); err != nil {
		t.Fatal(err)
	}

	if async.Samples != blocking.Samples {
		t.Fatalf("Pass counters differ: %d vs %d", async.Samples, blocking.Samples)
	}
	for idx := range async.Accum {
		if async.Accum[idx] != blocking.Accum[idx] {
			t.Fatalf("Pixel %d differs between async and blocking pass: %v vs %v",
				idx, async.Accum[idx], blocking.Accum[idx])
		}
		if async.Hits[idx] != blocking.Hits[idx] {
			t.Fatalf("Pixel %d hit counts differ: %d vs %d", idx, async.Hits[idx], blocking.Hits[idx])
		}
	}
}

func TestSession_CancelLeavesStateIntact(t *testing.T) {
	s := emissiveQuadScene(core.NewVec3(1, 1, 1))
	bvh := geometry.BuildBVH(s)

	// Enough work that cancellation usually lands mid-pass
	params := testParams()
	params.Resolution = 128
	params.Bounces = 8
	params.NoParallel = false

	st := NewState(s, params)
	session := NewSession()
	if err := session.Start(st, s, bvh, params); err != nil {
		t.Fatal(err)
	}
	session.Cancel()

	if session.Done() {
		// The pass won the race; it must have merged exactly one full pass
		if st.Samples != 1 {
			t.Fatalf("Completed pass left counter at %d", st.Samples)
		}
		return
	}

	// A cancelled pass must leave no trace
	if st.Samples != 0 {
		t.Fatalf("Cancelled pass advanced the counter to %d", st.Samples)
	}
	for idx := range st.Accum {
		if st.Accum[idx] != (core.Vec4{}) {
			t.Fatalf("Cancelled pass wrote pixel %d: %v", idx, st.Accum[idx])
		}
		if st.Hits[idx] != 0 {
			t.Fatalf("Cancelled pass counted hits for pixel %d", idx)
		}
	}
}

func TestSession_RestartAfterCancel(t *testing.T) {
	s := emissiveQuadScene(core.NewVec3(1, 1, 1))
	bvh := geometry.BuildBVH(s)
	params := testParams()
	params.Samples = 2

	st := NewState(s, params)
	session := NewSession()

	// Interrupt a pass, then drive the state to its target; interrupted work
	// must not corrupt what completed passes accumulate
	if err := session.Start(st, s, bvh, params); err != nil {
		t.Fatal(err)
	}
	session.Cancel()

	for st.Samples < params.Samples {
		before := st.Samples
		if err := session.Start(st, s, bvh, params); err != nil {
			t.Fatal(err)
		}
		waitDone(t, session)
		if st.Samples != before+1 {
			t.Fatalf("Expected one pass per start, counter went %d to %d", before, st.Samples)
		}
	}

	for idx := range st.Hits {
		if st.Hits[idx] != params.Samples {
			t.Fatalf("Pixel %d: expected %d hits at target, got %d", idx, params.Samples, st.Hits[idx])
		}
	}
}

func TestSession_StartAtTargetIsNoop(t *testing.T) {
	s := emissiveQuadScene(core.NewVec3(1, 1, 1))
	bvh := geometry.BuildBVH(s)
	params := testParams()
	params.Samples = 1

	st := NewState(s, params)
	if err := st.RenderSamples(s, bvh, params); err != nil {
		t.Fatal(err)
	}

	session := NewSession()
	if err := session.Start(st, s, bvh, params); err != nil {
		t.Fatal(err)
	}
	session.Cancel()

	if st.Samples != 1 {
		t.Errorf("Expected counter to stay at target, got %d", st.Samples)
	}
}

func TestSession_UnknownShader(t *testing.T) {
	s := emissiveQuadScene(core.NewVec3(1, 1, 1))
	bvh := geometry.BuildBVH(s)
	params := testParams()
	params.Shader = ShaderType(99)

	st := NewState(s, params)
	session := NewSession()
	if err := session.Start(st, s, bvh, params); err == nil {
		t.Error("Expected error for unrecognized shader")
	}
}
