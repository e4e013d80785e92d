package reel

import "testing"

// --- Parsing ---

func TestLoadScriptRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"invalid json", `{steps:`},
		{"no steps", `{"steps":[]}`},
		{"missing steps", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.json)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestLoadScriptParsesSteps(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"stop","clip":"intro"},
		{"action":"wait","frames":3},
		{"action":"gotoAndPlay","clip":"intro","frame":2}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(r.steps) != 3 {
		t.Errorf("steps = %d, want 3", len(r.steps))
	}
	if r.Done() {
		t.Error("fresh runner should not be done")
	}
}

// --- Execution ---

func TestScriptRunnerOneStepPerTick(t *testing.T) {
	stage := NewStage()
	clip := stage.NewClip("intro", nil)

	r, err := LoadScript([]byte(`{"steps":[
		{"action":"stop","clip":"intro"},
		{"action":"play","clip":"intro"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	stage.SetScriptRunner(r)

	tickOK(t, stage)
	if clip.IsPlaying() {
		t.Error("tick 1: stop step should apply before construction")
	}
	if clip.CurrentFrame() != 0 {
		t.Errorf("tick 1: frame = %d, want 0", clip.CurrentFrame())
	}

	tickOK(t, stage)
	if !clip.IsPlaying() {
		t.Error("tick 2: play step should resume the clip")
	}
	if clip.CurrentFrame() != 1 {
		t.Errorf("tick 2: frame = %d, want 1", clip.CurrentFrame())
	}
	if !r.Done() {
		t.Error("runner should be done after its last step")
	}
}

func TestScriptRunnerWait(t *testing.T) {
	stage := NewStage()
	clip := stage.NewClip("intro", nil)
	clip.Stop()

	r, err := LoadScript([]byte(`{"steps":[
		{"action":"wait","frames":2},
		{"action":"play","clip":"intro"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	stage.SetScriptRunner(r)

	tickOK(t, stage)
	tickOK(t, stage)
	if clip.IsPlaying() {
		t.Error("clip should still be stopped during the wait")
	}
	tickOK(t, stage)
	if !clip.IsPlaying() {
		t.Error("play step should run after the wait drains")
	}
}

func TestScriptRunnerNavigationAndDestroy(t *testing.T) {
	stage := NewStage()
	clip := stage.NewClip("intro", nil)
	clip.TotalFrames = 10
	clip.Stop()

	r, err := LoadScript([]byte(`{"steps":[
		{"action":"gotoAndStop","clip":"intro","frame":4},
		{"action":"nextFrame","clip":"intro"},
		{"action":"prevFrame","clip":"intro"},
		{"action":"destroy","clip":"intro"}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	stage.SetScriptRunner(r)

	tickOK(t, stage)
	if clip.CurrentFrame() != 4 {
		t.Errorf("after gotoAndStop: frame = %d, want 4", clip.CurrentFrame())
	}
	tickOK(t, stage)
	if clip.CurrentFrame() != 5 {
		t.Errorf("after nextFrame: frame = %d, want 5", clip.CurrentFrame())
	}
	tickOK(t, stage)
	if clip.CurrentFrame() != 4 {
		t.Errorf("after prevFrame: frame = %d, want 4", clip.CurrentFrame())
	}

	// Destroy is requested mid-tick, so the clip still gets both phases
	// before teardown.
	var log []string
	clip.OnFrameConstructed(recordFunc(&log, "construct"))
	clip.OnExitFrame(recordFunc(&log, "exit"))
	tickOK(t, stage)
	if len(log) != 2 {
		t.Errorf("destroy tick log = %v, want [construct exit]", log)
	}
	if !clip.IsDestroyed() {
		t.Error("clip should be destroyed after the destroy step's tick")
	}
	if !r.Done() {
		t.Error("runner should be done")
	}
}

func TestScriptRunnerSkipsMissingClip(t *testing.T) {
	stage := NewStage()

	r, err := LoadScript([]byte(`{"steps":[{"action":"play","clip":"ghost"}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	stage.SetScriptRunner(r)

	tickOK(t, stage) // must not panic
	if !r.Done() {
		t.Error("runner should finish even when the target clip is missing")
	}
}

func TestStageFind(t *testing.T) {
	stage := NewStage()
	a := stage.NewClip("a", nil)
	b := stage.NewClip("b", a)

	if stage.Find("b") != b {
		t.Error("Find should locate nested clips")
	}
	if stage.Find("root") != stage.Root() {
		t.Error("Find should include the root")
	}
	if stage.Find("ghost") != nil {
		t.Error("Find should return nil for unknown names")
	}

	b.Destroy()
	if stage.Find("b") != nil {
		t.Error("Find should not return destroyed clips")
	}
}
