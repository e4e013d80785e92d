package reel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenFloatReachesTarget(t *testing.T) {
	stage := NewStage()
	clip := stage.NewClip("clip", nil)

	x := 10.0
	g := TweenFloat(clip, &x, 100, 4, ease.Linear)

	for i := 0; i < 4; i++ {
		tickOK(t, stage)
	}

	if !g.Done {
		t.Fatal("expected Done after full frame count")
	}
	if math.Abs(x-100) > 0.5 {
		t.Errorf("x = %f, want ~100", x)
	}
}

func TestTweenFloatIntermediateValue(t *testing.T) {
	stage := NewStage()
	clip := stage.NewClip("clip", nil)

	x := 0.0
	TweenFloat(clip, &x, 100, 4, ease.Linear)

	tickOK(t, stage)
	tickOK(t, stage)
	if math.Abs(x-50) > 0.5 {
		t.Errorf("x = %f, want ~50 at the halfway frame", x)
	}
}

func TestTweenFloatsMultipleFields(t *testing.T) {
	stage := NewStage()
	clip := stage.NewClip("clip", nil)

	x, y := 0.0, 20.0
	g := TweenFloats(clip, []*float64{&x, &y}, []float64{100, 200}, 2, ease.Linear)

	tickOK(t, stage)
	tickOK(t, stage)

	if !g.Done {
		t.Fatal("expected Done after full frame count")
	}
	if math.Abs(x-100) > 0.5 {
		t.Errorf("x = %f, want ~100", x)
	}
	if math.Abs(y-200) > 0.5 {
		t.Errorf("y = %f, want ~200", y)
	}
}

func TestTweenPausesWhileClipStopped(t *testing.T) {
	stage := NewStage()
	clip := stage.NewClip("clip", nil)

	x := 0.0
	TweenFloat(clip, &x, 100, 4, ease.Linear)

	clip.Stop()
	tickOK(t, stage)
	if x != 0 {
		t.Errorf("x = %f, want 0 while stopped", x)
	}

	clip.Play()
	tickOK(t, stage)
	if math.Abs(x-25) > 0.5 {
		t.Errorf("x = %f, want ~25 after one playing frame", x)
	}
}

func TestTweenDoneRemovesListener(t *testing.T) {
	stage := NewStage()
	clip := stage.NewClip("clip", nil)

	x := 0.0
	TweenFloat(clip, &x, 100, 1, ease.Linear)

	if n := clip.ListenerCount(EventFrameConstructed); n != 1 {
		t.Fatalf("ListenerCount = %d, want 1 before the tween finishes", n)
	}
	tickOK(t, stage)
	if n := clip.ListenerCount(EventFrameConstructed); n != 0 {
		t.Errorf("ListenerCount = %d, want 0 after the tween finishes", n)
	}
}

func TestTweenCancel(t *testing.T) {
	stage := NewStage()
	clip := stage.NewClip("clip", nil)

	x := 0.0
	g := TweenFloat(clip, &x, 100, 4, ease.Linear)
	tickOK(t, stage)

	g.Cancel()
	held := x
	tickOK(t, stage)

	if !g.Done {
		t.Error("Cancel should mark the group Done")
	}
	if x != held {
		t.Errorf("x = %f, want %f (unchanged after cancel)", x, held)
	}
	if n := clip.ListenerCount(EventFrameConstructed); n != 0 {
		t.Errorf("ListenerCount = %d, want 0 after cancel", n)
	}
	g.Cancel() // second cancel is a no-op
}

func TestTweenConstructorPanics(t *testing.T) {
	stage := NewStage()
	clip := stage.NewClip("clip", nil)
	x := 0.0

	mustPanic(t, "no fields", func() {
		TweenFloats(clip, nil, nil, 4, ease.Linear)
	})
	mustPanic(t, "length mismatch", func() {
		TweenFloats(clip, []*float64{&x}, []float64{1, 2}, 4, ease.Linear)
	})
	mustPanic(t, "bad frame count", func() {
		TweenFloat(clip, &x, 100, 0, ease.Linear)
	})
}
