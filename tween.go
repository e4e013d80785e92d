package reel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 values in lockstep with a clip's
// timeline. Create one via [TweenFloat] or [TweenFloats]; the group registers
// a frame-construction listener on the clip and advances by one frame per
// tick while the clip is playing, so a stopped clip pauses its tweens too.
// When every tween finishes the group unregisters itself and sets Done.
//
// There is no global tween manager: each group rides its own clip, and
// destroying the clip releases the group's listener with the rest of the
// clip's registry.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	clip   *Clip
	handle Handle
	Done   bool
}

// TweenFloat creates a TweenGroup that animates *field to the given target
// value over the specified number of frames using the easing function.
func TweenFloat(clip *Clip, field *float64, to float64, frames int, fn ease.TweenFunc) *TweenGroup {
	return TweenFloats(clip, []*float64{field}, []float64{to}, frames, fn)
}

// TweenFloats creates a TweenGroup that animates up to 4 fields to their
// respective targets over the specified number of frames. Panics if fields
// and to differ in length, are empty, or exceed 4 entries, or if frames is
// not positive.
func TweenFloats(clip *Clip, fields []*float64, to []float64, frames int, fn ease.TweenFunc) *TweenGroup {
	if len(fields) == 0 || len(fields) > 4 {
		panic("reel: TweenFloats takes 1 to 4 fields")
	}
	if len(fields) != len(to) {
		panic("reel: TweenFloats fields/targets length mismatch")
	}
	if frames <= 0 {
		panic("reel: tween frame count must be positive")
	}
	g := &TweenGroup{count: len(fields), clip: clip}
	for i := range fields {
		g.tweens[i] = gween.New(float32(*fields[i]), float32(to[i]), float32(frames), fn)
		g.fields[i] = fields[i]
	}
	g.handle = clip.OnFrameConstructed(g.step)
	return g
}

// Cancel stops the group early, leaving the fields at their current values.
// Safe to call from inside a listener; removal follows staged-mutation rules.
func (g *TweenGroup) Cancel() {
	if g.Done {
		return
	}
	g.Done = true
	g.handle.Remove()
}

// step advances all tweens by one frame and writes values to the target
// fields. Runs as a frame-construction listener on the group's clip.
func (g *TweenGroup) step(e FrameEvent) error {
	if g.Done || !g.clip.playing {
		return nil
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(1)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		g.Done = true
		g.handle.Remove()
	}
	return nil
}
