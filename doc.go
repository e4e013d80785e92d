// Package reel is a scripted-timeline engine: a deterministic frame scheduler
// that drives a tree of movie-clip style timelines through discrete ticks.
//
// Reel provides the clip tree, per-clip listener registries with safe
// mutation-during-dispatch, two-phase frame lifecycle events, playhead
// advancement policies, and frame-driven tweens that emulator-style timeline
// playback needs. It owns no rendering; callers draw however they like.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and drives
// one tick per update for you:
//
//	stage := reel.NewStage()
//	clip := stage.NewClip("intro", nil)
//	clip.OnFrameConstructed(func(e reel.FrameEvent) error {
//		// scripted per-frame logic
//		return nil
//	})
//	reel.Run(stage, reel.RunConfig{
//		Title: "My Timeline", Width: 640, Height: 480,
//	})
//
// For full control, or for headless use, call [Stage.Tick] directly:
//
//	for i := 0; i < 6; i++ {
//		if err := stage.Tick(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Tick phases
//
// Each tick runs four ordered passes over the clip tree, always depth-first
// with parents before children and siblings in registration order:
//
//  1. Frame construction: every live clip dispatches [EventFrameConstructed]
//     to its listeners in subscription order.
//  2. Playhead commit: every clip still playing advances its frame cursor
//     according to its [AdvanceMode].
//  3. Frame exit: every clip present at the start of the pass (including
//     clips flagged for destruction during construction) dispatches
//     [EventExitFrame].
//  4. Cleanup: destruction-flagged clips are detached, their registries
//     released, and their subtrees torn down.
//
// Listeners may call [Clip.Play], [Clip.Stop], [Clip.Destroy], add or remove
// listeners, and create clips from inside a dispatch. Listener list changes
// are staged and applied when the in-flight dispatch finishes, so the
// snapshot taken at dispatch start is never invalidated.
//
// # Clip tree
//
// Every timeline is a [Clip]. Clips form a tree rooted at [Stage.Root] and
// are created attached via [Stage.NewClip]. Nested timelines are ticked
// within the same global tick by synchronous traversal, never independently.
//
// # Key features
//
// Reel includes scripted navigation ([Clip.GotoAndPlay], [Clip.NextFrame]),
// wrap/clamp/unbounded playhead policies, frame tweens (via [gween]), an
// [Ebitengine] run loop adapter, and ECS integration (via [Donburi] adapter
// in reel/ecs).
//
// Everything runs on the caller's goroutine: reel performs no locking and no
// background scheduling, and callbacks must not block the tick.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package reel
