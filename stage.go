package reel

import "time"

// Stage is the top-level object that owns the clip tree and drives the global
// tick. All methods must be called from a single goroutine; listener
// callbacks run synchronously on the caller of Tick.
type Stage struct {
	root   *Clip
	sink   LifecycleSink
	script *ScriptRunner
	debug  bool

	ticks   uint64
	ticking bool

	// clipBuf is the reused per-pass traversal snapshot. Each pass gathers
	// the tree into it before dispatching, so clips attached mid-pass wait
	// for the next pass and clips detached mid-pass still finish the current
	// one.
	clipBuf []*Clip
}

// NewStage creates a stage with a pre-created root clip. The root is a plain
// clip like any other: it receives both frame phases and its cursor advances
// while playing.
func NewStage() *Stage {
	s := &Stage{}
	s.root = newClip("root", s)
	return s
}

// Root returns the stage's root clip.
func (s *Stage) Root() *Clip {
	return s.root
}

// NewClip creates a clip attached under parent, or under the root when parent
// is nil. This is the only way to create clips: every clip belongs to the
// stage that created it. Safe to call from inside a listener; the new clip
// joins traversal at the next pass.
func (s *Stage) NewClip(name string, parent *Clip) *Clip {
	if parent == nil {
		parent = s.root
	}
	c := newClip(name, s)
	parent.AddChild(c)
	s.emitLifecycle(LifecycleCreated, c)
	return c
}

// Find returns the first clip with the given name in dispatch order, or nil.
// The root is included in the search.
func (s *Stage) Find(name string) *Clip {
	return findClip(s.root, name)
}

func findClip(c *Clip, name string) *Clip {
	if c.destroyed {
		return nil
	}
	if c.Name == name {
		return c
	}
	for _, child := range c.children {
		if found := findClip(child, name); found != nil {
			return found
		}
	}
	return nil
}

// TickCount returns the number of completed or in-progress ticks.
func (s *Stage) TickCount() uint64 {
	return s.ticks
}

// SetLifecycleSink sets the optional ECS bridge.
func (s *Stage) SetLifecycleSink(sink LifecycleSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, destroyed-clip
// tree operations panic, tree depth and child count warnings are printed, and
// per-tick pass timing stats are logged to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Stage debug flag so that clip
// operations (which lack a Stage pointer on every path) can check it cheaply.
// Only valid with a single Stage; multiple Stages with differing debug modes
// will reflect whichever called SetDebugMode last.
var globalDebug bool

func (s *Stage) emitLifecycle(t LifecycleType, c *Clip) {
	if s.sink == nil {
		return
	}
	s.sink.EmitLifecycle(LifecycleEvent{
		Type:   t,
		ClipID: c.ID,
		Name:   c.Name,
		Frame:  c.frame,
	})
}

// --- Tick ---

// Tick advances the entire tree by one frame, running four ordered passes:
// frame construction, playhead commit, frame exit, cleanup. Traversal is
// depth-first with parents before children and siblings in registration
// order; each pass snapshots the tree before dispatching.
//
// The first listener error aborts the remaining passes for the whole tree and
// is returned. State mutated before the abort (play/stop flags, committed
// cursors, staged listener changes already applied) is kept; destruction
// flags raised during the aborted tick are honored by the next tick's
// cleanup.
func (s *Stage) Tick() error {
	if s.ticking {
		panic("reel: Tick called from inside a tick")
	}
	s.ticking = true
	defer func() { s.ticking = false }()
	s.ticks++

	var stats tickStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	// Scripted steps apply before any dispatch, so a step's effect is visible
	// to this tick's construction pass.
	if s.script != nil {
		s.script.step(s)
	}

	// Construction pass.
	s.clipBuf = gatherClips(s.clipBuf[:0], s.root)
	if s.debug {
		stats.clipCount = len(s.clipBuf)
	}
	for _, c := range s.clipBuf {
		// Stamp before dispatching: a clip only takes part in this tick's
		// later passes if it was present for the construction pass. Clips
		// created mid-tick wait for the next tick.
		c.lastTick = s.ticks
		if err := c.reg.dispatch(EventFrameConstructed, c); err != nil {
			return err
		}
	}
	if s.debug {
		stats.constructTime = time.Since(t0)
		t0 = time.Now()
	}

	// Playhead commit: flags are read after the whole construction pass has
	// settled, so a Play/Stop from any construction listener affects this
	// tick's commit.
	s.clipBuf = gatherClips(s.clipBuf[:0], s.root)
	for _, c := range s.clipBuf {
		if c.playing && c.lastTick == s.ticks {
			c.advance()
		}
	}
	if s.debug {
		stats.commitTime = time.Since(t0)
		t0 = time.Now()
	}

	// Exit pass. Destruction-flagged clips are still present and receive
	// their exit phase before teardown.
	s.clipBuf = gatherClips(s.clipBuf[:0], s.root)
	for _, c := range s.clipBuf {
		if c.lastTick != s.ticks {
			continue
		}
		if err := c.reg.dispatch(EventExitFrame, c); err != nil {
			return err
		}
	}
	if s.debug {
		stats.exitTime = time.Since(t0)
		t0 = time.Now()
	}

	// Cleanup: finalize destruction-flagged clips, parents first so a flagged
	// subtree is torn down through its topmost flagged clip.
	s.clipBuf = gatherClips(s.clipBuf[:0], s.root)
	for _, c := range s.clipBuf {
		if c.destroyQueued && !c.destroyed {
			c.RemoveFromParent()
			c.teardown()
		}
	}
	if s.debug {
		stats.cleanupTime = time.Since(t0)
		s.debugLog(stats)
	}
	return nil
}

// gatherClips appends the live subtree rooted at c to buf in dispatch order:
// c first, then each child subtree in registration order.
func gatherClips(buf []*Clip, c *Clip) []*Clip {
	if c.destroyed {
		return buf
	}
	buf = append(buf, c)
	for _, child := range c.children {
		buf = gatherClips(buf, child)
	}
	return buf
}
