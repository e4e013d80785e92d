package reel

// --- ID counter ---

// clipIDCounter is a plain counter (no atomic — reel is single-threaded).
var clipIDCounter uint32

func nextClipID() uint32 {
	clipIDCounter++
	return clipIDCounter
}

// --- Clip ---

// Clip is one schedulable timeline. A clip owns its children exclusively:
// destroying a clip tears down its whole subtree. Clips are created attached
// via [Stage.NewClip] and belong to that stage for life.
//
// A clip starts playing, with its frame cursor at 0.
type Clip struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Clip
	children []*Clip

	// Playhead policy. TotalFrames <= 0 means unbounded; AdvanceWrap and
	// AdvanceClamp only take effect with a positive TotalFrames.
	TotalFrames int
	Advance     AdvanceMode

	// Metadata
	UserData any

	// Internal
	stage         *Stage
	lastTick      uint64
	frame         int
	playing       bool
	destroyQueued bool
	destroyed     bool
	reg           registry
}

// newClip builds a detached clip with default playback state.
// Attachment and lifecycle emission happen in Stage.NewClip.
func newClip(name string, stage *Stage) *Clip {
	return &Clip{
		ID:      nextClipID(),
		Name:    name,
		stage:   stage,
		playing: true,
	}
}

// --- Playback state ---

// CurrentFrame returns the clip's frame cursor. The cursor starts at 0 and
// advances during the playhead-commit step of each tick while the clip plays.
func (c *Clip) CurrentFrame() int {
	return c.frame
}

// IsPlaying reports whether the playhead advances at the next commit step.
func (c *Clip) IsPlaying() bool {
	return c.playing
}

// Play resumes playhead advancement. Called during the frame-construction
// phase it takes effect at the current tick's commit step; called during the
// exit phase it takes effect next tick. No-op on a destroyed clip.
func (c *Clip) Play() {
	if c.destroyed {
		return
	}
	c.playing = true
}

// Stop halts playhead advancement, with timing symmetric to Play.
// No-op on a destroyed clip.
func (c *Clip) Stop() {
	if c.destroyed {
		return
	}
	c.playing = false
}

// advance commits one playhead step. Only called by the stage, and only while
// the clip is playing.
func (c *Clip) advance() {
	switch {
	case c.Advance == AdvanceWrap && c.TotalFrames > 0:
		c.frame = (c.frame + 1) % c.TotalFrames
	case c.Advance == AdvanceClamp && c.TotalFrames > 0:
		if c.frame < c.TotalFrames-1 {
			c.frame++
		}
	default:
		c.frame++
	}
}

// --- Scripted navigation ---

// seek moves the cursor to frame, clamped to the declared frame range.
func (c *Clip) seek(frame int) {
	if frame < 0 {
		frame = 0
	}
	if c.TotalFrames > 0 && frame > c.TotalFrames-1 {
		frame = c.TotalFrames - 1
	}
	c.frame = frame
}

// NextFrame stops the clip and steps the cursor forward one frame.
// No-op on a destroyed clip.
func (c *Clip) NextFrame() {
	if c.destroyed {
		return
	}
	c.playing = false
	c.seek(c.frame + 1)
}

// PrevFrame stops the clip and steps the cursor back one frame.
// No-op on a destroyed clip.
func (c *Clip) PrevFrame() {
	if c.destroyed {
		return
	}
	c.playing = false
	c.seek(c.frame - 1)
}

// GotoAndPlay moves the cursor to frame and resumes playback.
// No-op on a destroyed clip.
func (c *Clip) GotoAndPlay(frame int) {
	if c.destroyed {
		return
	}
	c.seek(frame)
	c.playing = true
}

// GotoAndStop moves the cursor to frame and halts playback.
// No-op on a destroyed clip.
func (c *Clip) GotoAndStop(frame int) {
	if c.destroyed {
		return
	}
	c.seek(frame)
	c.playing = false
}

// --- Listener registration ---

// On registers a frame listener for the given event type and returns a Handle
// for later removal. Registering during a dispatch of the same event type is
// deferred: the listener first fires at the next dispatch. Registering on a
// destroyed clip is a no-op and returns an inert handle.
func (c *Clip) On(event EventType, fn FrameFunc) Handle {
	if event >= numEventTypes {
		panic("reel: unknown event type")
	}
	if c.destroyed || fn == nil {
		return Handle{}
	}
	id := c.reg.add(event, fn)
	return Handle{id: id, reg: &c.reg, event: event}
}

// OnFrameConstructed registers a listener for the frame-construction phase.
func (c *Clip) OnFrameConstructed(fn FrameFunc) Handle {
	return c.On(EventFrameConstructed, fn)
}

// OnExitFrame registers a listener for the exit-frame phase.
func (c *Clip) OnExitFrame(fn FrameFunc) Handle {
	return c.On(EventExitFrame, fn)
}

// ListenerCount returns the number of listeners registered for event,
// including any staged additions and excluding staged removals.
func (c *Clip) ListenerCount(event EventType) int {
	if event >= numEventTypes {
		panic("reel: unknown event type")
	}
	return c.reg.count(event)
}

// --- Tree manipulation ---

// AddChild appends child to this clip's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, belongs to a different stage, or is an ancestor of
// this clip (cycle).
func (c *Clip) AddChild(child *Clip) {
	if child == nil {
		panic("reel: cannot add nil child")
	}
	if child.stage != c.stage {
		panic("reel: child belongs to a different stage")
	}
	if globalDebug {
		debugCheckDestroyed(c, "AddChild (parent)")
		debugCheckDestroyed(child, "AddChild (child)")
	}
	if isAncestor(child, c) {
		panic("reel: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = c
	c.children = append(c.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(c)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (c *Clip) AddChildAt(child *Clip, index int) {
	if child == nil {
		panic("reel: cannot add nil child")
	}
	if child.stage != c.stage {
		panic("reel: child belongs to a different stage")
	}
	if globalDebug {
		debugCheckDestroyed(c, "AddChildAt (parent)")
		debugCheckDestroyed(child, "AddChildAt (child)")
	}
	if isAncestor(child, c) {
		panic("reel: adding child would create a cycle")
	}
	if index < 0 || index > len(c.children) {
		panic("reel: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = c
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(c)
	}
}

// RemoveChild detaches child from this clip. The child is not destroyed and
// can be reattached; while detached it receives no ticks.
// Panics if child.Parent != c.
func (c *Clip) RemoveChild(child *Clip) {
	if child.Parent != c {
		panic("reel: child's parent is not this clip")
	}
	c.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (c *Clip) RemoveChildAt(index int) *Clip {
	if index < 0 || index >= len(c.children) {
		panic("reel: child index out of range")
	}
	child := c.children[index]
	copy(c.children[index:], c.children[index+1:])
	c.children[len(c.children)-1] = nil
	c.children = c.children[:len(c.children)-1]
	child.Parent = nil
	return child
}

// RemoveFromParent detaches this clip from its parent.
// No-op if this clip has no parent.
func (c *Clip) RemoveFromParent() {
	if c.Parent == nil {
		return
	}
	c.Parent.RemoveChild(c)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (c *Clip) Children() []*Clip {
	return c.children
}

// NumChildren returns the number of children.
func (c *Clip) NumChildren() int {
	return len(c.children)
}

// ChildAt returns the child at the given index.
func (c *Clip) ChildAt(index int) *Clip {
	return c.children[index]
}

// Root returns the topmost ancestor of this clip (the stage root, unless the
// clip's subtree is currently detached).
func (c *Clip) Root() *Clip {
	r := c
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// --- Destruction ---

// RequestDestroy flags this clip for teardown at the end of the current tick.
// The clip still participates in the tick's remaining passes — including its
// own exit phase — before being detached. Outside a tick the flag is applied
// at the end of the next tick. No-op on a destroyed clip.
func (c *Clip) RequestDestroy() {
	if c.destroyed {
		return
	}
	c.destroyQueued = true
}

// Destroy finalizes this clip and its whole subtree: detach from parent, mark
// destroyed, release listener registries. Called from inside a dispatch it
// behaves like RequestDestroy so the clip still receives its exit phase for
// the current tick. Idempotent: destroying a destroyed clip is a no-op.
func (c *Clip) Destroy() {
	if c.destroyed {
		return
	}
	if c.stage != nil && c.stage.ticking {
		c.destroyQueued = true
		return
	}
	c.RemoveFromParent()
	c.teardown()
}

// teardown marks the subtree destroyed and releases per-clip resources.
// The caller is responsible for detaching c from its parent first.
func (c *Clip) teardown() {
	c.destroyed = true
	c.destroyQueued = false
	c.playing = false
	c.reg.clear()
	if c.stage != nil {
		c.stage.emitLifecycle(LifecycleDestroyed, c)
	}
	for _, child := range c.children {
		child.Parent = nil
		child.teardown()
	}
	c.children = nil
	c.Parent = nil
	c.UserData = nil
}

// IsDestroyed returns true if this clip has been destroyed.
func (c *Clip) IsDestroyed() bool {
	return c.destroyed
}

// DestroyRequested returns true if this clip is flagged for teardown at the
// end of the current tick.
func (c *Clip) DestroyRequested() bool {
	return c.destroyQueued
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of clip.
func isAncestor(candidate, clip *Clip) bool {
	for p := clip; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from c.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (c *Clip) removeChildByPtr(child *Clip) {
	for i, cc := range c.children {
		if cc == child {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return
		}
	}
}
