package reel

// EventType identifies one of the two per-tick frame lifecycle phases.
type EventType uint8

const (
	EventFrameConstructed EventType = iota // fires first each tick, before the playhead commit
	EventExitFrame                         // fires after the playhead commit, before cleanup
)

// numEventTypes sizes per-clip handler list arrays.
const numEventTypes = 2

// String returns the event name as it appears in diagnostics.
func (e EventType) String() string {
	switch e {
	case EventFrameConstructed:
		return "frameConstructed"
	case EventExitFrame:
		return "exitFrame"
	default:
		return "unknown"
	}
}

// FrameEvent carries dispatch data to frame listeners. Frame is the clip's
// cursor position at dispatch time: pre-commit for EventFrameConstructed,
// post-commit for EventExitFrame.
type FrameEvent struct {
	Clip  *Clip
	Type  EventType
	Frame int
}

// FrameFunc is a frame lifecycle listener. A non-nil error aborts the
// remainder of the current tick's passes for the whole tree and propagates
// out of [Stage.Tick].
type FrameFunc func(FrameEvent) error

// AdvanceMode selects the playhead-commit policy for a playing clip.
type AdvanceMode uint8

const (
	AdvanceUnbounded AdvanceMode = iota // cursor counts up without limit (default)
	AdvanceWrap                         // cursor wraps to 0 after TotalFrames-1
	AdvanceClamp                        // cursor holds at TotalFrames-1
)

// LifecycleType identifies a clip lifecycle transition.
type LifecycleType uint8

const (
	LifecycleCreated   LifecycleType = iota // clip created and attached
	LifecycleDestroyed                      // clip torn down (explicitly or with its parent)
)

// LifecycleEvent carries clip lifecycle data for the ECS bridge. Plain data
// only: by the time a queued event is processed the clip may be gone.
type LifecycleEvent struct {
	Type   LifecycleType
	ClipID uint32
	Name   string
	Frame  int
}

// LifecycleSink is the interface for optional ECS integration.
// When set on a Stage, clip lifecycle events are forwarded to the ECS.
type LifecycleSink interface {
	EmitLifecycle(event LifecycleEvent)
}
