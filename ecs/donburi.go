package ecs

import (
	"github.com/phanxgames/reel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for reel clip lifecycle events.
// Subscribe to this in your ECS systems to react to clip creation and teardown.
var LifecycleEventType = events.NewEventType[reel.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a LifecycleSink backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) reel.LifecycleSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitLifecycle(event reel.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
