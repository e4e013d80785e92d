// Package ecs provides ECS adapters for reel's clip lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges reel lifecycle
// events (clip created, clip destroyed) into a [Donburi] world as typed
// events. Subscribe to [LifecycleEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetLifecycleSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
