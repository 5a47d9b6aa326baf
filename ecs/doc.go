// Package ecs provides ECS adapters for mvc controller notifications.
//
// The primary adapter is [NewDonburiSink], which bridges property and
// collection notifications into a [Donburi] world as typed events. Subscribe
// to [NotificationEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	workspace.SetNotificationSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
