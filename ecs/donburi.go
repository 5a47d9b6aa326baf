package ecs

import (
	"github.com/phanxgames/mvc"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NotificationEventType is the Donburi event type for mvc notifications.
// Events are queued; they reach subscribers when the world processes events.
var NotificationEventType = events.NewEventType[mvc.Notification]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a NotificationSink backed by a Donburi world.
// Notifications are published to NotificationEventType and can be consumed
// with Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) mvc.NotificationSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitNotification(n mvc.Notification) {
	NotificationEventType.Publish(s.world, n)
}
