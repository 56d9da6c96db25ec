package app

import (
	"context"
	"log"

	"quotevault/internal/model"
)

// EventPublisher pushes advisory activity events to the broker. A nil
// publisher disables the activity trail (tests, degraded mode).
type EventPublisher interface {
	Publish(ctx context.Context, event model.Activity) error
}

// publishActivity never fails the request; a broken broker only costs the
// audit trail.
func publishActivity(ctx context.Context, events EventPublisher, event model.Activity) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, event); err != nil {
		log.Printf("publish activity %q failed: %v", event.Action, err)
	}
}
