package interfaces

import (
	"context"

	"user-management-service/internal/domain/events"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *events.UserEvent) error
}
