package repository

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// EventRepository defines the operations for the cached calendar.
type EventRepository interface {
	// Upsert inserts the event or, when a row already exists for the same
	// (user, service, external id), refreshes its mutable fields.
	Upsert(ctx context.Context, event *entity.CalendarEvent) error

	// FindByUserAndRange retrieves the user's events starting within
	// [from, to), ordered by start time ascending.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.CalendarEvent, error)
}
