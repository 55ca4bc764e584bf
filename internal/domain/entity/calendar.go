package entity

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is a cached copy of one calendar entry, pulled from a
// provider during sync. (user, service, external id) is unique.
type CalendarEvent struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Service    ServiceType // Which calendar service this event came from.
	ExternalID string      // The provider-side event ID.
	Title      string
	Location   string
	StartsAt   time.Time
	EndsAt     time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FreeBlock is a derived gap between events inside the business-hours
// window. It is computed on demand and never persisted.
type FreeBlock struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}
