package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// CalendarUsecase defines calendar aggregation and free-time lookups.
type CalendarUsecase interface {
	// Sync pulls the coming days' events from every connected calendar
	// service into the local cache. Simulated connections contribute
	// fixture events.
	Sync(ctx context.Context, userID uuid.UUID) (*SyncOutput, error)

	// ListEvents returns the user's cached events for one calendar day,
	// ordered by start time.
	ListEvents(ctx context.Context, userID uuid.UUID, day time.Time) ([]*entity.CalendarEvent, error)

	// FreeBlocks computes the unoccupied gaps of one calendar day inside
	// the configured business-hours window.
	FreeBlocks(ctx context.Context, userID uuid.UUID, day time.Time) ([]entity.FreeBlock, error)
}
