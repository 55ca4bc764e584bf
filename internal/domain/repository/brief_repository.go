package repository

import (
	"context"
	"errors"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBriefNotFound is returned when no brief exists for the requested date.
var ErrBriefNotFound = errors.New("daily brief not found")

// BriefRepository defines the operations for stored daily briefs.
type BriefRepository interface {
	// Upsert inserts the brief or, when one already exists for the same
	// (user, date), replaces its content and generation time.
	Upsert(ctx context.Context, brief *entity.DailyBrief) error

	// FindByUserAndDate retrieves the brief for one calendar date.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyBrief, error)
}
