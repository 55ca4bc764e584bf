package usecase

import (
	"context"
	"time"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// BriefUsecase defines daily brief generation and retrieval.
type BriefUsecase interface {
	// Generate composes a brief for the date from cached events, free
	// blocks and unread mail, and stores it. Regeneration overwrites.
	Generate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyBrief, error)

	// Get returns the stored brief for the date, or ErrBriefNotFound.
	Get(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyBrief, error)
}
