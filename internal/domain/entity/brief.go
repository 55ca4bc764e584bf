package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyBrief is one generated morning brief. A user holds at most one brief
// per calendar date; regeneration overwrites the stored content.
type DailyBrief struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time // The calendar date the brief covers, truncated to midnight UTC.
	Content     string
	GeneratedAt time.Time
}
