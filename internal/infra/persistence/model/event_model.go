package model

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEventModel mirrors the 'calendar_events' table: the local cache of
// synced events. (user_id, service, external_id) dedupes repeated syncs.
type CalendarEventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_events_user_service_external"`
	Service    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_events_user_service_external"`
	ExternalID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_events_user_service_external"`
	Title      string    `gorm:"type:text"`
	Location   string    `gorm:"type:text"`
	StartsAt   time.Time `gorm:"not null;index"`
	EndsAt     time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CalendarEventModel) TableName() string {
	return "calendar_events"
}
