package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyBriefModel mirrors the 'daily_briefs' table. One brief per user per
// calendar date; regeneration overwrites the row.
type DailyBriefModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_briefs_user_date"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_briefs_user_date"`
	Content     string    `gorm:"type:text;not null"`
	GeneratedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DailyBriefModel) TableName() string {
	return "daily_briefs"
}
