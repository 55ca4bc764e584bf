package model

import (
	"time"

	"github.com/google/uuid"
)

// EmailModel mirrors the 'emails' table: the local cache of synced mailbox
// messages. (user_id, service, external_id) dedupes repeated syncs.
type EmailModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_emails_user_service_external"`
	Service    string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_emails_user_service_external"`
	ExternalID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_emails_user_service_external"`
	From       string    `gorm:"column:from_address;type:varchar(320)"`
	Subject    string    `gorm:"type:text"`
	Snippet    string    `gorm:"type:text"`
	Body       string    `gorm:"type:text"`
	ReceivedAt time.Time `gorm:"not null;index"`
	Unread     bool      `gorm:"not null;default:false"`
	Summary    string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Replies []SmartReplyModel `gorm:"foreignKey:EmailID"`
}

// TableName explicitly sets the table name for GORM.
func (EmailModel) TableName() string {
	return "emails"
}

// SmartReplyModel mirrors the 'smart_replies' table.
type SmartReplyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	EmailID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Tone      string    `gorm:"type:varchar(30);not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SmartReplyModel) TableName() string {
	return "smart_replies"
}
