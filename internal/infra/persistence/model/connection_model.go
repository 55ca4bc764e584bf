package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionModel mirrors the 'connections' table. The composite unique
// index on (user_id, service) backs the upsert: one row per user per
// service, no matter how many times the OAuth callback fires. Token columns
// hold ciphertext; plaintext never reaches the database.
type ConnectionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connections_user_service"`
	Service      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_connections_user_service"`
	AccountEmail string    `gorm:"type:varchar(255);not null"`
	Simulated    bool      `gorm:"not null;default:false"`
	AccessToken  string    `gorm:"type:text;not null"`
	RefreshToken string    `gorm:"type:text"`
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConnectionModel) TableName() string {
	return "connections"
}
