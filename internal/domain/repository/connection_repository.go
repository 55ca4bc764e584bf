package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConnectionNotFound is returned when no connection exists for the
// requested user and service.
var ErrConnectionNotFound = errors.New("connection not found")

// ConnectionRepository defines the operations for connection persistence.
// Token material is encrypted before it touches storage and decrypted on the
// way out; callers only ever see plaintext credentials.
type ConnectionRepository interface {
	// Upsert inserts the connection or, when a row already exists for the
	// same (user, service), replaces its account email and credential.
	// Repeated OAuth callbacks therefore never produce duplicate rows.
	Upsert(ctx context.Context, conn *entity.Connection) error

	// FindByUserAndService retrieves the single connection for a user and service.
	FindByUserAndService(ctx context.Context, userID uuid.UUID, service entity.ServiceType) (*entity.Connection, error)

	// FindByUserID retrieves all connections of a user, ordered by service name.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Connection, error)

	// UpdateCredential replaces the stored credential after a token refresh.
	UpdateCredential(ctx context.Context, id uuid.UUID, credential entity.Credential) error

	// DeleteByUserAndService removes the connection for (user, service).
	// Returns ErrConnectionNotFound when no row matched.
	DeleteByUserAndService(ctx context.Context, userID uuid.UUID, service entity.ServiceType) error
}
