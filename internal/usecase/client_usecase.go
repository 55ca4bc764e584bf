package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ClientHandle is a ready-to-use credential for one service: expiry has
// been checked and, where needed and possible, the token refreshed.
// Callers branch on Simulated, never on the token value.
type ClientHandle struct {
	Service      entity.ServiceType
	Provider     entity.ExternalProvider
	AccountEmail string
	AccessToken  string
	Simulated    bool
}

// ProviderClientUsecase is the token refresh gate in front of every
// provider API call.
type ProviderClientUsecase interface {
	// Handle returns a usable credential for (user, service).
	//
	// No connection: ErrConnectionNotFound. Simulated: placeholder handle.
	// Expired real credential: exactly one refresh attempt, persisted on
	// success; on refresh failure the stale handle is returned so the
	// caller's provider call surfaces the real authorization error.
	Handle(ctx context.Context, userID uuid.UUID, service entity.ServiceType) (*ClientHandle, error)
}
