package usecase

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CallbackInput carries the query parameters of an OAuth provider callback.
type CallbackInput struct {
	Provider entity.ExternalProvider
	Code     string
	State    string
}

// --- Output DTOs ---

// RedirectOutput tells the handler where to send the browser next.
type RedirectOutput struct {
	RedirectURL string
}

// ConnectionUsecase defines the OAuth connection lifecycle: initiate a
// consent flow, absorb the provider callback, list and sever connections.
type ConnectionUsecase interface {
	// Initiate starts a consent flow for an authenticated user. When the
	// provider has no client registration it takes the simulation path and
	// redirects straight back to settings.
	Initiate(ctx context.Context, userID uuid.UUID, provider entity.ExternalProvider) (*RedirectOutput, error)

	// Callback absorbs the provider's redirect. Failures are logged and
	// folded into the redirect target; the browser is never shown an error
	// page from here.
	Callback(ctx context.Context, input *CallbackInput) *RedirectOutput

	// Disconnect removes the connection for (user, service) and best-effort
	// removes its paired sibling service. Disconnecting an absent service
	// is not an error.
	Disconnect(ctx context.Context, userID uuid.UUID, service entity.ServiceType) error

	// List returns all of the user's connections in stable service order.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Connection, error)
}
