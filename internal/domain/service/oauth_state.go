package service

import (
	"errors"

	"pulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStateNotFound is returned when a state token is unknown, expired, or
// already consumed.
var ErrStateNotFound = errors.New("oauth state not found")

// OAuthFlow is the pending-consent record stashed between the initiate
// redirect and the provider callback.
type OAuthFlow struct {
	UserID   uuid.UUID
	Provider entity.ExternalProvider
}

// OAuthStateStore correlates an in-flight consent flow with the user who
// started it. Each state token is single-use; concurrent flows from the same
// user never clobber each other.
type OAuthStateStore interface {
	// Issue generates a fresh random state token and stashes the flow under it.
	Issue(flow OAuthFlow) (string, error)

	// Consume retrieves and deletes the flow for a state token. A second
	// Consume of the same token returns ErrStateNotFound.
	Consume(state string) (*OAuthFlow, error)
}
