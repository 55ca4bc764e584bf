package service

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
)

// ProviderToken is the token material returned by an OAuth code exchange or
// a refresh call.
type ProviderToken struct {
	AccessToken  string
	RefreshToken string    // May be empty; providers often omit it on refresh.
	ExpiresAt    time.Time // Zero when the provider omitted a lifetime.
}

// ProviderIdentity is the external account behind a consent.
type ProviderIdentity struct {
	ID    string // Provider-specific user ID (e.g., Google's 'sub' claim).
	Email string
	Name  string
}

// OAuthProvider defines the authorization-code flow against one external
// provider. One implementation exists per provider family.
type OAuthProvider interface {
	// Provider returns which provider this instance talks to.
	Provider() entity.ExternalProvider

	// Configured reports whether client credentials are present. An
	// unconfigured provider routes callers to the simulation path.
	Configured() bool

	// BuildAuthorizationURL returns the consent URL carrying the given
	// per-flow state token.
	BuildAuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for tokens.
	ExchangeCode(ctx context.Context, code string) (*ProviderToken, error)

	// FetchIdentity resolves the external account using a valid access token.
	FetchIdentity(ctx context.Context, accessToken string) (*ProviderIdentity, error)

	// RefreshAccessToken trades a refresh token for a fresh access token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*ProviderToken, error)
}
