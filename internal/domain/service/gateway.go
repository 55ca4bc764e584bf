package service

import (
	"context"
	"time"

	"pulse/internal/domain/entity"
)

// ProviderGateway fetches a user's data from one provider family's APIs.
// Implementations receive a ready access token; expiry and refresh are the
// caller's concern.
type ProviderGateway interface {
	// Provider returns which provider family this gateway reads from.
	Provider() entity.ExternalProvider

	// FetchMail retrieves the most recent messages, newest first.
	FetchMail(ctx context.Context, accessToken string, limit int) ([]*entity.Email, error)

	// FetchEvents retrieves events starting within [from, to).
	FetchEvents(ctx context.Context, accessToken string, from, to time.Time) ([]*entity.CalendarEvent, error)
}
