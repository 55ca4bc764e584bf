package impl

import (
	"context"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// providerClientFixtures holds all test dependencies for provider client tests.
type providerClientFixtures struct {
	service        *providerClientService
	connectionRepo *mockRepo.MockConnectionRepository
	google         *mockSvc.MockOAuthProvider
	now            time.Time
}

func createTestProviderClientService(t *testing.T) providerClientFixtures {
	connectionRepo := mockRepo.NewMockConnectionRepository(t)
	google := mockSvc.NewMockOAuthProvider(t)
	google.EXPECT().Provider().Return(entity.ExternalProviderGoogle)

	svc, ok := NewProviderClientService(ProviderClientServiceParams{
		ConnectionRepo: connectionRepo,
		Providers:      []service.OAuthProvider{google},
		Logger:         newDiscardLogger(),
	}).(*providerClientService)
	require.True(t, ok)

	now := time.Date(2025, 7, 14, 8, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return providerClientFixtures{
		service:        svc,
		connectionRepo: connectionRepo,
		google:         google,
		now:            now,
	}
}

func TestProviderClientService_Handle_NotConnected(t *testing.T) {
	fx := createTestProviderClientService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.connectionRepo.EXPECT().
		FindByUserAndService(ctx, userID, entity.ServiceGmail).
		Return(nil, repository.ErrConnectionNotFound)

	handle, err := fx.service.Handle(ctx, userID, entity.ServiceGmail)

	assert.Error(t, err)
	assert.Nil(t, handle)
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionNotFound))
}

func TestProviderClientService_Handle_UnknownService(t *testing.T) {
	fx := createTestProviderClientService(t)

	handle, err := fx.service.Handle(context.Background(), uuid.New(), entity.ServiceType("fax"))

	assert.Error(t, err)
	assert.Nil(t, handle)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownService))
}

func TestProviderClientService_Handle_Simulated(t *testing.T) {
	fx := createTestProviderClientService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.connectionRepo.EXPECT().
		FindByUserAndService(ctx, userID, entity.ServiceGmail).
		Return(&entity.Connection{
			UserID:       userID,
			Service:      entity.ServiceGmail,
			AccountEmail: "simulated@google.example.com",
			// Expired on purpose: simulated credentials are never refreshed.
			Credential: entity.Credential{
				Simulated:   true,
				AccessToken: entity.SimulatedAccessToken,
				ExpiresAt:   fx.now.Add(-time.Hour),
			},
		}, nil)

	handle, err := fx.service.Handle(ctx, userID, entity.ServiceGmail)

	require.NoError(t, err)
	assert.True(t, handle.Simulated)
	assert.Equal(t, entity.SimulatedAccessToken, handle.AccessToken)
	assert.Equal(t, entity.ExternalProviderGoogle, handle.Provider)
}

func TestProviderClientService_Handle_FreshCredentialPassesThrough(t *testing.T) {
	fx := createTestProviderClientService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.connectionRepo.EXPECT().
		FindByUserAndService(ctx, userID, entity.ServiceGoogleCalendar).
		Return(&entity.Connection{
			UserID:       userID,
			Service:      entity.ServiceGoogleCalendar,
			AccountEmail: "user@gmail.com",
			Credential: entity.Credential{
				AccessToken:  "live-access-token",
				RefreshToken: "refresh-token",
				ExpiresAt:    fx.now.Add(30 * time.Minute),
			},
		}, nil)

	handle, err := fx.service.Handle(ctx, userID, entity.ServiceGoogleCalendar)

	require.NoError(t, err)
	assert.Equal(t, "live-access-token", handle.AccessToken)
	assert.False(t, handle.Simulated)
}

func TestProviderClientService_Handle_ExpiredCredentialRefreshes(t *testing.T) {
	fx := createTestProviderClientService(t)

	ctx := context.Background()
	userID := uuid.New()
	connID := uuid.New()

	fx.connectionRepo.EXPECT().
		FindByUserAndService(ctx, userID, entity.ServiceGmail).
		Return(&entity.Connection{
			ID:           connID,
			UserID:       userID,
			Service:      entity.ServiceGmail,
			AccountEmail: "user@gmail.com",
			Credential: entity.Credential{
				AccessToken:  "stale-access-token",
				RefreshToken: "refresh-token",
				ExpiresAt:    fx.now.Add(-time.Minute),
			},
		}, nil)

	// The provider rotates neither refresh token nor expiry: the old refresh
	// token is kept and the expiry defaults to one hour out.
	fx.google.EXPECT().
		RefreshAccessToken(ctx, "refresh-token").
		Return(&service.ProviderToken{AccessToken: "fresh-access-token"}, nil)
	fx.connectionRepo.EXPECT().
		UpdateCredential(ctx, connID, entity.Credential{
			AccessToken:  "fresh-access-token",
			RefreshToken: "refresh-token",
			ExpiresAt:    fx.now.Add(time.Hour),
		}).
		Return(nil)

	handle, err := fx.service.Handle(ctx, userID, entity.ServiceGmail)

	require.NoError(t, err)
	assert.Equal(t, "fresh-access-token", handle.AccessToken)
}

func TestProviderClientService_Handle_RefreshRotatesTokens(t *testing.T) {
	fx := createTestProviderClientService(t)

	ctx := context.Background()
	userID := uuid.New()
	connID := uuid.New()
	rotatedExpiry := fx.now.Add(45 * time.Minute)

	fx.connectionRepo.EXPECT().
		FindByUserAndService(ctx, userID, entity.ServiceGmail).
		Return(&entity.Connection{
			ID:      connID,
			UserID:  userID,
			Service: entity.ServiceGmail,
			Credential: entity.Credential{
				AccessToken:  "stale-access-token",
				RefreshToken: "old-refresh-token",
				ExpiresAt:    fx.now.Add(-time.Minute),
			},
		}, nil)

	fx.google.EXPECT().
		RefreshAccessToken(ctx, "old-refresh-token").
		Return(&service.ProviderToken{
			AccessToken:  "fresh-access-token",
			RefreshToken: "new-refresh-token",
			ExpiresAt:    rotatedExpiry,
		}, nil)
	fx.connectionRepo.EXPECT().
		UpdateCredential(ctx, connID, entity.Credential{
			AccessToken:  "fresh-access-token",
			RefreshToken: "new-refresh-token",
			ExpiresAt:    rotatedExpiry,
		}).
		Return(nil)

	handle, err := fx.service.Handle(ctx, userID, entity.ServiceGmail)

	require.NoError(t, err)
	assert.Equal(t, "fresh-access-token", handle.AccessToken)
}

func TestProviderClientService_Handle_RefreshFailureReturnsStaleHandle(t *testing.T) {
	fx := createTestProviderClientService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.connectionRepo.EXPECT().
		FindByUserAndService(ctx, userID, entity.ServiceGmail).
		Return(&entity.Connection{
			UserID:  userID,
			Service: entity.ServiceGmail,
			Credential: entity.Credential{
				AccessToken:  "stale-access-token",
				RefreshToken: "refresh-token",
				ExpiresAt:    fx.now.Add(-time.Minute),
			},
		}, nil)

	fx.google.EXPECT().
		RefreshAccessToken(ctx, "refresh-token").
		Return(nil, errors.New("invalid_grant"))

	handle, err := fx.service.Handle(ctx, userID, entity.ServiceGmail)

	// The stale token is handed back so the caller's provider call surfaces
	// the real authorization error.
	require.NoError(t, err)
	assert.Equal(t, "stale-access-token", handle.AccessToken)
}

func TestProviderClientService_Handle_NoRefreshTokenReturnsStaleHandle(t *testing.T) {
	fx := createTestProviderClientService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.connectionRepo.EXPECT().
		FindByUserAndService(ctx, userID, entity.ServiceGmail).
		Return(&entity.Connection{
			UserID:  userID,
			Service: entity.ServiceGmail,
			Credential: entity.Credential{
				AccessToken: "stale-access-token",
				ExpiresAt:   fx.now.Add(-time.Minute),
			},
		}, nil)

	handle, err := fx.service.Handle(ctx, userID, entity.ServiceGmail)

	require.NoError(t, err)
	assert.Equal(t, "stale-access-token", handle.AccessToken)
}
