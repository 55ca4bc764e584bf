package impl

import (
	"context"
	"testing"
	"time"

	"pulse/config"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// connectionServiceFixtures holds all test dependencies for connection service tests.
type connectionServiceFixtures struct {
	service        *connectionService
	txManager      *mockRepo.MockTransactionManager
	connectionRepo *mockRepo.MockConnectionRepository
	stateStore     *mockSvc.MockOAuthStateStore
	google         *mockSvc.MockOAuthProvider
	now            time.Time
}

func createTestConnectionService(t *testing.T) connectionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	connectionRepo := mockRepo.NewMockConnectionRepository(t)
	stateStore := mockSvc.NewMockOAuthStateStore(t)
	google := mockSvc.NewMockOAuthProvider(t)
	google.EXPECT().Provider().Return(entity.ExternalProviderGoogle)

	cfg := &config.Config{Frontend: &config.FrontendConfig{SettingsURL: "/settings"}}

	svc, ok := NewConnectionService(ConnectionServiceParams{
		TxManager:      txManager,
		ConnectionRepo: connectionRepo,
		StateStore:     stateStore,
		Providers:      []service.OAuthProvider{google},
		Config:         cfg,
		Logger:         newDiscardLogger(),
	}).(*connectionService)
	require.True(t, ok)

	now := time.Date(2025, 7, 14, 8, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return connectionServiceFixtures{
		service:        svc,
		txManager:      txManager,
		connectionRepo: connectionRepo,
		stateStore:     stateStore,
		google:         google,
		now:            now,
	}
}

func TestConnectionService_Initiate_ConfiguredProvider(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.google.EXPECT().Configured().Return(true)
	fx.stateStore.EXPECT().
		Issue(service.OAuthFlow{UserID: userID, Provider: entity.ExternalProviderGoogle}).
		Return("state-token", nil)
	fx.google.EXPECT().
		BuildAuthorizationURL("state-token").
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=state-token")

	output, err := fx.service.Initiate(ctx, userID, entity.ExternalProviderGoogle)

	require.NoError(t, err)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=state-token", output.RedirectURL)
}

func TestConnectionService_Initiate_UnconfiguredProviderSimulates(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.google.EXPECT().Configured().Return(false)

	var stored []*entity.Connection
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockConnRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Connection")).
				Run(func(ctx context.Context, conn *entity.Connection) {
					stored = append(stored, conn)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Initiate(ctx, userID, entity.ExternalProviderGoogle)

	require.NoError(t, err)
	assert.Equal(t, "/settings?simulated=true&success=google", output.RedirectURL)

	// One consent covers both of the provider's services.
	require.Len(t, stored, 2)
	assert.Equal(t, entity.ServiceGmail, stored[0].Service)
	assert.Equal(t, entity.ServiceGoogleCalendar, stored[1].Service)
	for _, conn := range stored {
		assert.Equal(t, userID, conn.UserID)
		assert.Equal(t, "simulated@google.example.com", conn.AccountEmail)
		assert.True(t, conn.Credential.Simulated)
		assert.Equal(t, entity.SimulatedAccessToken, conn.Credential.AccessToken)
		assert.Equal(t, fx.now.Add(time.Hour), conn.Credential.ExpiresAt)
	}
}

func TestConnectionService_Initiate_UnknownProvider(t *testing.T) {
	fx := createTestConnectionService(t)

	output, err := fx.service.Initiate(context.Background(), uuid.New(), entity.ExternalProviderMicrosoft)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownProvider))
}

func TestConnectionService_Callback_Success(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	expiresAt := fx.now.Add(50 * time.Minute)

	fx.stateStore.EXPECT().
		Consume("state-token").
		Return(&service.OAuthFlow{UserID: userID, Provider: entity.ExternalProviderGoogle}, nil)
	fx.google.EXPECT().
		ExchangeCode(ctx, "auth-code").
		Return(&service.ProviderToken{
			AccessToken:  "real-access-token",
			RefreshToken: "real-refresh-token",
			ExpiresAt:    expiresAt,
		}, nil)
	fx.google.EXPECT().
		FetchIdentity(ctx, "real-access-token").
		Return(&service.ProviderIdentity{ID: "google-sub", Email: "user@gmail.com"}, nil)

	var stored []*entity.Connection
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockConnRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Connection")).
				Run(func(ctx context.Context, conn *entity.Connection) {
					stored = append(stored, conn)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output := fx.service.Callback(ctx, &usecase.CallbackInput{
		Provider: entity.ExternalProviderGoogle,
		Code:     "auth-code",
		State:    "state-token",
	})

	assert.Equal(t, "/settings?success=google", output.RedirectURL)

	// Both services share the same token pair from the single consent.
	require.Len(t, stored, 2)
	assert.Equal(t, entity.ServiceGmail, stored[0].Service)
	assert.Equal(t, entity.ServiceGoogleCalendar, stored[1].Service)
	for _, conn := range stored {
		assert.Equal(t, userID, conn.UserID)
		assert.Equal(t, "user@gmail.com", conn.AccountEmail)
		assert.False(t, conn.Credential.Simulated)
		assert.Equal(t, "real-access-token", conn.Credential.AccessToken)
		assert.Equal(t, "real-refresh-token", conn.Credential.RefreshToken)
		assert.Equal(t, expiresAt, conn.Credential.ExpiresAt)
	}
}

func TestConnectionService_Callback_MissingExpiryDefaultsToOneHour(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.stateStore.EXPECT().
		Consume("state-token").
		Return(&service.OAuthFlow{UserID: userID, Provider: entity.ExternalProviderGoogle}, nil)
	fx.google.EXPECT().
		ExchangeCode(ctx, "auth-code").
		Return(&service.ProviderToken{AccessToken: "real-access-token"}, nil)
	fx.google.EXPECT().
		FetchIdentity(ctx, "real-access-token").
		Return(&service.ProviderIdentity{Email: "user@gmail.com"}, nil)

	var stored []*entity.Connection
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockConnRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Connection")).
				Run(func(ctx context.Context, conn *entity.Connection) {
					stored = append(stored, conn)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output := fx.service.Callback(ctx, &usecase.CallbackInput{
		Provider: entity.ExternalProviderGoogle,
		Code:     "auth-code",
		State:    "state-token",
	})

	assert.Equal(t, "/settings?success=google", output.RedirectURL)
	require.Len(t, stored, 2)
	assert.Equal(t, fx.now.Add(time.Hour), stored[0].Credential.ExpiresAt)
}

func TestConnectionService_Callback_InvalidState(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()

	fx.stateStore.EXPECT().Consume("replayed-state").Return(nil, service.ErrStateNotFound)

	output := fx.service.Callback(ctx, &usecase.CallbackInput{
		Provider: entity.ExternalProviderGoogle,
		Code:     "auth-code",
		State:    "replayed-state",
	})

	assert.Equal(t, "/settings?error=invalid_state", output.RedirectURL)
}

func TestConnectionService_Callback_ProviderMismatch(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()

	fx.stateStore.EXPECT().
		Consume("state-token").
		Return(&service.OAuthFlow{UserID: uuid.New(), Provider: entity.ExternalProviderMicrosoft}, nil)

	output := fx.service.Callback(ctx, &usecase.CallbackInput{
		Provider: entity.ExternalProviderGoogle,
		Code:     "auth-code",
		State:    "state-token",
	})

	assert.Equal(t, "/settings?error=invalid_state", output.RedirectURL)
}

func TestConnectionService_Callback_MissingCode(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()

	// The state is consumed before the code check, so a denied consent
	// still burns the state token.
	fx.stateStore.EXPECT().
		Consume("state-token").
		Return(&service.OAuthFlow{UserID: uuid.New(), Provider: entity.ExternalProviderGoogle}, nil)

	output := fx.service.Callback(ctx, &usecase.CallbackInput{
		Provider: entity.ExternalProviderGoogle,
		Code:     "",
		State:    "state-token",
	})

	assert.Equal(t, "/settings?error=missing_code", output.RedirectURL)
}

func TestConnectionService_Callback_ExchangeFailure(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()

	fx.stateStore.EXPECT().
		Consume("state-token").
		Return(&service.OAuthFlow{UserID: uuid.New(), Provider: entity.ExternalProviderGoogle}, nil)
	fx.google.EXPECT().
		ExchangeCode(ctx, "bad-code").
		Return(nil, errors.New("invalid_grant"))

	output := fx.service.Callback(ctx, &usecase.CallbackInput{
		Provider: entity.ExternalProviderGoogle,
		Code:     "bad-code",
		State:    "state-token",
	})

	assert.Equal(t, "/settings?error=exchange_failed", output.RedirectURL)
}

func TestConnectionService_Disconnect_RemovesPairedService(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.connectionRepo.EXPECT().
		DeleteByUserAndService(ctx, userID, entity.ServiceGmail).
		Return(nil)
	fx.connectionRepo.EXPECT().
		DeleteByUserAndService(ctx, userID, entity.ServiceGoogleCalendar).
		Return(nil)

	err := fx.service.Disconnect(ctx, userID, entity.ServiceGmail)

	require.NoError(t, err)
}

func TestConnectionService_Disconnect_AbsentServiceSucceeds(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.connectionRepo.EXPECT().
		DeleteByUserAndService(ctx, userID, entity.ServiceOutlookMail).
		Return(repository.ErrConnectionNotFound)
	fx.connectionRepo.EXPECT().
		DeleteByUserAndService(ctx, userID, entity.ServiceOutlookCalendar).
		Return(repository.ErrConnectionNotFound)

	err := fx.service.Disconnect(ctx, userID, entity.ServiceOutlookMail)

	require.NoError(t, err)
}

func TestConnectionService_List(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	connections := []*entity.Connection{
		{UserID: userID, Service: entity.ServiceGmail, AccountEmail: "user@gmail.com"},
		{UserID: userID, Service: entity.ServiceGoogleCalendar, AccountEmail: "user@gmail.com"},
	}

	fx.connectionRepo.EXPECT().FindByUserID(ctx, userID).Return(connections, nil)

	listed, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, connections, listed)
}
