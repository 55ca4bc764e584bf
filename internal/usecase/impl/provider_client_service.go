package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// providerClientService implements the ProviderClientUsecase interface. It
// sits between the aggregation services and the provider APIs, refreshing
// expired credentials before they are used.
type providerClientService struct {
	connectionRepo repository.ConnectionRepository
	providers      map[entity.ExternalProvider]service.OAuthProvider
	logger         *slog.Logger
	now            func() time.Time
}

// ProviderClientServiceParams holds dependencies for ProviderClientService, injected by Fx.
type ProviderClientServiceParams struct {
	fx.In

	ConnectionRepo repository.ConnectionRepository
	Providers      []service.OAuthProvider `group:"oauth_providers"`
	Logger         *slog.Logger
}

// NewProviderClientService is the constructor for providerClientService.
func NewProviderClientService(params ProviderClientServiceParams) usecase.ProviderClientUsecase {
	providers := make(map[entity.ExternalProvider]service.OAuthProvider, len(params.Providers))
	for _, provider := range params.Providers {
		providers[provider.Provider()] = provider
	}

	return &providerClientService{
		connectionRepo: params.ConnectionRepo,
		providers:      providers,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *providerClientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Handle returns a usable credential for (user, service), refreshing an
// expired access token at most once.
func (srv *providerClientService) Handle(ctx context.Context, userID uuid.UUID, serviceType entity.ServiceType) (*usecase.ClientHandle, error) {
	provider, ok := entity.ProviderForService(serviceType)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrUnknownService, "no such service: %s", serviceType)
	}

	conn, err := srv.connectionRepo.FindByUserAndService(ctx, userID, serviceType)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrConnectionNotFound, "service %s is not connected", serviceType)
		}

		return nil, errors.Wrap(err, "failed to load connection")
	}

	handle := &usecase.ClientHandle{
		Service:      serviceType,
		Provider:     provider,
		AccountEmail: conn.AccountEmail,
		AccessToken:  conn.Credential.AccessToken,
		Simulated:    conn.Credential.Simulated,
	}

	// Simulated credentials never reach a real provider, so expiry is moot.
	if conn.Credential.Simulated {
		return handle, nil
	}

	if !conn.Credential.Expired(srv.now()) {
		return handle, nil
	}

	refreshed, err := srv.refreshCredential(ctx, conn)
	if err != nil {
		// Return the stale handle; the caller's provider call will surface
		// the real authorization error if the token is truly dead.
		srv.log(ctx).Warn("Token refresh failed, returning stale credential",
			slog.Any("userID", userID),
			slog.String("service", string(serviceType)),
			slog.Any("error", err))

		return handle, nil
	}

	handle.AccessToken = refreshed.AccessToken

	return handle, nil
}

// refreshCredential performs one refresh round-trip and persists the result.
func (srv *providerClientService) refreshCredential(ctx context.Context, conn *entity.Connection) (*entity.Credential, error) {
	oauthProvider, ok := srv.providers[mustProvider(conn.Service)]
	if !ok {
		return nil, errors.Errorf("no provider registered for service %s", conn.Service)
	}

	if conn.Credential.RefreshToken == "" {
		return nil, errors.New("connection has no refresh token")
	}

	token, err := oauthProvider.RefreshAccessToken(ctx, conn.Credential.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "refresh call failed")
	}

	credential := entity.Credential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.ExpiresAt,
	}
	// Providers routinely omit these on refresh; keep what we had.
	if credential.RefreshToken == "" {
		credential.RefreshToken = conn.Credential.RefreshToken
	}
	if credential.ExpiresAt.IsZero() {
		credential.ExpiresAt = srv.now().Add(time.Hour)
	}

	if err := srv.connectionRepo.UpdateCredential(ctx, conn.ID, credential); err != nil {
		return nil, errors.Wrap(err, "failed to persist refreshed credential")
	}

	srv.log(ctx).Info("Refreshed access token",
		slog.Any("userID", conn.UserID), slog.String("service", string(conn.Service)))

	return &credential, nil
}

func mustProvider(service entity.ServiceType) entity.ExternalProvider {
	provider, _ := entity.ProviderForService(service)

	return provider
}
