package impl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"pulse/config"
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

// Redirect error codes surfaced to the settings page as ?error=<code>.
const (
	callbackErrUnknownProvider = "unknown_provider"
	callbackErrInvalidState    = "invalid_state"
	callbackErrMissingCode     = "missing_code"
	callbackErrExchangeFailed  = "exchange_failed"
	callbackErrIdentityFailed  = "identity_failed"
	callbackErrStoreFailed     = "store_failed"
)

// connectionService implements the ConnectionUsecase interface.
type connectionService struct {
	txManager      repository.TransactionManager
	connectionRepo repository.ConnectionRepository
	stateStore     service.OAuthStateStore
	providers      map[entity.ExternalProvider]service.OAuthProvider
	settingsURL    string
	logger         *slog.Logger
	now            func() time.Time
}

// ConnectionServiceParams holds dependencies for ConnectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ConnectionRepo repository.ConnectionRepository
	StateStore     service.OAuthStateStore
	Providers      []service.OAuthProvider `group:"oauth_providers"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewConnectionService is the constructor for connectionService.
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	providers := make(map[entity.ExternalProvider]service.OAuthProvider, len(params.Providers))
	for _, provider := range params.Providers {
		providers[provider.Provider()] = provider
	}

	return &connectionService{
		txManager:      params.TxManager,
		connectionRepo: params.ConnectionRepo,
		stateStore:     params.StateStore,
		providers:      providers,
		settingsURL:    params.Config.Frontend.SettingsURL,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initiate starts a consent flow for the given provider. An unconfigured
// provider takes the simulation path: placeholder connections are stored
// immediately and the browser is sent straight back to settings.
func (srv *connectionService) Initiate(ctx context.Context, userID uuid.UUID, provider entity.ExternalProvider) (*usecase.RedirectOutput, error) {
	oauthProvider, ok := srv.providers[provider]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrUnknownProvider, "no such provider: %s", provider)
	}

	if !oauthProvider.Configured() {
		srv.log(ctx).Info("Provider not configured, taking simulation path",
			slog.Any("userID", userID), slog.String("provider", string(provider)))

		return srv.connectSimulated(ctx, userID, provider)
	}

	state, err := srv.stateStore.Issue(service.OAuthFlow{UserID: userID, Provider: provider})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue oauth state")
	}

	srv.log(ctx).Info("Starting OAuth consent flow",
		slog.Any("userID", userID), slog.String("provider", string(provider)))

	return &usecase.RedirectOutput{RedirectURL: oauthProvider.BuildAuthorizationURL(state)}, nil
}

// connectSimulated stores a placeholder connection per service of the
// provider, so the rest of the app behaves as if a real consent happened.
func (srv *connectionService) connectSimulated(ctx context.Context, userID uuid.UUID, provider entity.ExternalProvider) (*usecase.RedirectOutput, error) {
	credential := entity.NewSimulatedCredential(srv.now())
	accountEmail := "simulated@" + string(provider) + ".example.com"

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connectionRepo := repoFactory.NewConnectionRepository()
		for _, svc := range entity.ServicesForProvider(provider) {
			conn := &entity.Connection{
				UserID:       userID,
				Service:      svc,
				AccountEmail: accountEmail,
				Credential:   credential,
			}
			if err := connectionRepo.Upsert(ctx, conn); err != nil {
				return errors.Wrapf(err, "failed to upsert simulated connection for %s", svc)
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store simulated connections")
	}

	return &usecase.RedirectOutput{
		RedirectURL: srv.settingsRedirect(url.Values{
			"success":   {string(provider)},
			"simulated": {"true"},
		}),
	}, nil
}

// Callback absorbs the provider's redirect. Every failure is logged and
// folded into the redirect target; the browser never sees an error page.
func (srv *connectionService) Callback(ctx context.Context, input *usecase.CallbackInput) *usecase.RedirectOutput {
	oauthProvider, ok := srv.providers[input.Provider]
	if !ok {
		srv.log(ctx).Warn("Callback for unknown provider", slog.String("provider", string(input.Provider)))

		return srv.errorRedirect(callbackErrUnknownProvider)
	}

	// The state token is single-use: consume it before anything else so a
	// replayed callback fails even when the rest of the flow would succeed.
	flow, err := srv.stateStore.Consume(input.State)
	if err != nil {
		srv.log(ctx).Warn("Callback with invalid or replayed state",
			slog.String("provider", string(input.Provider)), slog.Any("error", err))

		return srv.errorRedirect(callbackErrInvalidState)
	}
	if flow.Provider != input.Provider {
		srv.log(ctx).Warn("Callback provider does not match flow",
			slog.String("expected", string(flow.Provider)), slog.String("got", string(input.Provider)))

		return srv.errorRedirect(callbackErrInvalidState)
	}

	if input.Code == "" {
		srv.log(ctx).Warn("Callback without authorization code (user likely denied consent)",
			slog.Any("userID", flow.UserID), slog.String("provider", string(input.Provider)))

		return srv.errorRedirect(callbackErrMissingCode)
	}

	token, err := oauthProvider.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Error("Authorization code exchange failed",
			slog.Any("userID", flow.UserID), slog.String("provider", string(input.Provider)), slog.Any("error", err))

		return srv.errorRedirect(callbackErrExchangeFailed)
	}

	identity, err := oauthProvider.FetchIdentity(ctx, token.AccessToken)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve external account identity",
			slog.Any("userID", flow.UserID), slog.String("provider", string(input.Provider)), slog.Any("error", err))

		return srv.errorRedirect(callbackErrIdentityFailed)
	}

	credential := entity.Credential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.ExpiresAt,
	}
	if credential.ExpiresAt.IsZero() {
		// Provider omitted a lifetime; assume the usual one hour.
		credential.ExpiresAt = srv.now().Add(time.Hour)
	}

	// One consent grants both of the provider's services; they share the
	// same token pair and are stored atomically.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connectionRepo := repoFactory.NewConnectionRepository()
		for _, svc := range entity.ServicesForProvider(input.Provider) {
			conn := &entity.Connection{
				UserID:       flow.UserID,
				Service:      svc,
				AccountEmail: identity.Email,
				Credential:   credential,
			}
			if err := connectionRepo.Upsert(ctx, conn); err != nil {
				return errors.Wrapf(err, "failed to upsert connection for %s", svc)
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store connections after callback",
			slog.Any("userID", flow.UserID), slog.String("provider", string(input.Provider)), slog.Any("error", err))

		return srv.errorRedirect(callbackErrStoreFailed)
	}

	srv.log(ctx).Info("Connection established",
		slog.Any("userID", flow.UserID),
		slog.String("provider", string(input.Provider)),
		slog.String("accountEmail", identity.Email))

	return &usecase.RedirectOutput{
		RedirectURL: srv.settingsRedirect(url.Values{"success": {string(input.Provider)}}),
	}
}

// Disconnect removes the connection for (user, service) and best-effort
// removes the paired sibling. Disconnecting an absent service succeeds.
func (srv *connectionService) Disconnect(ctx context.Context, userID uuid.UUID, service entity.ServiceType) error {
	err := srv.connectionRepo.DeleteByUserAndService(ctx, userID, service)
	if err != nil && !errors.Is(err, repository.ErrConnectionNotFound) {
		return errors.Wrapf(err, "failed to disconnect %s", service)
	}

	if paired, ok := entity.PairedService(service); ok {
		if err := srv.connectionRepo.DeleteByUserAndService(ctx, userID, paired); err != nil &&
			!errors.Is(err, repository.ErrConnectionNotFound) {
			// The named service is already gone; log and keep the success.
			srv.log(ctx).Warn("Failed to remove paired connection",
				slog.Any("userID", userID), slog.String("service", string(paired)), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Disconnected service",
		slog.Any("userID", userID), slog.String("service", string(service)))

	return nil
}

// List returns all of the user's connections in stable service order.
func (srv *connectionService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Connection, error) {
	connections, err := srv.connectionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	return connections, nil
}

func (srv *connectionService) errorRedirect(code string) *usecase.RedirectOutput {
	return &usecase.RedirectOutput{
		RedirectURL: srv.settingsRedirect(url.Values{"error": {code}}),
	}
}

func (srv *connectionService) settingsRedirect(query url.Values) string {
	separator := "?"
	if u, err := url.Parse(srv.settingsURL); err == nil && u.RawQuery != "" {
		separator = "&"
	}

	return srv.settingsURL + separator + query.Encode()
}
