package main

import (
	"context"
	"log/slog"
	"os"

	"pulse/config"
	"pulse/internal/delivery"
	"pulse/internal/delivery/http"
	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/router/handler"
	"pulse/internal/infra/auth"
	"pulse/internal/infra/completion"
	"pulse/internal/infra/crypto"
	"pulse/internal/infra/gateway/google"
	microsoftgateway "pulse/internal/infra/gateway/microsoft"
	logs "pulse/internal/infra/log"
	"pulse/internal/infra/oauth"
	googleoauth "pulse/internal/infra/oauth/google"
	microsoftoauth "pulse/internal/infra/oauth/microsoft"
	"pulse/internal/infra/persistence/postgres"
	"pulse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		crypto.NewTokenCipher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewConnectionRepository,
			postgres.NewEmailRepository,
			postgres.NewEventRepository,
			postgres.NewBriefRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			oauth.NewMemoryStateStore,
			completion.New,
			fx.Annotate(
				googleoauth.NewProvider,
				fx.ResultTags(`group:"oauth_providers"`),
			),
			fx.Annotate(
				microsoftoauth.NewProvider,
				fx.ResultTags(`group:"oauth_providers"`),
			),
			fx.Annotate(
				google.NewGateway,
				fx.ResultTags(`group:"provider_gateways"`),
			),
			fx.Annotate(
				microsoftgateway.NewGateway,
				fx.ResultTags(`group:"provider_gateways"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewConnectionService,
			impl.NewProviderClientService,
			impl.NewMailboxService,
			impl.NewCalendarService,
			impl.NewBriefService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewConnectionHandler,
			handler.NewMailboxHandler,
			handler.NewCalendarHandler,
			handler.NewBriefHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
