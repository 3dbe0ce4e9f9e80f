package main

import (
	"context"
	"log/slog"
	"os"

	"gatekeeper/config"
	"gatekeeper/internal/delivery"
	"gatekeeper/internal/delivery/http"
	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/router/handler"
	"gatekeeper/internal/delivery/telegram"
	"gatekeeper/internal/delivery/worker"
	"gatekeeper/internal/infra/auth"
	logs "gatekeeper/internal/infra/log"
	"gatekeeper/internal/infra/notification"
	"gatekeeper/internal/infra/persistence/postgres"
	"gatekeeper/internal/infra/pubsub"
	"gatekeeper/internal/infra/qrcode"
	"gatekeeper/internal/infra/revocation"
	"gatekeeper/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		notification.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewInvitationRepository,
			postgres.NewRevokedTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			revocation.NewStore,
			qrcode.NewFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewInvitationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRefreshCookie,
			handler.NewSessionHandler,
			handler.NewRegistrationHandler,
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
			fx.Annotate(
				telegram.NewBot,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
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
