package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"goveggie/config"
	"goveggie/internal/delivery"
	"goveggie/internal/delivery/http"
	"goveggie/internal/delivery/http/middleware"
	"goveggie/internal/delivery/http/router/handler"
	"goveggie/internal/domain/service"
	"goveggie/internal/infra/auth"
	logs "goveggie/internal/infra/log"
	"goveggie/internal/infra/media"
	"goveggie/internal/infra/notification"
	"goveggie/internal/infra/persistence/postgres"
	"goveggie/internal/infra/pubsub"
	"goveggie/internal/infra/qrcode"
	"goveggie/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRestaurantRepository,
			postgres.NewFavoriteRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewRegionRepository,
			postgres.NewTagRepository,
			postgres.NewNoticeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newPushService,
			newQRCodeService,
			media.NewBlobStore,
			media.NewLegacyPhotoFetcher,
		),
		pubsub.Module,
	)
}

// newPushService creates the Firebase push service, or a no-op one when
// Firebase is not configured so broadcasts still persist notification rows.
func newPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return notification.NewNoopService(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewRestaurantService,
			impl.NewFavoriteService,
			impl.NewNotificationService,
			impl.NewAdminService,
			impl.NewDirectoryService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRestaurantHandler,
			handler.NewFavoriteHandler,
			handler.NewNotificationHandler,
			handler.NewAdminHandler,
			handler.NewDirectoryHandler,
			handler.NewMediaHandler,
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
