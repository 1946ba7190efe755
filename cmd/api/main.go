package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ponto_eletronica/internal/adapter/http/handlers"
	"ponto_eletronica/internal/adapter/http/routes"
	"ponto_eletronica/internal/adapter/persistence/repository"
	"ponto_eletronica/internal/infrastructure/config"
	"ponto_eletronica/internal/infrastructure/database"
	"ponto_eletronica/internal/infrastructure/document"
	"ponto_eletronica/internal/infrastructure/logger"
	"ponto_eletronica/internal/usecase"
	"ponto_eletronica/internal/usecase/form"
	"ponto_eletronica/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// @title           Ponto da Eletrônica API
// @version         1.0
// @description     Service orders, quotes and printable documents of a repair shop.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load configuration")
	}

	logger.Init(cfg.LogLevel)
	if cfg.IsDevelopment() {
		logger.SetTextFormatter()
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	log := logger.Component("main")

	slot, err := newSlot(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to prepare storage")
	}

	store := usecase.NewServiceOrderUseCase(slot, logger.Log)
	store.Load(ctx)

	generator, err := document.NewGenerator(document.Options{
		Locale:   cfg.DocumentLocale,
		ShopName: cfg.ShopName,
		Tagline:  cfg.ShopTagline,
		Log:      logger.Log,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to prepare document generator")
	}

	drafts := form.NewDrafts(form.DraftsOptions{
		TTL: cfg.DraftTTL,
		Max: cfg.MaxDrafts,
	})

	router := routes.NewRouter(routes.Handlers{
		Ping:          handlers.NewPingHandler(store),
		ServiceOrders: handlers.NewServiceOrderHandler(store, generator, logger.Log),
		Drafts: handlers.NewDraftHandler(store, drafts, form.Options{
			MaxImageBytes: cfg.MaxImageBytes,
			Log:           logger.Log,
		}),
	})

	if err := routes.Run(ctx, ":"+cfg.HTTPPort, router); err != nil {
		log.WithError(err).Error("failed to startup the application")
		os.Exit(1)
	}
}

func newSlot(ctx context.Context, cfg *config.Config) (interfaces.IServiceOrderSlot, error) {
	log := logger.Component("storage").WithField("driver", cfg.StorageDriver)

	if cfg.StorageDriver == config.StorageDriverDynamoDB {
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		log.WithField("table", cfg.SlotsTable).Info("using dynamodb slot")
		return repository.NewServiceOrderDynamoSlot(ddb, cfg.SlotsTable, cfg.SlotKey), nil
	}

	slot, err := repository.NewServiceOrderFileSlot(cfg.DataDir, cfg.SlotKey)
	if err != nil {
		return nil, err
	}
	log.WithField("path", slot.Path()).Info("using file slot")
	return slot, nil
}
