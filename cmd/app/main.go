package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	apiHttp "github.com/vibe-gaming/hbnb/internal/api/http"
	"github.com/vibe-gaming/hbnb/internal/config"
	"github.com/vibe-gaming/hbnb/internal/metrics"
	"github.com/vibe-gaming/hbnb/internal/server"
	"github.com/vibe-gaming/hbnb/internal/service"
	"github.com/vibe-gaming/hbnb/internal/storage"
	"github.com/vibe-gaming/hbnb/internal/storage/engine"
	"github.com/vibe-gaming/hbnb/pkg/hash"
	"github.com/vibe-gaming/hbnb/pkg/logger"
	"github.com/vibe-gaming/hbnb/pkg/validator"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger, err := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger setup failed: %s", err)
	}
	defer logger.Sync()

	appLogger.Info("starting hbnb api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	var (
		appMetrics *metrics.Metrics
		storeOpts  []storage.Option
	)
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New(metrics.WithNamespace(cfg.Metrics.Namespace))
		storeOpts = append(storeOpts, storage.WithRecorder(appMetrics))
	}

	// Init storage
	provider, err := engine.Open(cfg, storeOpts...)
	if err != nil {
		appLogger.Error("storage open problem", zap.String("type", cfg.Storage.Type), zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := provider.Close(); err != nil {
			appLogger.Error("error when closing storage", zap.Error(err))
		}
	}()
	appLogger.Info("storage ready", zap.String("engine", provider.Engine()))

	hasher := hash.NewSHA256Hasher(cfg.Auth.PasswordSalt)

	// Services & API Handlers
	services := service.NewServices(service.Deps{
		Hasher:    hasher,
		Validator: validator.New(),
	})
	handlers := apiHttp.NewHandlers(services, provider, appMetrics)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("host", cfg.HttpServer.Host), zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
