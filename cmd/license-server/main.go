package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-desktop/config"
	"github.com/fekuna/omnipos-desktop/internal/licenseserver"
	"github.com/fekuna/omnipos-desktop/internal/licenseserver/handler"
	"github.com/fekuna/omnipos-desktop/internal/licenseserver/repository"
	"github.com/fekuna/omnipos-desktop/internal/licenseserver/usecase"
	"github.com/fekuna/omnipos-desktop/internal/store"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	logConfig := &logger.ZapLoggerConfig{
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	db, err := store.OpenWithSchema(cfg.LicenseServer.DBPath, licenseserver.Schema, appLogger)
	if err != nil {
		appLogger.Fatal("Could not open license database", zap.Error(err))
	}
	defer db.Close()

	if cfg.LicenseServer.AdminAPIKey == "" {
		appLogger.Warn("LICENSE_ADMIN_API_KEY is empty, admin routes are disabled")
	}

	uc := usecase.NewLicenseServerUseCase(repository.NewSQLiteRepository(db), appLogger)
	e := handler.NewRouter(handler.NewLicenseHandler(uc, appLogger), cfg.LicenseServer.AdminAPIKey, appLogger)

	appLogger.Info("Starting license server", zap.String("addr", cfg.LicenseServer.Addr))
	go func() {
		if err := e.Start(cfg.LicenseServer.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		appLogger.Error("shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
