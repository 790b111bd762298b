package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/fekuna/omnipos-desktop/config"
	"github.com/fekuna/omnipos-desktop/internal/idgen"
	"github.com/fekuna/omnipos-desktop/internal/license"
	"github.com/fekuna/omnipos-desktop/internal/rpc"
	"github.com/fekuna/omnipos-desktop/internal/store"
	"github.com/fekuna/omnipos-desktop/pkg/logger"

	catH "github.com/fekuna/omnipos-desktop/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-desktop/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-desktop/internal/category/usecase"

	licH "github.com/fekuna/omnipos-desktop/internal/license/handler"
	licRepoPkg "github.com/fekuna/omnipos-desktop/internal/license/repository"
	licUCPkg "github.com/fekuna/omnipos-desktop/internal/license/usecase"

	orderH "github.com/fekuna/omnipos-desktop/internal/order/handler"
	orderRepoPkg "github.com/fekuna/omnipos-desktop/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-desktop/internal/order/usecase"

	prodH "github.com/fekuna/omnipos-desktop/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-desktop/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-desktop/internal/product/usecase"

	tableH "github.com/fekuna/omnipos-desktop/internal/table/handler"
	tableRepoPkg "github.com/fekuna/omnipos-desktop/internal/table/repository"
	tableUCPkg "github.com/fekuna/omnipos-desktop/internal/table/usecase"

	transferH "github.com/fekuna/omnipos-desktop/internal/transfer/handler"
	transferRepoPkg "github.com/fekuna/omnipos-desktop/internal/transfer/repository"
	transferUCPkg "github.com/fekuna/omnipos-desktop/internal/transfer/usecase"

	userH "github.com/fekuna/omnipos-desktop/internal/user/handler"
	userRepoPkg "github.com/fekuna/omnipos-desktop/internal/user/repository"
	userUCPkg "github.com/fekuna/omnipos-desktop/internal/user/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

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

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		appLogger.Fatal("Could not create data directory", zap.String("dir", cfg.Storage.DataDir), zap.Error(err))
	}

	db, err := store.Open(cfg.DatabasePath(), appLogger)
	if err != nil {
		appLogger.Fatal("Could not open database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Opened local database", zap.String("path", db.Path()))

	ids, err := idgen.NewNode(cfg.Server.NodeID)
	if err != nil {
		appLogger.Fatal("Invalid node id", zap.Int64("node_id", cfg.Server.NodeID), zap.Error(err))
	}

	// Repositories
	catRepo := catRepoPkg.NewSQLiteRepository(db)
	prodRepo := prodRepoPkg.NewSQLiteRepository(db)
	orderRepo := orderRepoPkg.NewSQLiteRepository(db)
	tableRepo := tableRepoPkg.NewSQLiteRepository(db)
	userRepo := userRepoPkg.NewSQLiteRepository(db)
	transferRepo := transferRepoPkg.NewSQLiteRepository(db)
	licRepo := licRepoPkg.NewSQLiteRepository(db)

	// UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, ids, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, ids, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, ids, appLogger)
	tableUC := tableUCPkg.NewTableUseCase(tableRepo, ids, appLogger)
	userUC := userUCPkg.NewUserUseCase(userRepo, ids, appLogger)
	transferUC := transferUCPkg.NewTransferUseCase(transferRepo, transferUCPkg.Repositories{
		Products:   prodRepo,
		Categories: catRepo,
		Orders:     orderRepo,
		Tables:     tableRepo,
		Users:      userRepo,
	}, appLogger)
	licUC := licUCPkg.NewLicenseUseCase(
		licRepo,
		license.NewHTTPClient(cfg.License.ServerURL),
		license.NewNetFingerprinter(),
		appLogger,
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("addr", cfg.Server.GRPCAddr), zap.Error(err))
	}

	grpcServer := rpc.NewServer(appLogger)

	catH.Register(grpcServer, catH.NewCategoryHandler(catUC, appLogger))
	prodH.Register(grpcServer, prodH.NewProductHandler(prodUC, appLogger))
	orderH.Register(grpcServer, orderH.NewOrderHandler(orderUC, appLogger))
	tableH.Register(grpcServer, tableH.NewTableHandler(tableUC, appLogger))
	userH.Register(grpcServer, userH.NewUserHandler(userUC, appLogger))
	transferH.Register(grpcServer, transferH.NewTransferHandler(transferUC, appLogger))
	licH.Register(grpcServer, licH.NewLicenseHandler(licUC, appLogger))

	appLogger.Info("Starting gRPC server", zap.String("addr", lis.Addr().String()))

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
