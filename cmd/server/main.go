package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"backend-tracking/internal/config"
	"backend-tracking/internal/infra/database"
	"backend-tracking/internal/infra/persistence/postgres"
	httpapi "backend-tracking/internal/interface/http"
	productuc "backend-tracking/internal/usecase/product"
	useruc "backend-tracking/internal/usecase/user"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := database.RunMigrations(cfg.DatabaseDSN); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	db, err := database.NewDB(context.Background(), cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(context.Background()); err != nil {
		logger.Fatal("database ping failed", zap.Error(err))
	}

	api := httpapi.NewAPI(httpapi.Dependencies{
		ProductService: productuc.NewService(postgres.NewProductRepository(db.Pool), logger),
		UserService:    useruc.NewService(postgres.NewUserRepository(db.Pool), logger),
	})

	logger.Info("server listening", zap.String("address", cfg.ServerAddress))
	if err := http.ListenAndServe(cfg.ServerAddress, api.Router()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
