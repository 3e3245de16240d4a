package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowmart/admin-service/config"
	"github.com/glowmart/admin-service/internal/auth"
	categoryhandler "github.com/glowmart/admin-service/internal/category/handler"
	categoryrepo "github.com/glowmart/admin-service/internal/category/repository"
	categoryusecase "github.com/glowmart/admin-service/internal/category/usecase"
	contenthandler "github.com/glowmart/admin-service/internal/content/handler"
	contentrepo "github.com/glowmart/admin-service/internal/content/repository"
	contentusecase "github.com/glowmart/admin-service/internal/content/usecase"
	dealhandler "github.com/glowmart/admin-service/internal/deal/handler"
	"github.com/glowmart/admin-service/internal/deal/listener"
	dealrepo "github.com/glowmart/admin-service/internal/deal/repository"
	dealusecase "github.com/glowmart/admin-service/internal/deal/usecase"
	expensehandler "github.com/glowmart/admin-service/internal/expense/handler"
	expenserepo "github.com/glowmart/admin-service/internal/expense/repository"
	expenseusecase "github.com/glowmart/admin-service/internal/expense/usecase"
	producthandler "github.com/glowmart/admin-service/internal/product/handler"
	productrepo "github.com/glowmart/admin-service/internal/product/repository"
	productusecase "github.com/glowmart/admin-service/internal/product/usecase"
	"github.com/glowmart/admin-service/internal/server"
	supplierhandler "github.com/glowmart/admin-service/internal/supplier/handler"
	supplierrepo "github.com/glowmart/admin-service/internal/supplier/repository"
	supplierusecase "github.com/glowmart/admin-service/internal/supplier/usecase"
	"github.com/glowmart/admin-service/internal/upload"
	uploadhandler "github.com/glowmart/admin-service/internal/upload/handler"
	userhandler "github.com/glowmart/admin-service/internal/user/handler"
	userrepo "github.com/glowmart/admin-service/internal/user/repository"
	userusecase "github.com/glowmart/admin-service/internal/user/usecase"
	"github.com/glowmart/admin-service/pkg/broker"
	"github.com/glowmart/admin-service/pkg/cache"
	"github.com/glowmart/admin-service/pkg/logger"
	"github.com/glowmart/admin-service/pkg/postgres"
	"github.com/glowmart/admin-service/pkg/search"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	godotenv.Load()

	cfg := config.LoadEnv()

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv != "production",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	appLogger.Info("starting admin service", zap.String("env", cfg.Server.AppEnv))

	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("redis connection failed", zap.Error(err))
	}
	defer redisClient.Client.Close()

	// Search is optional: product listing falls back to SQL when nil.
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("elasticsearch unavailable, search disabled", zap.Error(err))
		esClient = nil
	}

	tokens := auth.NewTokenManager(cfg.JWT.SecretKey, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	userUC := userusecase.NewUserUseCase(userrepo.NewPGRepository(db), tokens, appLogger)
	categoryUC := categoryusecase.NewCategoryUseCase(categoryrepo.NewPGRepository(db), appLogger)
	productUC := productusecase.NewProductUseCase(productrepo.NewPGRepository(db), redisClient, esClient, appLogger)
	dealUC := dealusecase.NewDealUseCase(dealrepo.NewPGRepository(db), redisClient, appLogger)
	expenseUC := expenseusecase.NewExpenseUseCase(expenserepo.NewPGRepository(db), appLogger)
	supplierUC := supplierusecase.NewSupplierUseCase(supplierrepo.NewPGRepository(db), appLogger)
	contentUC := contentusecase.NewContentUseCase(contentrepo.NewPGRepository(db), appLogger)

	uploader := upload.NewUploader(
		cfg.CDN.UploadURL,
		cfg.CDN.UploadPreset,
		time.Duration(cfg.CDN.TimeoutSeconds)*time.Second,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer consumer.Close()

	purchases := listener.NewPurchaseListener(consumer, dealUC, appLogger)
	go purchases.Start(ctx)

	srv := server.New(cfg, tokens, &server.Handlers{
		User:     userhandler.NewUserHandler(userUC, appLogger),
		Category: categoryhandler.NewCategoryHandler(categoryUC, appLogger),
		Product:  producthandler.NewProductHandler(productUC, appLogger),
		Deal:     dealhandler.NewDealHandler(dealUC, appLogger),
		Expense:  expensehandler.NewExpenseHandler(expenseUC, appLogger),
		Supplier: supplierhandler.NewSupplierHandler(supplierUC, appLogger),
		Content:  contenthandler.NewContentHandler(contentUC, appLogger),
		Upload:   uploadhandler.NewUploadHandler(uploader, appLogger),
	})

	go func() {
		appLogger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil {
			appLogger.Error("http server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
