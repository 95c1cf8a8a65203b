package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KakonDebnath/bistro-boss-server/internal/di"
	"github.com/KakonDebnath/bistro-boss-server/internal/repository"
	"github.com/KakonDebnath/bistro-boss-server/internal/router"
	"github.com/KakonDebnath/bistro-boss-server/internal/service"
	"github.com/KakonDebnath/bistro-boss-server/pkg/config"
	"github.com/KakonDebnath/bistro-boss-server/pkg/database"
	"github.com/KakonDebnath/bistro-boss-server/pkg/logger"
	"github.com/KakonDebnath/bistro-boss-server/pkg/mongodb"
	"github.com/KakonDebnath/bistro-boss-server/pkg/redis"
	"github.com/KakonDebnath/bistro-boss-server/pkg/telemetry"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.App.LogLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()

	appLog.Info("Starting Bistro Boss server...", zap.String("storage", cfg.Storage.Driver))

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn("Failed to initialize telemetry", zap.Error(err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	// Connect the document store
	containerCfg := &di.ContainerConfig{
		Storage: cfg.Storage.Driver,
		TokenConfig: &service.TokenServiceConfig{
			Secret: cfg.JWT.Secret,
		},
	}

	switch cfg.Storage.Driver {
	case config.StorageMongoDB:
		mongoDB, err := connectMongo(ctx, cfg)
		if err != nil {
			appLog.Fatal("MongoDB connection failed", zap.Error(err))
		}
		defer mongoDB.Close(context.Background())
		appLog.Info("Pinged your deployment. Connected to MongoDB", zap.String("database", cfg.MongoDB.Database))
		containerCfg.Mongo = mongoDB
	case config.StoragePostgres:
		pgDB, err := connectPostgres(ctx, cfg)
		if err != nil {
			appLog.Fatal("PostgreSQL connection failed", zap.Error(err))
		}
		defer pgDB.Close()
		appLog.Info("Connected to PostgreSQL", zap.String("database", cfg.Database.DBName))
		containerCfg.Postgres = pgDB
	case config.StorageMemory:
		appLog.Warn("Using in-memory storage, data is lost on restart")
	}

	// Build dependency injection container
	container, err := di.NewContainer(containerCfg)
	if err != nil {
		appLog.Fatal("Failed to build container", zap.Error(err))
	}

	routerOpts := router.Options{
		Logger:            appLog,
		Tracing:           cfg.OTel.Enabled,
		ProtectRoleRoutes: cfg.Auth.ProtectRoleRoutes,
	}

	// Optional Redis for idempotent writes
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &redis.Config{
			Host:          cfg.Redis.Host,
			Port:          cfg.Redis.Port,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.DB,
			PoolSize:      cfg.Redis.PoolSize,
			MinIdleConns:  cfg.Redis.MinIdleConns,
			DialTimeout:   cfg.Redis.DialTimeout,
			ReadTimeout:   cfg.Redis.ReadTimeout,
			WriteTimeout:  cfg.Redis.WriteTimeout,
			MaxRetries:    3,
			RetryInterval: time.Second,
		})
		if err != nil {
			appLog.Warn("Redis unavailable, idempotency disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			routerOpts.Idempotency = redisClient
			routerOpts.IdempotencyTTL = cfg.Redis.IdempotencyTTL
			appLog.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
		}
	}

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(container, routerOpts)

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           engine,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("listening on port %d", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	appLog.Info("Server exited gracefully")
}

func connectMongo(ctx context.Context, cfg *config.Config) (*mongodb.DB, error) {
	mongoCfg := mongodb.DefaultConfig()
	mongoCfg.URI = cfg.MongoDB.ConnectionURI()
	mongoCfg.Database = cfg.MongoDB.Database
	if cfg.MongoDB.ConnectTimeout > 0 {
		mongoCfg.ConnectTimeout = cfg.MongoDB.ConnectTimeout
	}

	db, err := mongodb.Connect(ctx, mongoCfg)
	if err != nil {
		return nil, err
	}
	if err := repository.NewMongoUserRepository(db.Database()).EnsureIndexes(ctx); err != nil {
		_ = db.Close(context.Background())
		return nil, err
	}
	return db, nil
}

func connectPostgres(ctx context.Context, cfg *config.Config) (*database.PostgresDB, error) {
	pgCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}

	db, err := database.NewPostgres(ctx, pgCfg)
	if err != nil {
		return nil, err
	}
	if err := repository.EnsureSchema(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
