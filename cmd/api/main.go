package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"combo-catalog/internal/config"
	"combo-catalog/internal/database"
	"combo-catalog/internal/logger"
	"combo-catalog/internal/repository"
	"combo-catalog/internal/seed"
	"combo-catalog/internal/server"
	"combo-catalog/internal/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 30 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")

	done <- true
}

func seedCatalog(ctx context.Context, dbService database.Service, log *zap.Logger) error {
	gormDB := dbService.Gorm()
	categoryRepo := repository.NewCategoryRepository(gormDB)

	_, err := seed.Run(ctx, categoryRepo, seed.Catalog{
		Categories: service.NewCategoryService(categoryRepo),
		Products:   service.NewProductService(repository.NewProductRepository(gormDB)),
		Combos:     service.NewComboService(repository.NewComboRepository(gormDB)),
	}, log)
	return err
}

func newRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func main() {
	migrationStatus := flag.Bool("migration-status", false, "print the migration status and exit")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env, cfg.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting combo catalog API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	dbService, err := database.New(cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if *migrationStatus {
		states, err := database.GetMigrationStatus(context.Background(), dbService.DB(), cfg.Database.MigrationsDir)
		if err != nil {
			log.Fatal("Failed to read migration status", zap.Error(err))
		}
		for _, state := range states {
			log.Info("Migration",
				zap.Int64("version", state.Version),
				zap.String("path", state.Path),
				zap.Bool("applied", state.Applied),
				zap.Time("applied_at", state.AppliedAt),
			)
		}
		dbService.Close()
		return
	}

	log.Info("Database health check", zap.Any("health", dbService.Health(context.Background())))

	if err := database.RunMigrations(context.Background(), dbService.DB(), cfg.Database.MigrationsDir, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	if cfg.Seed.OnEmpty {
		if err := seedCatalog(context.Background(), dbService, log); err != nil {
			log.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = newRedisClient(cfg.Redis)
	}

	srv := server.NewServer(server.Dependencies{
		Config:   cfg,
		Logger:   log,
		Database: dbService,
		Redis:    redisClient,
	})

	if err := srv.Ping(context.Background()); err != nil {
		// the limiter fails open, so an unreachable redis is not fatal
		log.Warn("Redis unreachable, rate limiting is inactive", zap.Error(err))
	}

	done := make(chan bool, 1)

	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}
