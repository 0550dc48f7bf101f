package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"combo-catalog/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Service owns the connection pool shared by gorm and the migration runner
type Service interface {
	// DB returns the underlying connection pool
	DB() *sql.DB
	// Gorm returns an ORM session bound to the pool
	Gorm() *gorm.DB
	// Health reports connectivity and pool statistics
	Health(ctx context.Context) map[string]string
	Close() error
}

type service struct {
	db   *sql.DB
	gorm *gorm.DB
}

// New opens the pgx-backed pool described by cfg and binds gorm to it
func New(cfg config.DatabaseConfig, logger *zap.Logger) (Service, error) {
	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gormDB, err := OpenGorm(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Connected to database",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database),
	)

	return &service{db: db, gorm: gormDB}, nil
}

// OpenGorm wraps an existing pool in a gorm session using the postgres dialect
func OpenGorm(db *sql.DB, logger *zap.Logger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger:                 NewGormLogger(logger),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}
	return gormDB, nil
}

func (s *service) DB() *sql.DB {
	return s.db
}

func (s *service) Gorm() *gorm.DB {
	return s.gorm
}

func (s *service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = err.Error()
		return stats
	}

	dbStats := s.db.Stats()
	stats["status"] = "up"
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	return stats
}

func (s *service) Close() error {
	return s.db.Close()
}
