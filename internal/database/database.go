package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/pkg/config"
	applog "github.com/killallgit/segment-editor/pkg/logger"
)

type DB struct {
	*gorm.DB
}

// Models lists the tables owned by the application
func Models() []any {
	return []any{&models.Media{}, &models.SegmentRecord{}, &models.BlobRecord{}}
}

// Initialize opens a sqlite database at dbPath
func Initialize(dbPath string, verbose bool) (*DB, error) {
	return Open(config.DatabaseConfig{Driver: "sqlite", Path: dbPath, Verbose: verbose})
}

// Open creates a new database connection for the configured driver
func Open(cfg config.DatabaseConfig) (*DB, error) {
	// Configure GORM logger
	logLevel := logger.Error
	if cfg.Verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Driver) {
	case "", "sqlite":
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(cfg.Path)
	case "mysql":
		if cfg.DSN == "" {
			return nil, fmt.Errorf("mysql driver requires database.dsn")
		}
		dialector = mysql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	maxOpen, maxIdle, lifetime := 100, 10, time.Hour
	if cfg.MaxConnections > 0 {
		maxOpen = cfg.MaxConnections
	}
	if cfg.MaxIdleConnections > 0 {
		maxIdle = cfg.MaxIdleConnections
	}
	if cfg.ConnectionMaxLifetime > 0 {
		lifetime = cfg.ConnectionMaxLifetime
	}
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(lifetime)

	if db.Dialector.Name() == "sqlite" {
		if cfg.EnableWAL {
			if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
				return nil, fmt.Errorf("failed to enable WAL: %w", err)
			}
		}
		if cfg.EnableForeignKeys {
			if err := db.Exec("PRAGMA foreign_keys=ON").Error; err != nil {
				return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
			}
		}
	}

	return &DB{DB: db}, nil
}

// InitializeWithMigrations opens the configured database and migrates the
// application tables
func InitializeWithMigrations(cfg config.DatabaseConfig) (*DB, error) {
	if strings.ToLower(cfg.Driver) != "mysql" && cfg.Path == "" {
		return nil, fmt.Errorf("database path is not configured")
	}
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureDir(dbPath string) error {
	if dbPath == "" || dbPath == ":memory:" || strings.HasPrefix(dbPath, "file:") {
		return nil
	}
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	applog.Named("database").Info("migrated models", zap.Int("count", len(models)))
	return nil
}
