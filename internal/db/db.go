package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"larder/internal/config"
	applog "larder/internal/log"
	"larder/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const pingTimeout = 5 * time.Second

var (
	mu sync.RWMutex
	DB *gorm.DB
)

// Dialector picks the gorm driver for url: postgres for postgres:// and
// postgresql:// URLs, sqlite for anything else (a file path or file: DSN).
func Dialector(url string) gorm.Dialector {
	if isPostgres(url) {
		return postgres.Open(url)
	}
	return sqlite.Open(url)
}

func isPostgres(url string) bool {
	lower := strings.ToLower(strings.TrimSpace(url))
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// GormConfig returns the settings shared by every connection the module opens.
func GormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(level),
		NamingStrategy:         schema.NamingStrategy{},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Initialize opens the database named by cfg.URL, applies the pool limits and
// checks that it answers.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("database URL must not be empty")
	}

	database, err := gorm.Open(Dialector(cfg.URL), GormConfig(logger.Warn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	applyPool(sqlDB, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping database: %w", err), Close(database))
	}

	applog.Debug(ctx, "database connection ready",
		"driver", database.Dialector.Name(),
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)
	return database, nil
}

// applyPool sets only the limits that were configured; zero keeps the driver default.
func applyPool(sqlDB *sql.DB, cfg config.DatabaseConfig) {
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}

// AutoMigrate creates or updates the recipe book tables.
func AutoMigrate(database *gorm.DB) error {
	if database == nil {
		return errors.New("database handle is nil")
	}

	if err := database.AutoMigrate(
		&models.PantryItem{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipeStep{},
	); err != nil {
		return fmt.Errorf("migrate recipe book tables: %w", err)
	}
	return nil
}

// Configure initializes and migrates the database and makes it the package default.
func Configure(cfg config.DatabaseConfig) (*gorm.DB, error) {
	database, err := Initialize(cfg)
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(database); err != nil {
		return nil, errors.Join(err, Close(database))
	}

	mu.Lock()
	DB = database
	mu.Unlock()

	return database, nil
}

// Close releases the connection pool behind database. A nil handle is a no-op.
func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

func MustConfigure(cfg config.DatabaseConfig) *gorm.DB {
	database, err := Configure(cfg)
	if err != nil {
		panic(err)
	}
	return database
}

// Get returns the database set by Configure, or nil.
func Get() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return DB
}
