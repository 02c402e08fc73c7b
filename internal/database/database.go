package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studentdash/internal/config"
)

// InitDB opens the configured store and brings it to the seeded state.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	seeds := DefaultSeeds()
	if cfg.SeedDir != "" {
		seeds, err = LoadSeedDir(cfg.SeedDir)
		if err != nil {
			Close(db)
			return nil, err
		}
	}

	if err := Bootstrap(db, seeds); err != nil {
		Close(db)
		return nil, err
	}
	return db, nil
}

var memorySeq atomic.Int64

// memoryDSN names a private in-memory database that every pooled connection
// of one Open shares. A plain ":memory:" gives each connection its own empty
// database.
func memoryDSN() string {
	return fmt.Sprintf("file:studentdash-mem-%d?mode=memory&cache=shared&_foreign_keys=on", memorySeq.Add(1))
}

// Open connects to the store without touching the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	inMemory := cfg.DBDriver == config.DriverSQLite && cfg.DBPath == config.MemoryPath
	switch cfg.DBDriver {
	case config.DriverSQLite:
		if inMemory {
			dialector = sqlite.Open(memoryDSN())
			break
		}
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLiteDSN())
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger(cfg.LogLevel)})
	if err != nil {
		return nil, fmt.Errorf("connect to %s database: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		closePool(db.ConnPool)
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxOpenConns)
	if inMemory {
		// the shared database is dropped once its last connection closes
		sqlDB.SetMaxIdleConns(max(cfg.DBMaxOpenConns, 1))
		sqlDB.SetConnMaxIdleTime(0)
	} else {
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Println("Error closing database:", err)
	}
}

func closePool(pool gorm.ConnPool) {
	if c, ok := pool.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			log.Println("Error closing database:", err)
		}
	}
}

func newLogger(level string) logger.Interface {
	lvl := logger.Warn
	switch level {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}
	return logger.Default.LogMode(lvl)
}
