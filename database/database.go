package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"project/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init initializes the database connection.
// It uses the DSN from the application config. "memory" (or an empty DSN)
// selects a shared in-memory SQLite database; anything else is treated as a
// file path.
func Init() (*gorm.DB, error) {
	dsn := config.AppConfig.Database.DSN

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	gormConfig := &gorm.Config{
		Logger: gormLogger,
	}

	var db *gorm.DB
	var err error

	if dsn == "memory" || dsn == "" {
		log.Println("INFO: [Database] Initializing in-memory SQLite database.")
		// cache=shared keeps every connection of the pool on the same database
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormConfig)
	} else {
		log.Printf("INFO: [Database] Initializing file-based SQLite database at '%s'.", dsn)
		dbDir := filepath.Dir(dsn)
		if dbDir != "." && dbDir != "/" {
			if _, statErr := os.Stat(dbDir); os.IsNotExist(statErr) {
				if mkdirErr := os.MkdirAll(dbDir, 0755); mkdirErr != nil {
					return nil, fmt.Errorf("failed to create database directory '%s': %w", dbDir, mkdirErr)
				}
			}
		}
		db, err = gorm.Open(sqlite.Open(dsn), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	log.Println("INFO: [Database] Database connection established.")
	return db, nil
}
