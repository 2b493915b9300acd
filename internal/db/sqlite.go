package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/models"
)

// NewSQLite открывает базу SQLite по заданному пути и мигрирует схему.
func NewSQLite(dbPath string, log *zap.Logger) (*Storage, error) {
	conn, connErr := connectSQLite(dbPath, log)
	if connErr != nil {
		return nil, fmt.Errorf("init database error: %w", connErr)
	}
	if migrateErr := MigrateSQLite(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	// SQLite не поддерживает конкурентную запись, поэтому держим одно соединение.
	sqlDB.SetMaxOpenConns(1)

	return &Storage{
		Type:    StorageTypeSQLite,
		SQL:     conn,
		closers: []func() error{sqlDB.Close},
	}, nil
}

func connectSQLite(dbPath string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true, Logger: newGormLogger(log)})
	if err != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, err)
	}
	return db, nil
}

// MigrateSQLite создает таблицы по моделям.
func MigrateSQLite(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Link{}, &models.AccessLog{}); err != nil {
		return fmt.Errorf("migrating sql: %w", err)
	}
	return nil
}
