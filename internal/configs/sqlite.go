package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "task-list.com/task-list/internal/models"
)

// NewSQLite opens the SQLite database and migrates the tasks table.
func NewSQLite(dsn string, appLogger *log.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger(appLogger),
	})
	if err != nil {
		return nil, fmt.Errorf("db open failed: %w", err)
	}

	// SQLite allows a single writer
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

func gormLogger(appLogger *log.Logger) logger.Interface {
	level := logger.Warn
	if appLogger.GetLevel() <= log.DebugLevel {
		level = logger.Info
	}

	return logger.New(
		appLogger.StandardLog(log.StandardLogOptions{ForceLevel: log.WarnLevel}),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}
