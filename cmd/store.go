package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	config "task-list.com/task-list/internal/configs"
	repository "task-list.com/task-list/internal/repositories"
	"task-list.com/task-list/internal/services"
)

type taskStore interface {
	services.TaskStore
	Ping(ctx context.Context) error
}

// openStore connects to the configured database and makes sure the tasks
// table exists. The returned func releases the connection.
func openStore(ctx context.Context, cfg config.Config, logger *log.Logger) (taskStore, func(), error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		pool, err := config.NewPostgresPool(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}

		repo := repository.NewPostgresTaskRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil

	case config.DriverSQLite:
		db, err := config.NewSQLite(cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, nil, err
		}

		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewTaskRepository(db), closeDB, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
