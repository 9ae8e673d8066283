package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"task-list.com/task-list/internal/constants"
	model "task-list.com/task-list/internal/models"
)

// setupPostgres connects to TEST_DATABASE_URL and starts from an empty tasks table.
func setupPostgres(t *testing.T) *PostgresTaskRepository {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("Skipping test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Skipf("Skipping test: database not available: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("Skipping test: database ping failed: %v", err)
	}
	t.Cleanup(pool.Close)

	repo := NewPostgresTaskRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if _, err := pool.Exec(ctx, "TRUNCATE tasks RESTART IDENTITY"); err != nil {
		t.Fatalf("failed to clean tasks table: %v", err)
	}
	return repo
}

func TestPostgresTaskRepository_CRUD(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()

	if _, found, err := repo.MaxPosition(ctx); err != nil || found {
		t.Fatalf("MaxPosition() on empty table = found %v, err %v", found, err)
	}

	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	task := &model.Task{Title: "Pay rent", Priority: constants.PriorityHigh, DueDate: &due}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if task.ID == 0 {
		t.Fatal("expected generated id")
	}

	done := true
	updated, err := repo.Update(ctx, task.ID, model.TaskPatch{IsCompleted: &done})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !updated.IsCompleted || updated.Title != "Pay rent" || updated.DueDate == nil {
		t.Errorf("partial update changed other fields: %+v", updated)
	}

	cleared, err := repo.Update(ctx, task.ID, model.TaskPatch{DueDate: &model.DatePatch{}})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if cleared.DueDate != nil {
		t.Errorf("expected due date cleared, got %v", cleared.DueDate)
	}

	deleted, err := repo.Delete(ctx, task.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.ID != task.ID {
		t.Errorf("expected snapshot of task %d, got %d", task.ID, deleted.ID)
	}
	if _, err := repo.FindByID(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestPostgresTaskRepository_ReorderAtomic(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()

	var ids []int64
	for i, title := range []string{"a", "b", "c"} {
		task := &model.Task{Title: title, Priority: constants.PriorityMedium, Position: i}
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids = append(ids, task.ID)
	}

	if err := repo.Reorder(ctx, []int64{ids[2], ids[0], 424242}); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	tasks, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for i, task := range tasks {
		if task.ID != ids[i] || task.Position != i {
			t.Errorf("expected untouched order, got %+v", tasks)
			break
		}
	}

	if err := repo.Reorder(ctx, []int64{ids[2], ids[0], ids[1]}); err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}
	tasks, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []int64{ids[2], ids[0], ids[1]}
	for i, task := range tasks {
		if task.ID != want[i] {
			t.Errorf("index %d: expected task %d, got %d", i, want[i], task.ID)
		}
	}
}
