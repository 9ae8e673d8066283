package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"task-list.com/task-list/internal/constants"
	model "task-list.com/task-list/internal/models"
)

const taskColumns = "id, title, is_completed, priority, due_date, position, created_at"

const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
	id           BIGSERIAL PRIMARY KEY,
	title        TEXT        NOT NULL,
	is_completed BOOLEAN     NOT NULL DEFAULT FALSE,
	priority     VARCHAR(10) NOT NULL DEFAULT 'MEDIUM',
	due_date     TIMESTAMPTZ NULL,
	position     INTEGER     NOT NULL DEFAULT 0,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks (position);
`

// PostgresTaskRepository stores tasks in PostgreSQL through a pgx pool.
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTaskRepository(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{pool: pool}
}

func (r *PostgresTaskRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createTasksTable); err != nil {
		return fmt.Errorf("migrate tasks table: %w", err)
	}
	return nil
}

func (r *PostgresTaskRepository) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+taskColumns+" FROM tasks ORDER BY position ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *PostgresTaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
	return r.scanOne(row, "find task", id)
}

func (r *PostgresTaskRepository) MaxPosition(ctx context.Context) (int, bool, error) {
	var position *int32
	if err := r.pool.QueryRow(ctx, "SELECT MAX(position) FROM tasks").Scan(&position); err != nil {
		return 0, false, fmt.Errorf("max position: %w", err)
	}
	if position == nil {
		return 0, false, nil
	}
	return int(*position), true, nil
}

func (r *PostgresTaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO tasks (title, is_completed, priority, due_date, position, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		task.Title, task.IsCompleted, string(task.Priority), task.DueDate, int32(task.Position), task.CreatedAt,
	).Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Update applies the patch in a single statement; columns whose patch field
// is nil keep their current value.
func (r *PostgresTaskRepository) Update(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	var priority *string
	if patch.Priority != nil {
		p := string(*patch.Priority)
		priority = &p
	}

	var dueDate *time.Time
	if patch.DueDate != nil {
		dueDate = patch.DueDate.Value
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE tasks SET
			title        = COALESCE($2, title),
			is_completed = COALESCE($3, is_completed),
			priority     = COALESCE($4, priority),
			due_date     = CASE WHEN $5::boolean THEN $6::timestamptz ELSE due_date END
		 WHERE id = $1
		 RETURNING `+taskColumns,
		id, patch.Title, patch.IsCompleted, priority, patch.DueDate != nil, dueDate,
	)
	return r.scanOne(row, "update task", id)
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, id int64) (*model.Task, error) {
	row := r.pool.QueryRow(ctx, "DELETE FROM tasks WHERE id = $1 RETURNING "+taskColumns, id)
	return r.scanOne(row, "delete task", id)
}

func (r *PostgresTaskRepository) Reorder(ctx context.Context, orderedIDs []int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for i, id := range orderedIDs {
			tag, err := tx.Exec(ctx, "UPDATE tasks SET position = $1 WHERE id = $2", int32(i), id)
			if err != nil {
				return fmt.Errorf("reorder task %d: %w", id, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("reorder task %d: %w", id, ErrTaskNotFound)
			}
		}
		return nil
	})
}

func (r *PostgresTaskRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresTaskRepository) scanOne(row pgx.Row, op string, id int64) (*model.Task, error) {
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("%s %d: %w", op, id, err)
	}
	return task, nil
}

func scanTask(row pgx.Row) (*model.Task, error) {
	var (
		task     model.Task
		priority string
		position int32
	)
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.IsCompleted,
		&priority,
		&task.DueDate,
		&position,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Priority = constants.Priority(priority)
	task.Position = int(position)
	task.CreatedAt = task.CreatedAt.UTC()
	if task.DueDate != nil {
		d := task.DueDate.UTC()
		task.DueDate = &d
	}
	return &task, nil
}
