package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	model "task-list.com/task-list/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks := []model.Task{}
	err := r.db.WithContext(ctx).Order("position asc").Order("id asc").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	return findByID(r.db.WithContext(ctx), id)
}

func findByID(db *gorm.DB, id int64) (*model.Task, error) {
	var task model.Task
	if err := db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	return &task, nil
}

// MaxPosition returns the highest position in use; found is false for an empty table.
func (r *TaskRepository) MaxPosition(ctx context.Context) (int, bool, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Order("position desc").Take(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("max position: %w", err)
	}
	return task.Position, true, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	var updated *model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findByID(tx, id); err != nil {
			return err
		}

		if !patch.Empty() {
			if err := tx.Model(&model.Task{}).Where("id = ?", id).Updates(patchValues(patch)).Error; err != nil {
				return fmt.Errorf("update task %d: %w", id, err)
			}
		}

		task, err := findByID(tx, id)
		if err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func patchValues(patch model.TaskPatch) map[string]interface{} {
	values := map[string]interface{}{}
	if patch.Title != nil {
		values["title"] = *patch.Title
	}
	if patch.IsCompleted != nil {
		values["is_completed"] = *patch.IsCompleted
	}
	if patch.Priority != nil {
		values["priority"] = string(*patch.Priority)
	}
	if patch.DueDate != nil {
		values["due_date"] = patch.DueDate.Value
	}
	return values
}

// Delete removes the task and returns the row as it was before deletion.
func (r *TaskRepository) Delete(ctx context.Context, id int64) (*model.Task, error) {
	var deleted *model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := findByID(tx, id)
		if err != nil {
			return err
		}

		res := tx.Delete(&model.Task{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete task %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrTaskNotFound
		}

		deleted = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// Reorder sets position i on orderedIDs[i] in one transaction. A missing id
// rolls back every update and returns ErrTaskNotFound.
func (r *TaskRepository) Reorder(ctx context.Context, orderedIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			res := tx.Model(&model.Task{}).Where("id = ?", id).Update("position", i)
			if res.Error != nil {
				return fmt.Errorf("reorder task %d: %w", id, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("reorder task %d: %w", id, ErrTaskNotFound)
			}
		}
		return nil
	})
}

func (r *TaskRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
