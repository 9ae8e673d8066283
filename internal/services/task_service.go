package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-list.com/task-list/internal/constants"
	apperrors "task-list.com/task-list/internal/errors"
	model "task-list.com/task-list/internal/models"
	repository "task-list.com/task-list/internal/repositories"
)

// TaskStore is the persistence boundary the service depends on. Lookups of a
// missing row return repository.ErrTaskNotFound.
type TaskStore interface {
	List(ctx context.Context) ([]model.Task, error)
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	MaxPosition(ctx context.Context) (int, bool, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error)
	Delete(ctx context.Context, id int64) (*model.Task, error)
	Reorder(ctx context.Context, orderedIDs []int64) error
}

type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

type CreateTaskInput struct {
	Title    string
	Priority *string
	DueDate  *string
}

// UpdateTaskInput leaves nil fields (and an empty Priority) untouched. DueDateSet with a nil or empty
// DueDate clears the due date.
type UpdateTaskInput struct {
	Title       *string
	IsCompleted *bool
	Priority    *string
	DueDateSet  bool
	DueDate     *string
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.store.List(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	task, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperrors.ErrTitleRequired
	}

	priority := constants.DefaultPriority
	if in.Priority != nil && strings.TrimSpace(*in.Priority) != "" {
		p, ok := constants.ParsePriority(*in.Priority)
		if !ok {
			return nil, apperrors.ErrInvalidPriority
		}
		priority = p
	}

	task := &model.Task{
		Title:    in.Title,
		Priority: priority,
	}

	if in.DueDate != nil {
		due, err := ParseDueDate(*in.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}

	position, err := s.nextPosition(ctx)
	if err != nil {
		return nil, err
	}
	task.Position = position

	if err := s.store.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) nextPosition(ctx context.Context) (int, error) {
	maxPosition, found, err := s.store.MaxPosition(ctx)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return maxPosition + 1, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, in UpdateTaskInput) (*model.Task, error) {
	patch, err := buildPatch(in)
	if err != nil {
		return nil, err
	}

	task, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return task, nil
}

func buildPatch(in UpdateTaskInput) (model.TaskPatch, error) {
	var patch model.TaskPatch

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return patch, apperrors.ErrTitleRequired
		}
		patch.Title = in.Title
	}

	patch.IsCompleted = in.IsCompleted

	if in.Priority != nil && strings.TrimSpace(*in.Priority) != "" {
		p, ok := constants.ParsePriority(*in.Priority)
		if !ok {
			return patch, apperrors.ErrInvalidPriority
		}
		patch.Priority = &p
	}

	if in.DueDateSet {
		var raw string
		if in.DueDate != nil {
			raw = *in.DueDate
		}
		due, err := ParseDueDate(raw)
		if err != nil {
			return patch, err
		}
		patch.DueDate = &model.DatePatch{Value: due}
	}

	return patch, nil
}

// DeleteTask removes the task and returns its last stored state.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) (*model.Task, error) {
	task, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return task, nil
}

// ReorderTasks assigns position i to orderedIDs[i]. Either every listed task
// moves or none does; tasks not listed keep their position.
func (s *TaskService) ReorderTasks(ctx context.Context, orderedIDs []int64) error {
	seen := make(map[int64]struct{}, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, dup := seen[id]; dup {
			return apperrors.ErrDuplicateOrderedID
		}
		seen[id] = struct{}{}
	}

	if len(orderedIDs) == 0 {
		return nil
	}

	if err := s.store.Reorder(ctx, orderedIDs); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return apperrors.ErrUnknownOrderedID
		}
		return fmt.Errorf("reorder tasks: %w", err)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return apperrors.ErrTaskNotFound
	}
	return err
}
