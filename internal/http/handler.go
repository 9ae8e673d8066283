package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-list.com/task-list/internal/data_models"
	apperrors "task-list.com/task-list/internal/errors"
	"task-list.com/task-list/internal/http/validators"
	"task-list.com/task-list/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), services.CreateTaskInput{
		Title:    req.Title,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, services.UpdateTaskInput{
		Title:       req.Title,
		IsCompleted: req.IsCompleted,
		Priority:    req.Priority,
		DueDateSet:  req.DueDate.Set,
		DueDate:     req.DueDate.Value,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	task, err := h.taskService.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.DeleteTaskResponse{
		Message: "Task deleted successfully",
		Task:    task,
	})
}

func (h *Handler) ReorderTasks(c echo.Context) error {
	var req dto.ReorderTasksRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	orderedIDs, err := validators.ParseOrderedIDs(req.OrderedIDs)
	if err != nil {
		return err
	}

	if err := h.taskService.ReorderTasks(c.Request().Context(), orderedIDs); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task order updated successfully"})
}
