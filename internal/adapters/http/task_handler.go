package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/domain/entities"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/infrastructure/logger"
	"github.com/eduardoBeilfuss02/to-do-list-app-fullstack/internal/ports"
)

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask handles task creation for the authenticated user
func (h *TaskHandler) CreateTask(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	var req ports.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), ownerID, req)
	if err != nil {
		h.logger.Error("Create task failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected server error occurred while creating the task.")
	}

	return c.JSON(http.StatusCreated, task)
}

// ListTasks returns all tasks owned by the authenticated user
func (h *TaskHandler) ListTasks(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	tasks, err := h.taskService.ListTasks(c.Request().Context(), ownerID)
	if err != nil {
		h.logger.Error("List tasks failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected server error occurred while fetching tasks.")
	}

	return c.JSON(http.StatusOK, tasks)
}

// UpdateTask applies a partial update to one of the user's tasks
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	var req ports.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.taskService.UpdateTask(c.Request().Context(), taskID, ownerID, req); err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Task not found or does not belong to the user.")
		}
		h.logger.Error("Update task failed", "error", err, "task_id", taskID, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected server error occurred while updating the task.")
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Task updated successfully!"})
}

// DeleteTask removes one of the user's tasks
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	ownerID := getUserIDFromContext(c)

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), taskID, ownerID); err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Task not found or does not belong to the user.")
		}
		h.logger.Error("Delete task failed", "error", err, "task_id", taskID, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "An unexpected server error occurred while deleting the task.")
	}

	return c.JSON(http.StatusOK, ports.MessageResponse{Message: "Task deleted successfully!"})
}
