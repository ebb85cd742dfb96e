package handlers

import (
	"errors"
	"strings"
	"time"

	"waqf-task-tracker/internal/adapters/persistence/repositories"
	"waqf-task-tracker/internal/core/services"
	"waqf-task-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles task endpoints
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTaskRequest represents create task request body
type CreateTaskRequest struct {
	Property    string `json:"property"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// UpdateTaskStatusRequest represents status update request body
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// dueDateLayouts are the accepted due date formats: the client's date
// input and full timestamps
var dueDateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDueDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// List handles listing tasks with optional filters
// @Summary List tasks
// @Description Get tasks joined with their property, due date ascending, with the overdue flag computed at response time
// @Tags Tasks
// @Produce json
// @Param status query string false "Filter by status"
// @Param propertyId query string false "Filter by property id"
// @Success 200 {array} models.TaskResponse
// @Failure 500 {object} response.ErrorBody
// @Router /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	filter := repositories.TaskFilter{
		Status:     c.Query("status"),
		PropertyID: c.Query("propertyId"),
	}

	tasks, err := h.taskService.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Error fetching tasks")
	}

	return response.JSON(c, tasks)
}

// Create handles creating a task
// @Summary Create task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param body body CreateTaskRequest true "Task data"
// @Success 201 {object} models.TaskResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Property == "" || req.Title == "" || req.Type == "" || req.DueDate == "" {
		return response.BadRequest(c, "Please provide all required fields")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return response.BadRequest(c, "Invalid due date")
	}

	input := &services.CreateTaskInput{
		PropertyID:  req.Property,
		Title:       strings.TrimSpace(req.Title),
		Type:        req.Type,
		DueDate:     dueDate,
		Status:      req.Status,
		Description: req.Description,
	}

	task, err := h.taskService.Create(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTaskType):
			return response.BadRequest(c, "Invalid task type")
		case errors.Is(err, services.ErrInvalidTaskStatus):
			return response.BadRequest(c, "Invalid task status")
		case errors.Is(err, services.ErrPropertyNotFound):
			return response.NotFound(c, "Property not found")
		default:
			return response.InternalServerError(c, "Failed to create task")
		}
	}

	return response.Created(c, task)
}

// UpdateStatus handles updating a task's status
// @Summary Update task status
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param body body UpdateTaskStatusRequest true "New status"
// @Success 200 {object} models.TaskResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/tasks/{id}/status [put]
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Status == "" {
		return response.BadRequest(c, "Please provide a status")
	}

	task, err := h.taskService.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTaskStatus):
			return response.BadRequest(c, "Invalid task status")
		case errors.Is(err, services.ErrTaskNotFound):
			return response.NotFound(c, "Task not found")
		default:
			return response.InternalServerError(c, "Failed to update task status")
		}
	}

	return response.JSON(c, task)
}
