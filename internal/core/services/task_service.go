package services

import (
	"context"
	"errors"
	"log"
	"time"

	"waqf-task-tracker/internal/adapters/persistence/models"
	"waqf-task-tracker/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Task service errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskType   = errors.New("invalid task type")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// TaskService handles task business logic.
// Status moves freely between Pending, In Progress and Completed;
// no transition graph is enforced.
type TaskService struct {
	taskRepo     repositories.TaskRepository
	propertyRepo repositories.PropertyRepository
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repositories.TaskRepository, propertyRepo repositories.PropertyRepository) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		propertyRepo: propertyRepo,
	}
}

// CreateTaskInput represents create task input
type CreateTaskInput struct {
	PropertyID  string
	Title       string
	Type        string
	DueDate     time.Time
	Status      string
	Description string
}

// List returns tasks matching the optional filters, due date ascending,
// each joined with its property summary and the overdue flag computed
// against the current wall clock
func (s *TaskService) List(ctx context.Context, filter repositories.TaskFilter) ([]*models.TaskResponse, error) {
	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]*models.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, task.ToResponse(now))
	}
	return responses, nil
}

// Create creates a new task. The referenced property must exist;
// status defaults to Pending and description to empty.
func (s *TaskService) Create(ctx context.Context, input *CreateTaskInput) (*models.TaskResponse, error) {
	if !models.ValidTaskType(input.Type) {
		return nil, ErrInvalidTaskType
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidTaskStatus(status) {
		return nil, ErrInvalidTaskStatus
	}

	exists, err := s.propertyRepo.Exists(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPropertyNotFound
	}

	task := &models.Task{
		PropertyID:  input.PropertyID,
		Title:       input.Title,
		Type:        input.Type,
		DueDate:     input.DueDate,
		Status:      status,
		Description: input.Description,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	// Re-read to join the property summary
	created, err := s.taskRepo.GetByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Task created: %s (due %s)", created.Title, created.DueDate.Format("2006-01-02"))
	return created.ToResponse(time.Now()), nil
}

// UpdateStatus mutates a task's status in place and returns the joined
// record with the overdue flag recomputed
func (s *TaskService) UpdateStatus(ctx context.Context, id, status string) (*models.TaskResponse, error) {
	if !models.ValidTaskStatus(status) {
		return nil, ErrInvalidTaskStatus
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	task.Status = status
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	log.Printf("✅ Task %s status → %s", task.ID, status)
	return task.ToResponse(time.Now()), nil
}
