package repositories

import (
	"context"
	"time"

	"waqf-task-tracker/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// taskRepository implements TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID gets a task by ID with its property joined
func (r *taskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Property").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List lists tasks matching the filter, earliest due date first
func (r *taskRepository) List(ctx context.Context, filter TaskFilter) ([]*models.Task, error) {
	query := r.db.WithContext(ctx).Preload("Property")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PropertyID != "" {
		query = query.Where("property_id = ?", filter.PropertyID)
	}

	var tasks []*models.Task
	err := query.Order("due_date ASC").Find(&tasks).Error
	return tasks, err
}

// Update saves a task without touching the joined property row
func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
}

// CountOverdue counts tasks past their due date and not completed
func (r *taskRepository) CountOverdue(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("status <> ? AND due_date < ?", models.StatusCompleted, time.Now()).
		Count(&count).Error
	return count, err
}
