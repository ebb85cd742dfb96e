package repositories

import (
	"context"

	"waqf-task-tracker/internal/adapters/persistence/models"
)

// PropertyRepository defines property repository interface
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id string) (*models.Property, error)
	List(ctx context.Context) ([]*models.Property, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// TaskFilter holds the optional equality filters for listing tasks
type TaskFilter struct {
	Status     string
	PropertyID string
}

// TaskRepository defines task repository interface
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	CountOverdue(ctx context.Context) (int64, error)
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
