package repositories

import (
	"context"

	"waqf-task-tracker/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// propertyRepository implements PropertyRepository interface
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create creates a new property
func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

// GetByID gets a property by ID
func (r *propertyRepository) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// List lists all properties, newest first
func (r *propertyRepository) List(ctx context.Context) ([]*models.Property, error) {
	var properties []*models.Property
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&properties).Error
	return properties, err
}

// Exists checks whether a property id resolves
func (r *propertyRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Property{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
