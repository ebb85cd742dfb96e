package services

import (
	"context"
	"errors"
	"log"

	"waqf-task-tracker/internal/adapters/persistence/models"
	"waqf-task-tracker/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Property service errors
var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrInvalidPropertyType = errors.New("invalid property type")
)

// PropertyService handles property business logic
type PropertyService struct {
	propertyRepo repositories.PropertyRepository
}

// NewPropertyService creates a new property service
func NewPropertyService(propertyRepo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
	}
}

// CreatePropertyInput represents create property input
type CreatePropertyInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

// List returns all properties, newest-created first
func (s *PropertyService) List(ctx context.Context) ([]*models.Property, error) {
	return s.propertyRepo.List(ctx)
}

// Create creates a new property
func (s *PropertyService) Create(ctx context.Context, input *CreatePropertyInput) (*models.Property, error) {
	if !models.ValidPropertyType(input.Type) {
		return nil, ErrInvalidPropertyType
	}

	property := &models.Property{
		Name:     input.Name,
		Location: input.Location,
		Type:     input.Type,
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	log.Printf("✅ Property created: %s (%s)", property.Name, property.Type)
	return property, nil
}

// GetByID gets a property by ID
func (s *PropertyService) GetByID(ctx context.Context, id string) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return property, nil
}
