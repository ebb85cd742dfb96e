package config

import (
	"log"
	"time"

	"waqf-task-tracker/internal/adapters/persistence/models"
	"waqf-task-tracker/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run seeds demo data. Development only; production data comes through the API.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDemoUser(); err != nil {
		log.Printf("⚠️ Demo user seeder skipped: %v", err)
	}
	if err := s.seedDemoProperties(); err != nil {
		log.Printf("⚠️ Demo property seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDemoUser seeds a default login for development
func (s *Seeder) seedDemoUser() error {
	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash("demo12345")
	if err != nil {
		return err
	}

	demo := &models.User{
		Username: "demo",
		Email:    "demo@example.com",
		Password: hashedPassword,
	}

	return s.db.Create(demo).Error
}

// seedDemoProperties seeds a few properties and tasks, including one
// already past its due date so the overdue flag shows up immediately
func (s *Seeder) seedDemoProperties() error {
	var count int64
	s.db.Model(&models.Property{}).Count(&count)
	if count > 0 {
		return nil
	}

	properties := []*models.Property{
		{Name: "Al-Rahma Mosque", Location: "123 Main St", Type: models.PropertyTypeMosque},
		{Name: "Al-Noor School", Location: "45 Park Ave", Type: models.PropertyTypeSchool},
		{Name: "Market Row Shops", Location: "8 Bazaar Lane", Type: models.PropertyTypeCommercial},
	}
	for _, p := range properties {
		if err := s.db.Create(p).Error; err != nil {
			return err
		}
	}

	now := time.Now()
	tasks := []*models.Task{
		{
			PropertyID: properties[0].ID,
			Title:      "Roof repair",
			Type:       models.TaskTypeMaintenance,
			DueDate:    now.AddDate(0, 0, -7),
			Status:     models.StatusPending,
		},
		{
			PropertyID: properties[1].ID,
			Title:      "Annual safety inspection",
			Type:       models.TaskTypeInspection,
			DueDate:    now.AddDate(0, 1, 0),
			Status:     models.StatusPending,
		},
		{
			PropertyID:  properties[2].ID,
			Title:       "Collect quarterly rent",
			Type:        models.TaskTypeRentCollection,
			DueDate:     now.AddDate(0, 0, 14),
			Status:      models.StatusInProgress,
			Description: "Units 3 and 5 outstanding",
		},
	}
	for _, t := range tasks {
		if err := s.db.Create(t).Error; err != nil {
			return err
		}
	}

	return nil
}
