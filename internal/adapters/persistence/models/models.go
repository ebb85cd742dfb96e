package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Master value sets
// ============================================================

// Property types
const (
	PropertyTypeMosque      = "mosque"
	PropertyTypeSchool      = "school"
	PropertyTypeLand        = "land"
	PropertyTypeCommercial  = "commercial"
	PropertyTypeResidential = "residential"
	PropertyTypeOther       = "other"
)

// Task types
const (
	TaskTypeRentCollection = "rent collection"
	TaskTypeMaintenance    = "maintenance"
	TaskTypeLegalFollowUp  = "legal follow-up"
	TaskTypeInspection     = "inspection"
	TaskTypeDocumentation  = "documentation"
	TaskTypeOther          = "other"
)

// Task statuses
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// ValidPropertyType reports whether t is an allowed property type
func ValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeMosque, PropertyTypeSchool, PropertyTypeLand,
		PropertyTypeCommercial, PropertyTypeResidential, PropertyTypeOther:
		return true
	}
	return false
}

// ValidTaskType reports whether t is an allowed task type
func ValidTaskType(t string) bool {
	switch t {
	case TaskTypeRentCollection, TaskTypeMaintenance, TaskTypeLegalFollowUp,
		TaskTypeInspection, TaskTypeDocumentation, TaskTypeOther:
		return true
	}
	return false
}

// ValidTaskStatus reports whether s is an allowed task status
func ValidTaskStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ============================================================
// Property
// ============================================================

// Property represents the properties table (a waqf asset)
type Property struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Location  string    `gorm:"size:200;not null" json:"location"`
	Type      string    `gorm:"size:20;not null" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Property) TableName() string {
	return "properties"
}

// BeforeCreate assigns the opaque id
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PropertySummary is the joined property view embedded in task responses
type PropertySummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

func (p *Property) ToSummary() *PropertySummary {
	return &PropertySummary{
		ID:       p.ID,
		Name:     p.Name,
		Type:     p.Type,
		Location: p.Location,
	}
}

// ============================================================
// Task
// ============================================================

// Task represents the tasks table
type Task struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	PropertyID  string    `gorm:"index;size:36;not null" json:"-"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	DueDate     time.Time `gorm:"not null" json:"dueDate"`
	Status      string    `gorm:"size:20;not null;default:'Pending'" json:"status"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Property    *Property `gorm:"foreignKey:PropertyID" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}

// BeforeCreate assigns the opaque id
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// IsOverdue reports whether the task is overdue at the given instant.
// Derived at read time, never persisted.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status != StatusCompleted && t.DueDate.Before(now)
}

// TaskResponse is the wire view of a task: the referenced property's summary
// fields plus the overdue flag computed against now
type TaskResponse struct {
	ID          string           `json:"id"`
	Property    *PropertySummary `json:"property"`
	Title       string           `json:"title"`
	Type        string           `json:"type"`
	DueDate     time.Time        `json:"dueDate"`
	Status      string           `json:"status"`
	Description string           `json:"description"`
	IsOverdue   bool             `json:"isOverdue"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func (t *Task) ToResponse(now time.Time) *TaskResponse {
	resp := &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Type:        t.Type,
		DueDate:     t.DueDate,
		Status:      t.Status,
		Description: t.Description,
		IsOverdue:   t.IsOverdue(now),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	// Property stays null if the reference dangles, like a populate miss
	if t.Property != nil {
		resp.Property = t.Property.ToSummary()
	}
	return resp
}

// ============================================================
// User
// ============================================================

// User represents the users table
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the opaque id
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// UserResponse is the public profile view. Never carries the password hash.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// AutoMigrate creates tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Property{},
		&Task{},
	)
}
