package services

import (
	"context"
	"testing"
	"time"

	"waqf-task-tracker/internal/adapters/persistence/models"
	"waqf-task-tracker/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTaskService(t *testing.T) (*TaskService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	taskRepo := repositories.NewTaskRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	return NewTaskService(taskRepo, propertyRepo), db
}

func seedProperty(t *testing.T, db *gorm.DB) *models.Property {
	t.Helper()
	p := &models.Property{Name: "Seeded", Location: "1 Test St", Type: models.PropertyTypeMosque}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestTaskService_CreateDefaultsAndJoin(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()
	property := seedProperty(t, db)

	task, err := svc.Create(ctx, &CreateTaskInput{
		PropertyID: property.ID,
		Title:      "Roof repair",
		Type:       models.TaskTypeMaintenance,
		DueDate:    time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, task.Status, "status defaults to Pending")
	assert.Equal(t, "", task.Description, "description defaults to empty")
	require.NotNil(t, task.Property, "property summary joined")
	assert.Equal(t, property.ID, task.Property.ID)
	assert.Equal(t, "Seeded", task.Property.Name)
	assert.False(t, task.IsOverdue, "future due date is not overdue")
}

func TestTaskService_CreateUnknownProperty(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateTaskInput{
		PropertyID: "missing-property",
		Title:      "Orphan",
		Type:       models.TaskTypeInspection,
		DueDate:    time.Now(),
	})
	require.ErrorIs(t, err, ErrPropertyNotFound)

	// Nothing persisted
	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTaskService_CreateInvalidType(t *testing.T) {
	svc, db := newTaskService(t)
	property := seedProperty(t, db)

	_, err := svc.Create(context.Background(), &CreateTaskInput{
		PropertyID: property.ID,
		Title:      "Bad type",
		Type:       "gardening",
		DueDate:    time.Now(),
	})
	require.ErrorIs(t, err, ErrInvalidTaskType)
}

func TestTaskService_OverdueComputation(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()
	property := seedProperty(t, db)

	pastPending, err := svc.Create(ctx, &CreateTaskInput{
		PropertyID: property.ID,
		Title:      "Past pending",
		Type:       models.TaskTypeMaintenance,
		DueDate:    time.Now().AddDate(0, 0, -1),
	})
	require.NoError(t, err)
	assert.True(t, pastPending.IsOverdue, "past due and not completed")

	pastCompleted, err := svc.Create(ctx, &CreateTaskInput{
		PropertyID: property.ID,
		Title:      "Past completed",
		Type:       models.TaskTypeMaintenance,
		DueDate:    time.Now().AddDate(0, 0, -1),
		Status:     models.StatusCompleted,
	})
	require.NoError(t, err)
	assert.False(t, pastCompleted.IsOverdue, "completed is never overdue")

	future, err := svc.Create(ctx, &CreateTaskInput{
		PropertyID: property.ID,
		Title:      "Future",
		Type:       models.TaskTypeMaintenance,
		DueDate:    time.Now().AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	assert.False(t, future.IsOverdue)
}

func TestTaskService_ListFiltersAndOrder(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()
	property := seedProperty(t, db)

	_, err := svc.Create(ctx, &CreateTaskInput{
		PropertyID: property.ID,
		Title:      "Later",
		Type:       models.TaskTypeDocumentation,
		DueDate:    time.Now().AddDate(0, 2, 0),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateTaskInput{
		PropertyID: property.ID,
		Title:      "Sooner",
		Type:       models.TaskTypeRentCollection,
		DueDate:    time.Now().AddDate(0, 0, 3),
		Status:     models.StatusInProgress,
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, repositories.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Sooner", all[0].Title, "ascending due date")

	inProgress, err := svc.List(ctx, repositories.TaskFilter{Status: models.StatusInProgress})
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "Sooner", inProgress[0].Title)
}

func TestTaskService_UpdateStatus(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()
	property := seedProperty(t, db)

	task, err := svc.Create(ctx, &CreateTaskInput{
		PropertyID: property.ID,
		Title:      "Flip me",
		Type:       models.TaskTypeMaintenance,
		DueDate:    time.Now().AddDate(0, 0, -1),
	})
	require.NoError(t, err)
	assert.True(t, task.IsOverdue)

	updated, err := svc.UpdateStatus(ctx, task.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.False(t, updated.IsOverdue, "overdue recomputed after completion")
	require.NotNil(t, updated.Property)

	// No transition graph: Completed can go straight back to Pending
	reverted, err := svc.UpdateStatus(ctx, task.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reverted.Status)
	assert.True(t, reverted.IsOverdue)
}

func TestTaskService_UpdateStatusUnknownID(t *testing.T) {
	svc, db := newTaskService(t)
	ctx := context.Background()
	property := seedProperty(t, db)

	existing, err := svc.Create(ctx, &CreateTaskInput{
		PropertyID: property.ID,
		Title:      "Untouched",
		Type:       models.TaskTypeMaintenance,
		DueDate:    time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "missing-task", models.StatusCompleted)
	require.ErrorIs(t, err, ErrTaskNotFound)

	// Store unchanged
	var reloaded models.Task
	require.NoError(t, db.First(&reloaded, "id = ?", existing.ID).Error)
	assert.Equal(t, models.StatusPending, reloaded.Status)
}

func TestTaskService_UpdateStatusInvalid(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.UpdateStatus(context.Background(), "whatever", "Cancelled")
	require.ErrorIs(t, err, ErrInvalidTaskStatus)
}
