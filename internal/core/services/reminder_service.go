package services

import (
	"context"
	"log"

	"waqf-task-tracker/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService logs a daily summary of overdue tasks at 08:00.
// It only reads; the overdue flag itself is always computed at response time.
type ReminderService struct {
	taskRepo repositories.TaskRepository
	cron     *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(taskRepo repositories.TaskRepository) *ReminderService {
	return &ReminderService{
		taskRepo: taskRepo,
		cron:     cron.New(),
	}
}

// Start schedules the daily overdue summary
func (s *ReminderService) Start() {
	_, err := s.cron.AddFunc("0 8 * * *", s.logOverdueSummary)
	if err != nil {
		log.Printf("⚠️ Failed to schedule overdue reminder: %v", err)
		return
	}
	s.cron.Start()
	log.Println("⏰ Overdue reminder scheduled (daily 08:00)")
}

// Stop stops the scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
}

func (s *ReminderService) logOverdueSummary() {
	count, err := s.taskRepo.CountOverdue(context.Background())
	if err != nil {
		log.Printf("⚠️ Overdue summary failed: %v", err)
		return
	}
	log.Printf("⏰ Overdue tasks: %d", count)
}
