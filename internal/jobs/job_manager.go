package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	prescriptionReminderJob *PrescriptionReminderJob
	sessionCleanupJob       *SessionCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	db *gorm.DB,
	reminderMaxAge time.Duration,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		prescriptionReminderJob: NewPrescriptionReminderJob(db, reminderMaxAge, logger),
		sessionCleanupJob:       NewSessionCleanupJob(db, sessionTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.prescriptionReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start prescription reminder job: %w", err)
	}

	if err := jm.sessionCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.prescriptionReminderJob.Stop()
		return fmt.Errorf("failed to start session cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionCleanupJob.Stop()
	jm.prescriptionReminderJob.Stop()
}
