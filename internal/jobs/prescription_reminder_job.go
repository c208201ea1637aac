package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"farmaya/internal/core/domain/model/order"
)

// PrescriptionReminderJob periodically surfaces prescription reviews that
// have been pending for too long. It only reads and logs; chasing the
// pharmacy stays a human decision.
type PrescriptionReminderJob struct {
	db     *gorm.DB
	maxAge time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewPrescriptionReminderJob creates the reminder job. maxAge is how long a
// review may stay pending before it is reported.
func NewPrescriptionReminderJob(db *gorm.DB, maxAge time.Duration, logger *slog.Logger) *PrescriptionReminderJob {
	return &PrescriptionReminderJob{
		db:     db,
		maxAge: maxAge,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "prescription_reminder_job"),
	}
}

// Start schedules the job to run every 15 minutes.
func (j *PrescriptionReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 */15 * * * *", func() {
		ctx := context.Background()

		var count int64
		err := j.db.WithContext(ctx).Raw(`
			SELECT COUNT(*)
			FROM order_items i
			JOIN orders o ON o.id = i.order_id
			WHERE i.requires_prescription
			  AND i.prescription_status = ?
			  AND o.status = ?
			  AND o.created_at < ?
		`, int(order.PrescriptionPending), int(order.Pendiente),
			time.Now().UTC().Add(-j.maxAge)).Scan(&count).Error
		if err != nil {
			j.logger.ErrorContext(ctx, "Prescription reminder scan failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.WarnContext(ctx, "Prescription reviews pending past the deadline",
				"count", count,
				"max_age", j.maxAge.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Prescription reminder job started (running every 15 minutes)")
	return nil
}

// Stop stops the reminder job.
func (j *PrescriptionReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Prescription reminder job stopped")
}
