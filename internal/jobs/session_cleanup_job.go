package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SessionCleanupJob deletes session tokens past their time to live. Tokens
// are opaque and have no server-side refresh, so expiry is enforced by
// removal.
type SessionCleanupJob struct {
	db     *gorm.DB
	ttl    time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewSessionCleanupJob creates the cleanup job with the given token TTL.
func NewSessionCleanupJob(db *gorm.DB, ttl time.Duration, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		db:     db,
		ttl:    ttl,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "session_cleanup_job"),
	}
}

// Start schedules the job to run hourly.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		result := j.db.WithContext(ctx).Exec(
			`DELETE FROM sessions WHERE created_at < ?`,
			time.Now().UTC().Add(-j.ttl),
		)
		if result.Error != nil {
			j.logger.ErrorContext(ctx, "Session cleanup failed", "error", result.Error)
			return
		}

		if result.RowsAffected > 0 {
			j.logger.InfoContext(ctx, "Expired sessions removed", "count", result.RowsAffected)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
