package cmd

import "time"

// Config carries everything the process reads from the environment. Values
// arrive as strings from .env; durations and flags are parsed at load time.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// MediaDir is where uploaded prescription documents are stored.
	MediaDir string

	// RestockOnCancel returns reserved stock to the catalog when an order is
	// rejected or cancelled. Off by default.
	RestockOnCancel bool

	// PrescriptionReminderMaxAge is how long a prescription review may stay
	// pending before the reminder job reports it.
	PrescriptionReminderMaxAge time.Duration

	// SessionTTL is how long a session token lives before the cleanup job
	// removes it.
	SessionTTL time.Duration
}
