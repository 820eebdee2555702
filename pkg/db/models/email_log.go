package models

import (
	"database/sql"
	"time"
)

// Email delivery outcomes recorded per recipient.
const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailLog is a database model recording one email send attempt.
type EmailLog struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	ClubID    string         `db:"club_id"`
	EmailType string         `db:"email_type"`
	Status    string         `db:"status"`
	Error     sql.NullString `db:"error"`
	CreatedAt time.Time      `db:"created_at"`
}
