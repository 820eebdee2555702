package models

import (
	"database/sql"
	"time"
)

// Meeting is a database model for a scheduled club meeting.
// Location is free text and may embed a video-call URL.
type Meeting struct {
	ID          string         `db:"id"`
	ClubID      string         `db:"club_id"`
	BookID      sql.NullString `db:"book_id"`
	Title       string         `db:"title"`
	ScheduledAt time.Time      `db:"scheduled_at"`
	Location    sql.NullString `db:"location"`
	Notes       sql.NullString `db:"notes"`
	CreatedAt   time.Time      `db:"created_at"`
}
