package models

import (
	"database/sql"
	"time"
)

// DiscussionQuestion is a database model for a generated discussion
// question, ordered by SortOrder and optionally assigned to one member.
type DiscussionQuestion struct {
	ID         string         `db:"id"`
	BookID     string         `db:"book_id"`
	Question   string         `db:"question"`
	AssignedTo sql.NullString `db:"assigned_to"`
	SortOrder  int            `db:"sort_order"`
	CreatedAt  time.Time      `db:"created_at"`
}
