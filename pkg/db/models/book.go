package models

import (
	"database/sql"
	"time"
)

// BookStatus is the lifecycle status of a book.
type BookStatus string

// Book lifecycle statuses.
const (
	StatusNominated BookStatus = "nominated"
	StatusVoting    BookStatus = "voting"
	StatusSelected  BookStatus = "selected"
	StatusReading   BookStatus = "reading"
	StatusCompleted BookStatus = "completed"
)

// Open reports whether the book is still an open nomination, i.e. eligible
// for voting. The two early states are treated the same way: anything not
// yet promoted counts as an open nomination.
func (s BookStatus) Open() bool {
	return s == StatusNominated || s == StatusVoting
}

// Book is a database model for a nominated or selected book.
type Book struct {
	ID           string         `db:"id"`
	ClubID       string         `db:"club_id"`
	Title        string         `db:"title"`
	Author       string         `db:"author"`
	PageCount    sql.NullInt64  `db:"page_count"`
	CoverURL     sql.NullString `db:"cover_url"`
	GoodreadsURL sql.NullString `db:"goodreads_url"`
	ThemeID      sql.NullString `db:"theme_id"`
	Status       BookStatus     `db:"status"`
	NominatedBy  sql.NullString `db:"nominated_by"`
	SelectedAt   sql.NullTime   `db:"selected_at"`
	CompletedAt  sql.NullTime   `db:"completed_at"`
	CreatedAt    time.Time      `db:"created_at"`
}

// BookTally is a book row joined with its vote count, used by the winner
// selection flow.
type BookTally struct {
	Book
	VoteCount int `db:"vote_count"`
}
