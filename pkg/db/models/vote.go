package models

import "time"

// BookVote is a database model for a member's vote on a nomination.
// Rank is modeled 1..3 but the toggle flow only ever writes rank 1.
type BookVote struct {
	ID        string    `db:"id"`
	BookID    string    `db:"book_id"`
	UserID    string    `db:"user_id"`
	Rank      int       `db:"rank"`
	CreatedAt time.Time `db:"created_at"`
}
