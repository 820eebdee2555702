package models

import "time"

// ClubMember is a database model for a club membership.
// There is at most one row per (club, user).
type ClubMember struct {
	ID       string    `db:"id"`
	ClubID   string    `db:"club_id"`
	UserID   string    `db:"user_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}

// ClubMemberProfile is a membership row joined with its profile.
type ClubMemberProfile struct {
	ClubMember
	Profile Profile `db:"profile"`
}
