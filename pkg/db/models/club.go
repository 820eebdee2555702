package models

import (
	"database/sql"
	"time"
)

// Meeting cadences a club can be configured with.
const (
	CadenceMonthly = "monthly"
	CadenceSixWeek = "6-week"
)

// Club is a database model for a book club.
type Club struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Description    sql.NullString `db:"description"`
	OwnerID        string         `db:"owner_id"`
	InviteCode     string         `db:"invite_code"`
	CurrentTheme   sql.NullString `db:"current_theme"`
	MeetingCadence string         `db:"meeting_cadence"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// ValidCadence reports whether s is a supported meeting cadence.
func ValidCadence(s string) bool {
	return s == CadenceMonthly || s == CadenceSixWeek
}
