package models

import "database/sql"

// Theme is a read-only catalog entry books can be nominated under.
type Theme struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Icon        sql.NullString `db:"icon"`
	SortOrder   int            `db:"sort_order"`
}
