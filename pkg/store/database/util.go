package database

import "database/sql"

// nullable treats the empty string as NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
