package migrate

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/google/uuid"
)

const (
	seedThemesName    = "seed themes"
	seedThemesVersion = 2
)

// The built-in theme catalog. Themes are reference data; clubs pick from
// this list when nominating.
var defaultThemes = []struct {
	name        string
	description string
	icon        string
}{
	{"Literary Fiction", "Character-driven stories with lasting weight", "📖"},
	{"Mystery & Thriller", "Whodunits, noir, and page-turners", "🔍"},
	{"Science Fiction", "Speculative futures and strange worlds", "🚀"},
	{"Fantasy", "Magic, myth, and epic quests", "🐉"},
	{"Historical", "Fiction and narrative history from another era", "🏛️"},
	{"Memoir & Biography", "True lives, told well", "✍️"},
	{"Nonfiction", "Ideas, science, and the world as it is", "🧠"},
	{"Romance", "Love stories in every register", "❤️"},
}

var seedThemes = Migration{
	Version: seedThemesVersion,
	Name:    seedThemesName,
	Migrate: func(ctx context.Context, tx *db.Tx) error {
		insert := "INSERT INTO themes (id, name, description, icon, sort_order) VALUES (?, ?, ?, ?, ?)"
		switch tx.DriverName() {
		case "sqlite3", "sqlite":
			insert = "INSERT OR IGNORE INTO themes (id, name, description, icon, sort_order) VALUES (?, ?, ?, ?, ?)"
		case "postgres":
			insert += " ON CONFLICT (name) DO NOTHING"
		}

		insert = tx.Rebind(insert)
		for i, th := range defaultThemes {
			if _, err := tx.ExecContext(ctx, insert, uuid.NewString(), th.name, th.description, th.icon, i); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return nil
	},
	Rollback: func(ctx context.Context, tx *db.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM themes")
		return err //nolint:wrapcheck
	},
}
