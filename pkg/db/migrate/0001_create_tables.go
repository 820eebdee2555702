package migrate

import (
	"context"
	"strings"

	"github.com/clubreads/clubreads/pkg/db"
)

const (
	createTablesName    = "create tables"
	createTablesVersion = 1
)

var createTables = Migration{
	Version: createTablesVersion,
	Name:    createTablesName,
	Migrate: func(ctx context.Context, tx *db.Tx) error {
		schema := sqliteSchema
		if tx.DriverName() == "postgres" {
			schema = postgresSchema
		}

		for _, stmt := range strings.Split(schema, ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return nil
	},
	Rollback: func(ctx context.Context, tx *db.Tx) error {
		tables := []string{
			"email_logs",
			"discussion_questions",
			"meetings",
			"book_votes",
			"books",
			"club_members",
			"clubs",
			"themes",
			"profiles",
		}
		for _, t := range tables {
			if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+t); err != nil {
				return err //nolint:wrapcheck
			}
		}
		return nil
	},
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	full_name TEXT,
	avatar_url TEXT,
	is_premium BOOLEAN NOT NULL DEFAULT false,
	stripe_customer_id TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS themes (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT,
	icon TEXT,
	sort_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS clubs (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	owner_id TEXT NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
	invite_code TEXT NOT NULL UNIQUE,
	current_theme TEXT,
	meeting_cadence TEXT NOT NULL DEFAULT 'monthly'
		CHECK (meeting_cadence IN ('monthly', '6-week')),
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS club_members (
	id TEXT PRIMARY KEY,
	club_id TEXT NOT NULL REFERENCES clubs (id) ON DELETE CASCADE,
	user_id TEXT NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
	role TEXT NOT NULL DEFAULT 'member'
		CHECK (role IN ('owner', 'admin', 'member')),
	joined_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (club_id, user_id)
);

CREATE TABLE IF NOT EXISTS books (
	id TEXT PRIMARY KEY,
	club_id TEXT NOT NULL REFERENCES clubs (id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	page_count INTEGER,
	cover_url TEXT,
	goodreads_url TEXT,
	theme_id TEXT REFERENCES themes (id),
	status TEXT NOT NULL DEFAULT 'nominated'
		CHECK (status IN ('nominated', 'voting', 'selected', 'reading', 'completed')),
	nominated_by TEXT REFERENCES profiles (id) ON DELETE SET NULL,
	selected_at DATETIME,
	completed_at DATETIME,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS book_votes (
	id TEXT PRIMARY KEY,
	book_id TEXT NOT NULL REFERENCES books (id) ON DELETE CASCADE,
	user_id TEXT NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
	rank INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (book_id, user_id)
);

CREATE TABLE IF NOT EXISTS meetings (
	id TEXT PRIMARY KEY,
	club_id TEXT NOT NULL REFERENCES clubs (id) ON DELETE CASCADE,
	book_id TEXT REFERENCES books (id) ON DELETE SET NULL,
	title TEXT NOT NULL,
	scheduled_at DATETIME NOT NULL,
	location TEXT,
	notes TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS discussion_questions (
	id TEXT PRIMARY KEY,
	book_id TEXT NOT NULL REFERENCES books (id) ON DELETE CASCADE,
	question TEXT NOT NULL,
	assigned_to TEXT REFERENCES profiles (id) ON DELETE SET NULL,
	sort_order INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS email_logs (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	club_id TEXT NOT NULL,
	email_type TEXT NOT NULL,
	status TEXT NOT NULL,
	error TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_books_club_status ON books (club_id, status);
CREATE INDEX IF NOT EXISTS idx_meetings_club_scheduled ON meetings (club_id, scheduled_at);
CREATE INDEX IF NOT EXISTS idx_email_logs_club_type ON email_logs (club_id, email_type);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	full_name TEXT,
	avatar_url TEXT,
	is_premium BOOLEAN NOT NULL DEFAULT false,
	stripe_customer_id TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS themes (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT,
	icon TEXT,
	sort_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS clubs (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	owner_id TEXT NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
	invite_code TEXT NOT NULL UNIQUE,
	current_theme TEXT,
	meeting_cadence TEXT NOT NULL DEFAULT 'monthly'
		CHECK (meeting_cadence IN ('monthly', '6-week')),
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS club_members (
	id TEXT PRIMARY KEY,
	club_id TEXT NOT NULL REFERENCES clubs (id) ON DELETE CASCADE,
	user_id TEXT NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
	role TEXT NOT NULL DEFAULT 'member'
		CHECK (role IN ('owner', 'admin', 'member')),
	joined_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (club_id, user_id)
);

CREATE TABLE IF NOT EXISTS books (
	id TEXT PRIMARY KEY,
	club_id TEXT NOT NULL REFERENCES clubs (id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	page_count INTEGER,
	cover_url TEXT,
	goodreads_url TEXT,
	theme_id TEXT REFERENCES themes (id),
	status TEXT NOT NULL DEFAULT 'nominated'
		CHECK (status IN ('nominated', 'voting', 'selected', 'reading', 'completed')),
	nominated_by TEXT REFERENCES profiles (id) ON DELETE SET NULL,
	selected_at TIMESTAMP,
	completed_at TIMESTAMP,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS book_votes (
	id TEXT PRIMARY KEY,
	book_id TEXT NOT NULL REFERENCES books (id) ON DELETE CASCADE,
	user_id TEXT NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
	rank INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (book_id, user_id)
);

CREATE TABLE IF NOT EXISTS meetings (
	id TEXT PRIMARY KEY,
	club_id TEXT NOT NULL REFERENCES clubs (id) ON DELETE CASCADE,
	book_id TEXT REFERENCES books (id) ON DELETE SET NULL,
	title TEXT NOT NULL,
	scheduled_at TIMESTAMP NOT NULL,
	location TEXT,
	notes TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS discussion_questions (
	id TEXT PRIMARY KEY,
	book_id TEXT NOT NULL REFERENCES books (id) ON DELETE CASCADE,
	question TEXT NOT NULL,
	assigned_to TEXT REFERENCES profiles (id) ON DELETE SET NULL,
	sort_order INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS email_logs (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	club_id TEXT NOT NULL,
	email_type TEXT NOT NULL,
	status TEXT NOT NULL,
	error TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_books_club_status ON books (club_id, status);
CREATE INDEX IF NOT EXISTS idx_meetings_club_scheduled ON meetings (club_id, scheduled_at);
CREATE INDEX IF NOT EXISTS idx_email_logs_club_type ON email_logs (club_id, email_type);
`
