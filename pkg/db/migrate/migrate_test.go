package migrate

import (
	"context"
	"testing"

	"github.com/clubreads/clubreads/pkg/test"
)

func TestMigrateIdempotent(t *testing.T) {
	ctx := context.TODO()
	dbx, err := test.OpenSqlite(ctx, t)
	if err != nil {
		t.Fatal(err)
	}

	if err := Migrate(ctx, dbx); err != nil {
		t.Fatalf("first Migrate() => %v", err)
	}

	// Running again must be a no-op.
	if err := Migrate(ctx, dbx); err != nil {
		t.Fatalf("second Migrate() => %v", err)
	}

	for _, table := range []string{
		"profiles", "themes", "clubs", "club_members",
		"books", "book_votes", "meetings", "discussion_questions", "email_logs",
	} {
		var name string
		err := dbx.GetContext(ctx, &name,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table)
		if err != nil {
			t.Errorf("table %q missing after migrate: %v", table, err)
		}
	}

	var themes int
	if err := dbx.GetContext(ctx, &themes, "SELECT COUNT(*) FROM themes"); err != nil {
		t.Fatal(err)
	}
	if themes == 0 {
		t.Error("themes catalog not seeded")
	}
}

func TestRollback(t *testing.T) {
	ctx := context.TODO()
	dbx, err := test.OpenSqlite(ctx, t)
	if err != nil {
		t.Fatal(err)
	}

	if err := Migrate(ctx, dbx); err != nil {
		t.Fatal(err)
	}
	if err := Rollback(ctx, dbx); err != nil {
		t.Fatalf("Rollback() => %v", err)
	}

	var version int64
	if err := dbx.GetContext(ctx, &version, "SELECT version FROM migrations ORDER BY version DESC LIMIT 1"); err != nil {
		t.Fatal(err)
	}
	if version != createTablesVersion {
		t.Errorf("version after rollback => %d, want %d", version, createTablesVersion)
	}
}
