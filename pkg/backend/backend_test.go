package backend

import (
	"context"
	"testing"

	"github.com/clubreads/clubreads/pkg/config"
	"github.com/clubreads/clubreads/pkg/db/migrate"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/store/database"
	"github.com/google/uuid"

	"github.com/clubreads/clubreads/pkg/test"
)

func testBackend(t *testing.T) (context.Context, *Backend) {
	t.Helper()
	cfg := config.DefaultConfig()
	ctx := config.WithContext(context.TODO(), cfg)

	dbx, err := test.OpenSqlite(ctx, t)
	if err != nil {
		t.Fatal(err)
	}
	if err := migrate.Migrate(ctx, dbx); err != nil {
		t.Fatal(err)
	}

	st := database.New(ctx, dbx)
	return ctx, New(ctx, cfg, dbx, st)
}

func newProfile(t *testing.T, ctx context.Context, b *Backend, email string, premium bool) models.Profile {
	t.Helper()
	id := uuid.NewString()
	if err := b.store.CreateProfile(ctx, b.db, id, email, "", ""); err != nil {
		t.Fatal(err)
	}
	if premium {
		if err := b.store.SetPremium(ctx, b.db, id, true); err != nil {
			t.Fatal(err)
		}
	}
	p, err := b.store.GetProfileByID(ctx, b.db, id)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func countVotes(t *testing.T, ctx context.Context, b *Backend, bookID string) int {
	t.Helper()
	n, err := b.store.CountVotes(ctx, b.db, bookID)
	if err != nil {
		t.Fatal(err)
	}
	return n
}
