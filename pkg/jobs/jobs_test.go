package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clubreads/clubreads/pkg/backend"
	"github.com/clubreads/clubreads/pkg/config"
	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/migrate"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/mail"
	"github.com/clubreads/clubreads/pkg/store"
	"github.com/clubreads/clubreads/pkg/store/database"
	"github.com/clubreads/clubreads/pkg/test"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func TestRegistry(t *testing.T) {
	is := is.New(t)

	job, ok := List()["meeting-reminder"]
	is.True(ok)

	cfg := config.DefaultConfig()
	ctx := config.WithContext(context.TODO(), cfg)
	is.Equal(job.Runner.Spec(ctx), cfg.Jobs.MeetingReminder)
}

func TestMeetingReminderRunsOnce(t *testing.T) {
	is := is.New(t)

	var sent int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&sent, 1)
		w.Write([]byte(`{"id":"email_1"}`)) // nolint: errcheck
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.Mail.APIURL = srv.URL
	ctx := config.WithContext(context.TODO(), cfg)

	dbx, err := test.OpenSqlite(ctx, t)
	is.NoErr(err)
	is.NoErr(migrate.Migrate(ctx, dbx))
	ctx = db.WithContext(ctx, dbx)

	datastore := database.New(ctx, dbx)
	ctx = store.WithContext(ctx, datastore)

	be := backend.New(ctx, cfg, dbx, datastore).
		WithMailClient(mail.NewClient(cfg))
	ctx = backend.WithContext(ctx, be)

	is.NoErr(datastore.CreateProfile(ctx, dbx, "owner-1", "owner@example.com", "Owner", ""))
	owner, err := be.Profile(ctx, "owner-1")
	is.NoErr(err)
	club, err := be.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	// A meeting two hours out is inside the reminder window.
	is.NoErr(datastore.CreateMeeting(ctx, dbx, models.Meeting{
		ID:          uuid.NewString(),
		ClubID:      club.ID,
		Title:       "Kickoff",
		ScheduledAt: time.Now().UTC().Add(2 * time.Hour),
	}))

	run := meetingReminder{}.Func(ctx)
	run()
	is.Equal(atomic.LoadInt32(&sent), int32(1))

	logged, err := datastore.HasEmailLog(ctx, dbx, club.ID, mail.TypeMeetingReminder, time.Now().UTC().Add(-time.Hour))
	is.NoErr(err)
	is.True(logged)

	// A second pass inside the window is a no-op.
	run()
	is.Equal(atomic.LoadInt32(&sent), int32(1))
}

func TestMeetingReminderIgnoresFarMeetings(t *testing.T) {
	is := is.New(t)

	var sent int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&sent, 1)
		w.Write([]byte(`{"id":"email_1"}`)) // nolint: errcheck
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.Mail.APIURL = srv.URL
	ctx := config.WithContext(context.TODO(), cfg)

	dbx, err := test.OpenSqlite(ctx, t)
	is.NoErr(err)
	is.NoErr(migrate.Migrate(ctx, dbx))
	ctx = db.WithContext(ctx, dbx)

	datastore := database.New(ctx, dbx)
	ctx = store.WithContext(ctx, datastore)

	be := backend.New(ctx, cfg, dbx, datastore).
		WithMailClient(mail.NewClient(cfg))
	ctx = backend.WithContext(ctx, be)

	is.NoErr(datastore.CreateProfile(ctx, dbx, "owner-1", "owner@example.com", "Owner", ""))
	owner, err := be.Profile(ctx, "owner-1")
	is.NoErr(err)
	club, err := be.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	// Next week is outside the window.
	is.NoErr(datastore.CreateMeeting(ctx, dbx, models.Meeting{
		ID:          uuid.NewString(),
		ClubID:      club.ID,
		Title:       "Later",
		ScheduledAt: time.Now().UTC().Add(7 * 24 * time.Hour),
	}))

	meetingReminder{}.Func(ctx)()
	is.Equal(atomic.LoadInt32(&sent), int32(0))
}
