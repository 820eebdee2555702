package database

import (
	"context"
	"time"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/store"
)

type meetingStore struct{}

var _ store.MeetingStore = (*meetingStore)(nil)

// CreateMeeting implements store.MeetingStore.
func (*meetingStore) CreateMeeting(ctx context.Context, tx db.Handler, m models.Meeting) error {
	query := tx.Rebind(`INSERT INTO meetings (id, club_id, book_id, title, scheduled_at, location, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?);`)
	_, err := tx.ExecContext(ctx, query,
		m.ID, m.ClubID, m.BookID, m.Title, m.ScheduledAt, m.Location, m.Notes)
	return err //nolint:wrapcheck
}

// GetMeetingByID implements store.MeetingStore.
func (*meetingStore) GetMeetingByID(ctx context.Context, tx db.Handler, id string) (models.Meeting, error) {
	var m models.Meeting
	query := tx.Rebind(`SELECT * FROM meetings WHERE id = ?;`)
	err := tx.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// ListUpcomingMeetings implements store.MeetingStore.
func (*meetingStore) ListUpcomingMeetings(ctx context.Context, tx db.Handler, clubID string, after time.Time) ([]models.Meeting, error) {
	var ms []models.Meeting
	query := tx.Rebind(`SELECT * FROM meetings
			WHERE club_id = ? AND scheduled_at >= ?
			ORDER BY scheduled_at;`)
	err := tx.SelectContext(ctx, &ms, query, clubID, after)
	return ms, err //nolint:wrapcheck
}

// ListMeetingsStartingBetween implements store.MeetingStore.
func (*meetingStore) ListMeetingsStartingBetween(ctx context.Context, tx db.Handler, from time.Time, to time.Time) ([]models.Meeting, error) {
	var ms []models.Meeting
	query := tx.Rebind(`SELECT * FROM meetings
			WHERE scheduled_at >= ? AND scheduled_at < ?
			ORDER BY scheduled_at;`)
	err := tx.SelectContext(ctx, &ms, query, from, to)
	return ms, err //nolint:wrapcheck
}

// DeleteMeeting implements store.MeetingStore.
func (*meetingStore) DeleteMeeting(ctx context.Context, tx db.Handler, id string) error {
	query := tx.Rebind(`DELETE FROM meetings WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}
