package database

import (
	"context"
	"time"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/store"
)

type emailLogStore struct{}

var _ store.EmailLogStore = (*emailLogStore)(nil)

// LogEmail implements store.EmailLogStore.
func (*emailLogStore) LogEmail(ctx context.Context, tx db.Handler, l models.EmailLog) error {
	query := tx.Rebind(`INSERT INTO email_logs (id, user_id, club_id, email_type, status, error)
			VALUES (?, ?, ?, ?, ?, ?);`)
	_, err := tx.ExecContext(ctx, query, l.ID, l.UserID, l.ClubID, l.EmailType, l.Status, l.Error)
	return err //nolint:wrapcheck
}

// HasEmailLog implements store.EmailLogStore.
func (*emailLogStore) HasEmailLog(ctx context.Context, tx db.Handler, clubID string, emailType string, since time.Time) (bool, error) {
	var count int
	query := tx.Rebind(`SELECT COUNT(*) FROM email_logs
			WHERE club_id = ? AND email_type = ? AND created_at >= ?;`)
	err := tx.GetContext(ctx, &count, query, clubID, emailType, since)
	return count > 0, err //nolint:wrapcheck
}

// ListEmailLogsByClub implements store.EmailLogStore.
func (*emailLogStore) ListEmailLogsByClub(ctx context.Context, tx db.Handler, clubID string) ([]models.EmailLog, error) {
	var ms []models.EmailLog
	query := tx.Rebind(`SELECT * FROM email_logs WHERE club_id = ? ORDER BY created_at DESC;`)
	err := tx.SelectContext(ctx, &ms, query, clubID)
	return ms, err //nolint:wrapcheck
}
