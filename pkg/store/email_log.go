package store

import (
	"context"
	"time"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
)

// EmailLogStore is an interface for recording email send attempts.
type EmailLogStore interface {
	LogEmail(ctx context.Context, h db.Handler, l models.EmailLog) error
	// HasEmailLog reports whether any email of the given type was logged
	// for the club since the given time.
	HasEmailLog(ctx context.Context, h db.Handler, clubID string, emailType string, since time.Time) (bool, error)
	ListEmailLogsByClub(ctx context.Context, h db.Handler, clubID string) ([]models.EmailLog, error)
}
