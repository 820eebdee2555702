package store

import (
	"context"
	"time"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
)

// MeetingStore is an interface for managing club meetings.
type MeetingStore interface {
	CreateMeeting(ctx context.Context, h db.Handler, m models.Meeting) error
	GetMeetingByID(ctx context.Context, h db.Handler, id string) (models.Meeting, error)
	ListUpcomingMeetings(ctx context.Context, h db.Handler, clubID string, after time.Time) ([]models.Meeting, error)
	// ListMeetingsStartingBetween returns meetings across all clubs with
	// scheduled_at in [from, to), soonest first.
	ListMeetingsStartingBetween(ctx context.Context, h db.Handler, from time.Time, to time.Time) ([]models.Meeting, error)
	DeleteMeeting(ctx context.Context, h db.Handler, id string) error
}
