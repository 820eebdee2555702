package backend

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/proto"
	"github.com/google/uuid"
)

// Form field layouts for meeting scheduling.
const (
	meetingDateLayout = "2006-01-02"
	meetingTimeLayout = "15:04"
)

// meetingLinkPattern re-extracts a video call URL out of the free-text
// location field.
var meetingLinkPattern = regexp.MustCompile(`https?://\S+`)

// MeetingParams are the caller-supplied fields of a meeting.
type MeetingParams struct {
	Title    string
	Date     string // 2006-01-02
	Time     string // 15:04
	Location string
	Link     string
	// GenerateLink asks for a synthesized video call room instead of a
	// caller-provided link.
	GenerateLink bool
	BookID       string
}

// GenerateMeetingLink returns a fresh video call room URL. Rooms are
// created on first join, so handing out the URL is all there is to it.
func GenerateMeetingLink() (string, error) {
	suffix := make([]byte, 5)
	max := big.NewInt(36)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate meeting link: %w", err)
		}
		suffix[i] = "0123456789abcdefghijklmnopqrstuvwxyz"[n.Int64()]
	}
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return fmt.Sprintf("https://meet.jit.si/clubreads-%s-%s", ts, suffix), nil
}

// ScheduleMeeting creates a meeting for a club. Premium only. The date
// and time fields are interpreted in the configured time zone.
func (b *Backend) ScheduleMeeting(ctx context.Context, user models.Profile, clubID string, params MeetingParams) (models.Meeting, error) {
	if _, err := b.Member(ctx, clubID, user.ID); err != nil {
		return models.Meeting{}, err
	}
	if err := b.requireFeature(user, proto.FeatureMeetingScheduling); err != nil {
		return models.Meeting{}, err
	}

	if params.Title == "" {
		return models.Meeting{}, errors.New("meeting title is required")
	}

	scheduledAt, err := time.ParseInLocation(
		meetingDateLayout+" "+meetingTimeLayout,
		params.Date+" "+params.Time,
		b.cfg.Location(),
	)
	if err != nil {
		return models.Meeting{}, fmt.Errorf("invalid meeting date or time: %w", err)
	}

	link := params.Link
	if params.GenerateLink && link == "" {
		link, err = GenerateMeetingLink()
		if err != nil {
			return models.Meeting{}, err
		}
	}

	location := params.Location
	if link != "" {
		if location != "" {
			location = location + " | " + link
		} else {
			location = link
		}
	}

	if params.BookID != "" {
		if _, err := b.Book(ctx, params.BookID); err != nil {
			return models.Meeting{}, err
		}
	}

	m := models.Meeting{
		ID:          uuid.NewString(),
		ClubID:      clubID,
		BookID:      nullString(params.BookID),
		Title:       params.Title,
		ScheduledAt: scheduledAt.UTC(),
		Location:    nullString(location),
	}
	if err := b.store.CreateMeeting(ctx, b.db, m); err != nil {
		return models.Meeting{}, db.WrapError(err)
	}

	b.logger.Info("meeting scheduled", "club", clubID, "meeting", m.ID, "at", m.ScheduledAt)
	return b.store.GetMeetingByID(ctx, b.db, m.ID)
}

// Meeting returns the meeting with the given id.
func (b *Backend) Meeting(ctx context.Context, id string) (models.Meeting, error) {
	m, err := b.store.GetMeetingByID(ctx, b.db, id)
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return models.Meeting{}, proto.ErrMeetingNotFound
		}
		return models.Meeting{}, err
	}
	return m, nil
}

// UpcomingMeetings returns a club's future meetings, soonest first.
func (b *Backend) UpcomingMeetings(ctx context.Context, clubID, userID string) ([]models.Meeting, error) {
	if _, err := b.Member(ctx, clubID, userID); err != nil {
		return nil, err
	}
	return b.store.ListUpcomingMeetings(ctx, b.db, clubID, time.Now().UTC())
}

// MeetingLink extracts the video call URL from a meeting's location, if
// there is one. Best effort: the location is free text.
func MeetingLink(m models.Meeting) string {
	if !m.Location.Valid {
		return ""
	}
	return strings.TrimSpace(meetingLinkPattern.FindString(m.Location.String))
}

// MeetingPlace returns the location with any video call URL stripped.
func MeetingPlace(m models.Meeting) string {
	if !m.Location.Valid {
		return ""
	}
	place := meetingLinkPattern.ReplaceAllString(m.Location.String, "")
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(place), "|"))
}
