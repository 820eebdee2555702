package backend

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/proto"
	"github.com/matryer/is"
)

func TestScheduleMeeting(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)
	b.cfg.Meetings.TimeZone = "America/New_York"

	owner := newProfile(t, ctx, b, "owner@example.com", true)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	m, err := b.ScheduleMeeting(ctx, owner, club.ID, MeetingParams{
		Title:    "Discuss: Piranesi",
		Date:     "2026-09-10",
		Time:     "19:00",
		Location: "The library",
	})
	is.NoErr(err)

	// 19:00 New York is 23:00 UTC during DST.
	want := time.Date(2026, 9, 10, 23, 0, 0, 0, time.UTC)
	is.Equal(m.ScheduledAt.UTC(), want)
	is.Equal(m.Location.String, "The library")
}

func TestScheduleMeetingPremiumGate(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	free := newProfile(t, ctx, b, "free@example.com", false)
	club, err := b.CreateClub(ctx, free, "Night Owls", "", "")
	is.NoErr(err)

	_, err = b.ScheduleMeeting(ctx, free, club.ID, MeetingParams{
		Title: "Kickoff",
		Date:  "2026-09-10",
		Time:  "19:00",
	})
	is.True(errors.Is(err, proto.ErrPremiumRequired))
}

func TestScheduleMeetingGeneratedLink(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", true)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	m, err := b.ScheduleMeeting(ctx, owner, club.ID, MeetingParams{
		Title:        "Kickoff",
		Date:         "2026-09-10",
		Time:         "19:00",
		Location:     "Cafe on 5th",
		GenerateLink: true,
	})
	is.NoErr(err)

	link := MeetingLink(m)
	is.True(strings.HasPrefix(link, "https://meet.jit.si/clubreads-"))
	is.Equal(MeetingPlace(m), "Cafe on 5th")
	is.True(strings.Contains(m.Location.String, " | "))
}

func TestScheduleMeetingBadDate(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", true)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	_, err = b.ScheduleMeeting(ctx, owner, club.ID, MeetingParams{
		Title: "Kickoff",
		Date:  "next tuesday",
		Time:  "19:00",
	})
	is.True(err != nil)
}

func TestMeetingLinkExtraction(t *testing.T) {
	is := is.New(t)

	m := models.Meeting{Location: sql.NullString{String: "https://meet.jit.si/clubreads-abc-def12", Valid: true}}
	is.Equal(MeetingLink(m), "https://meet.jit.si/clubreads-abc-def12")
	is.Equal(MeetingPlace(m), "")

	m.Location = sql.NullString{}
	is.Equal(MeetingLink(m), "")
}

func TestUpcomingMeetingsMemberOnly(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", true)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	stranger := newProfile(t, ctx, b, "stranger@example.com", false)
	_, err = b.UpcomingMeetings(ctx, club.ID, stranger.ID)
	is.True(errors.Is(err, proto.ErrNotAMember))
}
