package backend

import (
	"errors"
	"strings"
	"testing"

	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/proto"
	"github.com/matryer/is"
)

func TestCreateClubPremiumGate(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	free := newProfile(t, ctx, b, "free@example.com", false)

	// Everyone gets their first club.
	first, err := b.CreateClub(ctx, free, "First Club", "", "")
	is.NoErr(err)
	is.Equal(first.MeetingCadence, models.CadenceMonthly)
	is.Equal(len(first.InviteCode), 8)

	// The second one needs premium.
	_, err = b.CreateClub(ctx, free, "Second Club", "", "")
	is.True(errors.Is(err, proto.ErrPremiumRequired))

	premium := newProfile(t, ctx, b, "premium@example.com", true)
	_, err = b.CreateClub(ctx, premium, "One", "", "")
	is.NoErr(err)
	_, err = b.CreateClub(ctx, premium, "Two", "", "6-week")
	is.NoErr(err)
}

func TestCreateClubOwnerIsMember(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "late readers", "")
	is.NoErr(err)

	m, err := b.Member(ctx, club.ID, owner.ID)
	is.NoErr(err)
	is.Equal(m.Role, "owner")
}

func TestJoinByInviteCode(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	reader := newProfile(t, ctx, b, "reader@example.com", false)

	joined, err := b.JoinByInviteCode(ctx, reader, club.InviteCode)
	is.NoErr(err)
	is.Equal(joined.ID, club.ID)

	// Joining again is a no-op, not an error.
	_, err = b.JoinByInviteCode(ctx, reader, club.InviteCode)
	is.NoErr(err)

	members, err := b.store.ListMembers(ctx, b.db, club.ID)
	is.NoErr(err)
	is.Equal(len(members), 2)
}

func TestJoinByInviteCodeUnknown(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	reader := newProfile(t, ctx, b, "reader@example.com", false)
	_, err = b.JoinByInviteCode(ctx, reader, "no-such-code")
	is.True(errors.Is(err, proto.ErrClubNotFound))

	// No side effects.
	members, err := b.store.ListMembers(ctx, b.db, club.ID)
	is.NoErr(err)
	is.Equal(len(members), 1)
}

func TestInviteURL(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	url := b.InviteURL(club)
	is.True(strings.HasSuffix(url, "/join?code="+club.InviteCode))
}

func TestClubDetailFor(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	_, err = b.NominateBook(ctx, owner, club.ID, NominateParams{Title: "Piranesi", Author: "Susanna Clarke"})
	is.NoErr(err)

	detail, err := b.ClubDetailFor(ctx, club.ID, owner.ID)
	is.NoErr(err)
	is.Equal(detail.Club.ID, club.ID)
	is.Equal(len(detail.Members), 1)
	is.Equal(len(detail.Nominations), 1)
	is.Equal(detail.CurrentBook, nil)

	stranger := newProfile(t, ctx, b, "stranger@example.com", false)
	_, err = b.ClubDetailFor(ctx, club.ID, stranger.ID)
	is.True(errors.Is(err, proto.ErrNotAMember))
}

func TestUpdateClub(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	// Untouched fields keep their values.
	updated, err := b.UpdateClub(ctx, owner, club.ID, UpdateClubParams{
		Name:         "Early Birds",
		CurrentTheme: "mystery",
	})
	is.NoErr(err)
	is.Equal(updated.Name, "Early Birds")
	is.Equal(updated.CurrentTheme.String, "mystery")
	is.Equal(updated.MeetingCadence, models.CadenceMonthly)

	_, err = b.UpdateClub(ctx, owner, club.ID, UpdateClubParams{Cadence: "fortnightly"})
	is.True(err != nil)

	reader := newProfile(t, ctx, b, "reader@example.com", false)
	_, err = b.JoinByInviteCode(ctx, reader, club.InviteCode)
	is.NoErr(err)
	_, err = b.UpdateClub(ctx, reader, club.ID, UpdateClubParams{Name: "Mine Now"})
	is.True(errors.Is(err, proto.ErrUnauthorized))
}

func TestDeleteClub(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	reader := newProfile(t, ctx, b, "reader@example.com", false)
	_, err = b.JoinByInviteCode(ctx, reader, club.InviteCode)
	is.NoErr(err)

	err = b.DeleteClub(ctx, reader, club.ID)
	is.True(errors.Is(err, proto.ErrUnauthorized))

	is.NoErr(b.DeleteClub(ctx, owner, club.ID))
	_, err = b.Club(ctx, club.ID)
	is.True(errors.Is(err, proto.ErrClubNotFound))
	_, err = b.Member(ctx, club.ID, reader.ID)
	is.True(errors.Is(err, proto.ErrNotAMember))
}

func TestLeaveClub(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	// The owner cannot walk away from their own club.
	err = b.LeaveClub(ctx, owner, club.ID)
	is.True(errors.Is(err, proto.ErrUnauthorized))

	reader := newProfile(t, ctx, b, "reader@example.com", false)
	_, err = b.JoinByInviteCode(ctx, reader, club.InviteCode)
	is.NoErr(err)

	is.NoErr(b.LeaveClub(ctx, reader, club.ID))
	_, err = b.Member(ctx, club.ID, reader.ID)
	is.True(errors.Is(err, proto.ErrNotAMember))
}

func TestClubDetailReadingHistory(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	book, err := b.NominateBook(ctx, owner, club.ID, NominateParams{Title: "Piranesi", Author: "Susanna Clarke"})
	is.NoErr(err)
	_, err = b.SelectWinner(ctx, club.ID, owner.ID)
	is.NoErr(err)
	_, err = b.FinishBook(ctx, book.ID, owner.ID)
	is.NoErr(err)

	// A finished book leaves the current slot and the nominations, but it
	// stays visible on the club page as reading history.
	detail, err := b.ClubDetailFor(ctx, club.ID, owner.ID)
	is.NoErr(err)
	is.Equal(detail.CurrentBook, nil)
	is.Equal(len(detail.Nominations), 0)
	is.Equal(len(detail.History), 1)
	is.Equal(detail.History[0].ID, book.ID)
	is.Equal(detail.History[0].Status, models.StatusCompleted)
}

func TestGenerateInviteCode(t *testing.T) {
	is := is.New(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateInviteCode()
		is.NoErr(err)
		is.Equal(len(code), 8)
		is.True(!seen[code])
		seen[code] = true
	}
}
