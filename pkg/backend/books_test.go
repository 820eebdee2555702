package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/proto"
	"github.com/matryer/is"
)

func nominate(t *testing.T, ctx context.Context, b *Backend, user models.Profile, clubID, title string) models.Book {
	t.Helper()
	book, err := b.NominateBook(ctx, user, clubID, NominateParams{Title: title, Author: "anon"})
	if err != nil {
		t.Fatal(err)
	}
	return book
}

func TestNominateBook(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	book, err := b.NominateBook(ctx, owner, club.ID, NominateParams{
		Title:     "Piranesi",
		Author:    "Susanna Clarke",
		PageCount: 245,
	})
	is.NoErr(err)
	is.Equal(book.Status, models.StatusNominated)
	is.Equal(book.PageCount.Int64, int64(245))
	is.Equal(book.NominatedBy.String, owner.ID)

	_, err = b.NominateBook(ctx, owner, club.ID, NominateParams{Title: "", Author: "x"})
	is.True(err != nil)

	stranger := newProfile(t, ctx, b, "stranger@example.com", false)
	_, err = b.NominateBook(ctx, stranger, club.ID, NominateParams{Title: "Dune", Author: "Frank Herbert"})
	is.True(errors.Is(err, proto.ErrNotAMember))
}

func TestToggleVote(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)
	book := nominate(t, ctx, b, owner, club.ID, "Piranesi")

	// Cast.
	voted, err := b.ToggleVote(ctx, book.ID, owner.ID)
	is.NoErr(err)
	is.True(voted)
	is.Equal(countVotes(t, ctx, b, book.ID), 1)

	// Retract.
	voted, err = b.ToggleVote(ctx, book.ID, owner.ID)
	is.NoErr(err)
	is.True(!voted)
	is.Equal(countVotes(t, ctx, b, book.ID), 0)

	// Cast again.
	voted, err = b.ToggleVote(ctx, book.ID, owner.ID)
	is.NoErr(err)
	is.True(voted)
	is.Equal(countVotes(t, ctx, b, book.ID), 1)
}

func TestToggleVoteGuards(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)
	book := nominate(t, ctx, b, owner, club.ID, "Piranesi")

	stranger := newProfile(t, ctx, b, "stranger@example.com", false)
	_, err = b.ToggleVote(ctx, book.ID, stranger.ID)
	is.True(errors.Is(err, proto.ErrNotAMember))

	_, err = b.ToggleVote(ctx, "no-such-book", owner.ID)
	is.True(errors.Is(err, proto.ErrBookNotFound))

	is.NoErr(b.store.PromoteBook(ctx, b.db, book.ID))
	_, err = b.ToggleVote(ctx, book.ID, owner.ID)
	is.True(errors.Is(err, proto.ErrBookNotOpen))
}

func TestSelectWinner(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	var voters []models.Profile
	for _, email := range []string{"v1@example.com", "v2@example.com", "v3@example.com"} {
		v := newProfile(t, ctx, b, email, false)
		_, err := b.JoinByInviteCode(ctx, v, club.InviteCode)
		is.NoErr(err)
		voters = append(voters, v)
	}

	b1 := nominate(t, ctx, b, owner, club.ID, "B1")
	b2 := nominate(t, ctx, b, owner, club.ID, "B2")
	b3 := nominate(t, ctx, b, owner, club.ID, "B3")

	for _, v := range voters {
		_, err := b.ToggleVote(ctx, b1.ID, v.ID)
		is.NoErr(err)
	}
	_, err = b.ToggleVote(ctx, b2.ID, voters[0].ID)
	is.NoErr(err)
	_, err = b.ToggleVote(ctx, b3.ID, voters[1].ID)
	is.NoErr(err)

	winner, err := b.SelectWinner(ctx, club.ID, owner.ID)
	is.NoErr(err)
	is.Equal(winner.ID, b1.ID)
	is.Equal(winner.Status, models.StatusReading)
	is.True(winner.SelectedAt.Valid)

	// Losers and every vote are gone; exactly one book remains.
	books, err := b.store.ListBooksByClub(ctx, b.db, club.ID)
	is.NoErr(err)
	is.Equal(len(books), 1)
	is.Equal(books[0].ID, b1.ID)
	is.Equal(countVotes(t, ctx, b, b1.ID), 0)
	is.Equal(countVotes(t, ctx, b, b2.ID), 0)
	is.Equal(countVotes(t, ctx, b, b3.ID), 0)
}

func TestSelectWinnerTieBreaksOldest(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	first := nominate(t, ctx, b, owner, club.ID, "First In")
	nominate(t, ctx, b, owner, club.ID, "Second In")

	// No votes at all: the tie breaks toward the oldest nomination.
	winner, err := b.SelectWinner(ctx, club.ID, owner.ID)
	is.NoErr(err)
	is.Equal(winner.ID, first.ID)
}

func TestSelectWinnerGuards(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	_, err = b.SelectWinner(ctx, club.ID, owner.ID)
	is.True(errors.Is(err, proto.ErrNoCandidates))

	reader := newProfile(t, ctx, b, "reader@example.com", false)
	_, err = b.JoinByInviteCode(ctx, reader, club.InviteCode)
	is.NoErr(err)
	nominate(t, ctx, b, owner, club.ID, "Piranesi")

	// Plain members cannot select.
	_, err = b.SelectWinner(ctx, club.ID, reader.ID)
	is.True(errors.Is(err, proto.ErrUnauthorized))
}

func TestFinishBook(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)
	nominate(t, ctx, b, owner, club.ID, "Piranesi")

	winner, err := b.SelectWinner(ctx, club.ID, owner.ID)
	is.NoErr(err)

	done, err := b.FinishBook(ctx, winner.ID, owner.ID)
	is.NoErr(err)
	is.Equal(done.Status, models.StatusCompleted)
	is.True(done.CompletedAt.Valid)
}
