package backend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clubreads/clubreads/pkg/config"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/mail"
	"github.com/matryer/is"
)

type sentMail struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func stubMail(t *testing.T, b *Backend, sent *[]sentMail, fail func(to string) bool) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var m sentMail
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if fail != nil && len(m.To) == 1 && fail(m.To[0]) {
			http.Error(w, "mailbox unavailable", http.StatusBadGateway)
			return
		}
		*sent = append(*sent, m)
		w.Write([]byte(`{"id":"email_1"}`)) // nolint: errcheck
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.Mail.APIURL = srv.URL
	b.WithMailClient(mail.NewClient(cfg))
}

func TestNotifyClubBookSelected(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	var sent []sentMail
	stubMail(t, b, &sent, nil)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)
	reader := newProfile(t, ctx, b, "reader@example.com", false)
	_, err = b.JoinByInviteCode(ctx, reader, club.InviteCode)
	is.NoErr(err)

	book := nominate(t, ctx, b, owner, club.ID, "Piranesi")

	res, err := b.NotifyClub(ctx, owner, club.ID, NotifyParams{
		Type:   mail.TypeBookSelected,
		BookID: book.ID,
	})
	is.NoErr(err)
	is.Equal(res.Sent, 2)
	is.Equal(res.Failed, 0)
	is.Equal(len(sent), 2)
	is.Equal(sent[0].Subject, "📚 New book selected: Piranesi")

	logs, err := b.store.ListEmailLogsByClub(ctx, b.db, club.ID)
	is.NoErr(err)
	is.Equal(len(logs), 2)
	for _, l := range logs {
		is.Equal(l.Status, models.EmailStatusSent)
		is.Equal(l.EmailType, mail.TypeBookSelected)
	}
}

func TestNotifyClubPartialFailure(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	var sent []sentMail
	stubMail(t, b, &sent, func(to string) bool { return to == "broken@example.com" })

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)
	broken := newProfile(t, ctx, b, "broken@example.com", false)
	_, err = b.JoinByInviteCode(ctx, broken, club.InviteCode)
	is.NoErr(err)

	res, err := b.NotifyClub(ctx, owner, club.ID, NotifyParams{Type: mail.TypeVotingOpen})
	is.NoErr(err) // the batch itself succeeds
	is.Equal(res.Sent, 1)
	is.Equal(res.Failed, 1)

	logs, err := b.store.ListEmailLogsByClub(ctx, b.db, club.ID)
	is.NoErr(err)
	is.Equal(len(logs), 2)

	var failed int
	for _, l := range logs {
		if l.Status == models.EmailStatusFailed {
			failed++
			is.True(l.Error.Valid)
		}
	}
	is.Equal(failed, 1)
}

func TestNotifyClubInvalidType(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	owner := newProfile(t, ctx, b, "owner@example.com", false)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)

	_, err = b.NotifyClub(ctx, owner, club.ID, NotifyParams{Type: "carrier_pigeon"})
	is.True(err != nil)
}

func TestNotifyClubMeetingReminderIncludesQuestion(t *testing.T) {
	is := is.New(t)
	ctx, b := testBackend(t)

	var sent []sentMail
	stubMail(t, b, &sent, nil)

	owner := newProfile(t, ctx, b, "owner@example.com", true)
	club, err := b.CreateClub(ctx, owner, "Night Owls", "", "")
	is.NoErr(err)
	nominate(t, ctx, b, owner, club.ID, "Piranesi")
	book, err := b.SelectWinner(ctx, club.ID, owner.ID)
	is.NoErr(err)

	q := models.DiscussionQuestion{
		ID:         "q-1",
		BookID:     book.ID,
		Question:   "What is the House?",
		AssignedTo: nullString(owner.ID),
	}
	is.NoErr(b.store.CreateQuestion(ctx, b.db, q))

	meeting, err := b.ScheduleMeeting(ctx, owner, club.ID, MeetingParams{
		Title:  "Discuss: Piranesi",
		Date:   "2026-09-10",
		Time:   "19:00",
		BookID: book.ID,
	})
	is.NoErr(err)

	_, err = b.NotifyClub(ctx, owner, club.ID, NotifyParams{
		Type:      mail.TypeMeetingReminder,
		MeetingID: meeting.ID,
	})
	is.NoErr(err)
	is.Equal(len(sent), 1)
	is.True(strings.Contains(sent[0].HTML, "What is the House?"))
	is.True(strings.Contains(sent[0].HTML, "Piranesi"))
}
