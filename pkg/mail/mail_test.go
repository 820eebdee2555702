package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clubreads/clubreads/pkg/config"
	"github.com/matryer/is"
)

func TestRenderBookSelected(t *testing.T) {
	is := is.New(t)

	e, err := Render(TypeBookSelected, TemplateData{
		MemberName:   "Ada",
		ClubName:     "Night Owls",
		BookTitle:    "Piranesi",
		BookAuthor:   "Susanna Clarke",
		DashboardURL: "https://clubreads.app/dashboard",
	})
	is.NoErr(err)
	is.Equal(e.Subject, "📚 New book selected: Piranesi")
	is.True(strings.Contains(e.HTML, "Hi Ada!"))
	is.True(strings.Contains(e.HTML, "by Susanna Clarke"))
	is.True(!strings.Contains(e.HTML, "Discussion scheduled for"))
}

func TestRenderMeetingReminderWithQuestion(t *testing.T) {
	is := is.New(t)

	e, err := Render(TypeMeetingReminder, TemplateData{
		MemberName:      "Grace",
		ClubName:        "Night Owls",
		BookTitle:       "Piranesi",
		MeetingDate:     "March 5 at 7pm",
		MeetingLocation: "The library",
		Question:        "What is the House?",
	})
	is.NoErr(err)
	is.Equal(e.Subject, "⏰ Reminder: Night Owls meets March 5 at 7pm")
	is.True(strings.Contains(e.HTML, "The library"))
	is.True(strings.Contains(e.HTML, "What is the House?"))
}

func TestRenderEscapesHTML(t *testing.T) {
	is := is.New(t)

	e, err := Render(TypeVotingOpen, TemplateData{
		MemberName: "Eve",
		ClubName:   `<script>alert("x")</script>`,
	})
	is.NoErr(err)
	is.True(!strings.Contains(e.HTML, "<script>"))
}

func TestRenderUnknownType(t *testing.T) {
	is := is.New(t)

	_, err := Render("launch_party", TemplateData{})
	is.True(err != nil)
}

func TestValidType(t *testing.T) {
	is := is.New(t)
	is.True(ValidType(TypeVotingOpen))
	is.True(!ValidType("nope"))
}

func TestSend(t *testing.T) {
	is := is.New(t)

	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/emails")
		is.Equal(r.Header.Get("Authorization"), "Bearer test-key")
		is.NoErr(json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"email_1"}`)) // nolint: errcheck
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.Mail.APIURL = srv.URL
	cfg.Mail.APIKey = "test-key"

	c := NewClient(cfg)
	err := c.Send(context.TODO(), "ada@example.com", Email{Subject: "hello", HTML: "<p>hi</p>"})
	is.NoErr(err)
	is.Equal(got.To, []string{"ada@example.com"})
	is.Equal(got.Subject, "hello")
	is.Equal(got.From, cfg.Mail.From)
}

func TestSendAPIError(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"invalid from"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.Mail.APIURL = srv.URL

	c := NewClient(cfg)
	err := c.Send(context.TODO(), "ada@example.com", Email{Subject: "hello", HTML: "<p>hi</p>"})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "invalid from"))
}
