package web

import (
	"context"
	"net/http"

	"github.com/clubreads/clubreads/pkg/backend"
	"github.com/gorilla/mux"
)

// MeetingsController registers the meeting scheduling routes.
func MeetingsController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/clubs/{id}/meetings", postMeeting).Methods(http.MethodPost)
	r.HandleFunc("/clubs/{id}/meetings", getMeetings).Methods(http.MethodGet)
}

func postMeeting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	var req struct {
		Title        string `json:"title"`
		Date         string `json:"date"`
		Time         string `json:"time"`
		Location     string `json:"location"`
		Link         string `json:"link"`
		GenerateLink bool   `json:"generate_link"`
		BookID       string `json:"book_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderBadRequest(w, err.Error())
		return
	}
	if req.Title == "" || req.Date == "" || req.Time == "" {
		renderBadRequest(w, "title, date and time are required")
		return
	}

	meeting, err := be.ScheduleMeeting(ctx, user, mux.Vars(r)["id"], backend.MeetingParams{
		Title:        req.Title,
		Date:         req.Date,
		Time:         req.Time,
		Location:     req.Location,
		Link:         req.Link,
		GenerateLink: req.GenerateLink,
		BookID:       req.BookID,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusCreated, toMeeting(meeting))
}

func getMeetings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	meetings, err := be.UpcomingMeetings(ctx, mux.Vars(r)["id"], user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]meetingResponse, 0, len(meetings))
	for _, m := range meetings {
		resp = append(resp, toMeeting(m))
	}
	renderJSON(w, http.StatusOK, resp)
}
