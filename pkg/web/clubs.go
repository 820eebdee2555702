package web

import (
	"context"
	"net/http"

	"github.com/clubreads/clubreads/pkg/backend"
	"github.com/clubreads/clubreads/pkg/mail"
	"github.com/gorilla/mux"
)

// ClubsController registers the club routes.
func ClubsController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/clubs", postClub).Methods(http.MethodPost)
	r.HandleFunc("/clubs", getClubs).Methods(http.MethodGet)
	r.HandleFunc("/clubs/join", postJoinClub).Methods(http.MethodPost)
	r.HandleFunc("/clubs/{id}", getClubDetail).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{id}", patchClub).Methods(http.MethodPatch)
	r.HandleFunc("/clubs/{id}", deleteClub).Methods(http.MethodDelete)
	r.HandleFunc("/clubs/{id}/leave", postLeaveClub).Methods(http.MethodPost)
	r.HandleFunc("/clubs/{id}/notify", postNotifyClub).Methods(http.MethodPost)
}

func postClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	var req struct {
		Name           string `json:"name"`
		Description    string `json:"description"`
		MeetingCadence string `json:"meeting_cadence"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderBadRequest(w, err.Error())
		return
	}
	if req.Name == "" {
		renderBadRequest(w, "name is required")
		return
	}

	club, err := be.CreateClub(ctx, user, req.Name, req.Description, req.MeetingCadence)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusCreated, toClub(be, club))
}

func getClubs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	clubs, err := be.Clubs(ctx, user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]clubResponse, 0, len(clubs))
	for _, c := range clubs {
		resp = append(resp, toClub(be, c))
	}
	renderJSON(w, http.StatusOK, resp)
}

func postJoinClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderBadRequest(w, err.Error())
		return
	}
	if req.Code == "" {
		renderBadRequest(w, "code is required")
		return
	}

	club, err := be.JoinByInviteCode(ctx, user, req.Code)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, toClub(be, club))
}

func getClubDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	detail, err := be.ClubDetailFor(ctx, mux.Vars(r)["id"], user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, toClubDetail(be, detail))
}

func patchClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	var req struct {
		Name           string `json:"name"`
		Description    string `json:"description"`
		CurrentTheme   string `json:"current_theme"`
		MeetingCadence string `json:"meeting_cadence"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderBadRequest(w, err.Error())
		return
	}

	club, err := be.UpdateClub(ctx, user, mux.Vars(r)["id"], backend.UpdateClubParams{
		Name:         req.Name,
		Description:  req.Description,
		CurrentTheme: req.CurrentTheme,
		Cadence:      req.MeetingCadence,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, toClub(be, club))
}

func deleteClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	if err := be.DeleteClub(ctx, user, mux.Vars(r)["id"]); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func postLeaveClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	if err := be.LeaveClub(ctx, user, mux.Vars(r)["id"]); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func postNotifyClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	var req struct {
		Type      string `json:"type"`
		BookID    string `json:"book_id"`
		MeetingID string `json:"meeting_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderBadRequest(w, err.Error())
		return
	}
	if !mail.ValidType(req.Type) {
		renderBadRequest(w, "unknown email type")
		return
	}

	res, err := be.NotifyClub(ctx, user, mux.Vars(r)["id"], backend.NotifyParams{
		Type:      req.Type,
		BookID:    req.BookID,
		MeetingID: req.MeetingID,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, map[string]int{"sent": res.Sent, "failed": res.Failed})
}
