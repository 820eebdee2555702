package web

import (
	"context"
	"net/http"

	"github.com/clubreads/clubreads/pkg/backend"
	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/store"
	"github.com/gorilla/mux"
)

// ProfileController registers the profile and theme catalog routes.
func ProfileController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/profile", getProfile).Methods(http.MethodGet)
	r.HandleFunc("/profile", patchProfile).Methods(http.MethodPatch)
	r.HandleFunc("/themes", getThemes).Methods(http.MethodGet)
}

func getProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := profileFromContext(r.Context())
	renderJSON(w, http.StatusOK, toProfile(user))
}

func patchProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	var req struct {
		FullName  string `json:"full_name"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderBadRequest(w, err.Error())
		return
	}

	updated, err := be.UpdateProfile(ctx, user.ID, req.FullName, req.AvatarURL)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, toProfile(updated))
}

func getThemes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dbx := db.FromContext(ctx)
	datastore := store.FromContext(ctx)

	themes, err := datastore.ListThemes(ctx, dbx)
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]themeResponse, 0, len(themes))
	for _, t := range themes {
		resp = append(resp, toTheme(t))
	}
	renderJSON(w, http.StatusOK, resp)
}
