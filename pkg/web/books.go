package web

import (
	"context"
	"net/http"

	"github.com/clubreads/clubreads/pkg/backend"
	"github.com/gorilla/mux"
)

// BooksController registers the nomination and voting routes.
func BooksController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/clubs/{id}/books", postBook).Methods(http.MethodPost)
	r.HandleFunc("/clubs/{id}/books", getBooks).Methods(http.MethodGet)
	r.HandleFunc("/clubs/{id}/select-winner", postSelectWinner).Methods(http.MethodPost)
	r.HandleFunc("/books/{id}/vote", postVote).Methods(http.MethodPost)
	r.HandleFunc("/books/{id}/finish", postFinishBook).Methods(http.MethodPost)
}

func postBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	var req struct {
		Title        string `json:"title"`
		Author       string `json:"author"`
		PageCount    int    `json:"page_count"`
		CoverURL     string `json:"cover_url"`
		GoodreadsURL string `json:"goodreads_url"`
		ThemeID      string `json:"theme_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderBadRequest(w, err.Error())
		return
	}
	if req.Title == "" || req.Author == "" {
		renderBadRequest(w, "title and author are required")
		return
	}

	book, err := be.NominateBook(ctx, user, mux.Vars(r)["id"], backend.NominateParams{
		Title:        req.Title,
		Author:       req.Author,
		PageCount:    req.PageCount,
		CoverURL:     req.CoverURL,
		GoodreadsURL: req.GoodreadsURL,
		ThemeID:      req.ThemeID,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusCreated, toBook(book))
}

func getBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	tallies, err := be.Nominations(ctx, mux.Vars(r)["id"], user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]bookResponse, 0, len(tallies))
	for _, t := range tallies {
		resp = append(resp, toTally(t))
	}
	renderJSON(w, http.StatusOK, resp)
}

func postVote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	voted, err := be.ToggleVote(ctx, mux.Vars(r)["id"], user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, map[string]bool{"voted": voted})
}

func postSelectWinner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	winner, err := be.SelectWinner(ctx, mux.Vars(r)["id"], user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, toBook(winner))
}

func postFinishBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	book, err := be.FinishBook(ctx, mux.Vars(r)["id"], user.ID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, toBook(book))
}
