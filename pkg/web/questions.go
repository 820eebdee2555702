package web

import (
	"context"
	"net/http"

	"github.com/clubreads/clubreads/pkg/backend"
	"github.com/gorilla/mux"
)

// QuestionsController registers the discussion question routes.
func QuestionsController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/books/{id}/questions", postQuestions).Methods(http.MethodPost)
	r.HandleFunc("/books/{id}/questions", getQuestions).Methods(http.MethodGet)
}

func postQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	res, err := be.GenerateQuestions(ctx, user, mux.Vars(r)["id"])
	if err != nil {
		renderError(w, r, err)
		return
	}

	code := http.StatusCreated
	if res.Existing {
		code = http.StatusOK
	}
	renderJSON(w, code, map[string]interface{}{
		"count":    res.Count,
		"existing": res.Existing,
	})
}

func getQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	questions, err := be.Questions(ctx, user.ID, mux.Vars(r)["id"])
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]questionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, toQuestion(q))
	}
	renderJSON(w, http.StatusOK, resp)
}
