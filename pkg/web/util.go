package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/clubreads/clubreads/pkg/proto"
)

func renderStatus(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		io.WriteString(w, fmt.Sprintf("%d %s", code, http.StatusText(code))) //nolint:errcheck,gosec
	}
}

func renderNotFound(w http.ResponseWriter, _ *http.Request) {
	renderJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
}

type errorResponse struct {
	Error string `json:"error"`
	// LoginURL is set on 401 responses so clients know where to send the
	// user.
	LoginURL string `json:"login_url,omitempty"`
}

func renderJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck,errchkjson
}

// renderError maps domain errors onto HTTP statuses. Anything unmapped
// is a 500 with the detail kept out of the response body.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, proto.ErrClubNotFound),
		errors.Is(err, proto.ErrBookNotFound),
		errors.Is(err, proto.ErrMeetingNotFound),
		errors.Is(err, proto.ErrUserNotFound):
		code = http.StatusNotFound
	case errors.Is(err, proto.ErrUnauthorized),
		errors.Is(err, proto.ErrNotAMember):
		code = http.StatusForbidden
	case errors.Is(err, proto.ErrPremiumRequired):
		code = http.StatusPaymentRequired
	case errors.Is(err, proto.ErrBookNotOpen),
		errors.Is(err, proto.ErrNoCandidates),
		errors.Is(err, proto.ErrNoBillingAccount):
		code = http.StatusConflict
	}

	if code == http.StatusInternalServerError {
		log.FromContext(r.Context()).Error("request failed", "err", err)
		msg = http.StatusText(code)
	}
	renderJSON(w, code, errorResponse{Error: msg})
}

func renderBadRequest(w http.ResponseWriter, msg string) {
	renderJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// decodeJSON reads a small JSON request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close() //nolint:errcheck
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}
