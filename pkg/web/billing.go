package web

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/clubreads/clubreads/pkg/backend"
	"github.com/clubreads/clubreads/pkg/billing"
	"github.com/clubreads/clubreads/pkg/config"
	"github.com/gorilla/mux"
)

// BillingController registers the checkout and portal routes. These sit
// behind the auth middleware.
func BillingController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/billing/checkout", postCheckout).Methods(http.MethodPost)
	r.HandleFunc("/billing/portal", postPortal).Methods(http.MethodPost)
}

// WebhookController registers the billing webhook route. It is public,
// authenticity comes from the payload signature instead.
func WebhookController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/webhooks/billing", postBillingWebhook).Methods(http.MethodPost)
}

func postCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	url, err := be.CheckoutURL(ctx, user)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, map[string]string{"url": url})
}

func postPortal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)
	user, _ := profileFromContext(ctx)

	url, err := be.PortalURL(ctx, user)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, map[string]string{"url": url})
}

// maxWebhookBody bounds the webhook payload we are willing to read.
const maxWebhookBody = 1 << 20

func postBillingWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cfg := config.FromContext(ctx)
	be := backend.FromContext(ctx)
	logger := log.FromContext(ctx)

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		renderBadRequest(w, "read payload")
		return
	}
	defer r.Body.Close() //nolint:errcheck

	event, err := billing.ParseEvent(payload,
		r.Header.Get(billing.SignatureHeader),
		cfg.Billing.WebhookSecret,
		time.Now())
	if err != nil {
		logger.Warn("rejected billing webhook", "err", err)
		renderJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid signature"})
		return
	}

	if err := be.HandleBillingEvent(ctx, event); err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, map[string]bool{"received": true})
}
