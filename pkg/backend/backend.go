// Package backend implements the ClubReads domain operations on top of
// the store and the external collaborators.
package backend

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/clubreads/clubreads/pkg/ai"
	"github.com/clubreads/clubreads/pkg/billing"
	"github.com/clubreads/clubreads/pkg/config"
	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/mail"
	"github.com/clubreads/clubreads/pkg/store"
	"golang.org/x/sync/singleflight"
)

// Backend is the ClubReads backend that handles clubs, books, meetings,
// and membership management and operations.
type Backend struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	store  store.Store
	logger *log.Logger
	cache  *cache

	ai      *ai.Client
	mail    *mail.Client
	billing *billing.Client

	// generating dedupes concurrent question generation per book.
	generating singleflight.Group
}

// New returns a new ClubReads backend.
func New(ctx context.Context, cfg *config.Config, db *db.DB, st store.Store) *Backend {
	logger := log.FromContext(ctx).WithPrefix("backend")
	b := &Backend{
		ctx:     ctx,
		cfg:     cfg,
		db:      db,
		store:   st,
		logger:  logger,
		ai:      ai.NewClient(cfg),
		mail:    mail.NewClient(cfg),
		billing: billing.NewClient(cfg),
	}

	b.cache = newCache(b, 1000)

	return b
}

// WithAIClient replaces the question generation client. Used by tests.
func (b *Backend) WithAIClient(c *ai.Client) *Backend {
	b.ai = c
	return b
}

// WithMailClient replaces the email client. Used by tests.
func (b *Backend) WithMailClient(c *mail.Client) *Backend {
	b.mail = c
	return b
}

// WithBillingClient replaces the billing client. Used by tests.
func (b *Backend) WithBillingClient(c *billing.Client) *Backend {
	b.billing = c
	return b
}
