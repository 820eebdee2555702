package database

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/clubreads/clubreads/pkg/config"
	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/store"
)

type datastore struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	logger *log.Logger

	*profileStore
	*clubStore
	*memberStore
	*bookStore
	*voteStore
	*meetingStore
	*questionStore
	*themeStore
	*emailLogStore
}

// New returns a new store.Store database.
func New(ctx context.Context, db *db.DB) store.Store {
	cfg := config.FromContext(ctx)
	logger := log.FromContext(ctx).WithPrefix("store")

	s := &datastore{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		logger: logger,

		profileStore:  &profileStore{},
		clubStore:     &clubStore{},
		memberStore:   &memberStore{},
		bookStore:     &bookStore{},
		voteStore:     &voteStore{},
		meetingStore:  &meetingStore{},
		questionStore: &questionStore{},
		themeStore:    &themeStore{},
		emailLogStore: &emailLogStore{},
	}

	return s
}
