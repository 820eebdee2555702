package database

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/store"
)

type themeStore struct{}

var _ store.ThemeStore = (*themeStore)(nil)

// ListThemes implements store.ThemeStore.
func (*themeStore) ListThemes(ctx context.Context, tx db.Handler) ([]models.Theme, error) {
	var ms []models.Theme
	query := tx.Rebind(`SELECT * FROM themes ORDER BY sort_order;`)
	err := tx.SelectContext(ctx, &ms, query)
	return ms, err //nolint:wrapcheck
}

// GetThemeByID implements store.ThemeStore.
func (*themeStore) GetThemeByID(ctx context.Context, tx db.Handler, id string) (models.Theme, error) {
	var m models.Theme
	query := tx.Rebind(`SELECT * FROM themes WHERE id = ?;`)
	err := tx.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}
