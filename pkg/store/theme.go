package store

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
)

// ThemeStore is an interface for reading the theme catalog.
type ThemeStore interface {
	ListThemes(ctx context.Context, h db.Handler) ([]models.Theme, error)
	GetThemeByID(ctx context.Context, h db.Handler, id string) (models.Theme, error)
}
