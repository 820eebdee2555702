package store

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
)

// BookStore is an interface for managing nominated and selected books.
type BookStore interface {
	CreateBook(ctx context.Context, h db.Handler, b models.Book) error
	GetBookByID(ctx context.Context, h db.Handler, id string) (models.Book, error)
	ListBooksByClub(ctx context.Context, h db.Handler, clubID string) ([]models.Book, error)
	// ListOpenNominations returns books still open for voting with their
	// vote counts, most votes first and oldest nomination first on ties.
	ListOpenNominations(ctx context.Context, h db.Handler, clubID string) ([]models.BookTally, error)
	// GetCurrentBook returns the club's book in reading status.
	GetCurrentBook(ctx context.Context, h db.Handler, clubID string) (models.Book, error)
	// PromoteBook moves a book to reading status and stamps selected_at.
	PromoteBook(ctx context.Context, h db.Handler, id string) error
	// CompleteBook moves a book to completed status and stamps completed_at.
	CompleteBook(ctx context.Context, h db.Handler, id string) error
	DeleteBook(ctx context.Context, h db.Handler, id string) error
}
