package database

import (
	"context"
	"time"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/store"
)

type bookStore struct{}

var _ store.BookStore = (*bookStore)(nil)

// CreateBook implements store.BookStore.
//
// created_at is stamped here instead of left to the column default: the
// default has one-second resolution, which cannot order nominations made
// within the same second.
func (*bookStore) CreateBook(ctx context.Context, tx db.Handler, b models.Book) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	query := tx.Rebind(`INSERT INTO books (id, club_id, title, author, page_count, cover_url, goodreads_url, theme_id, status, nominated_by, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	_, err := tx.ExecContext(ctx, query,
		b.ID, b.ClubID, b.Title, b.Author,
		b.PageCount, b.CoverURL, b.GoodreadsURL, b.ThemeID,
		b.Status, b.NominatedBy, b.CreatedAt)
	return err //nolint:wrapcheck
}

// GetBookByID implements store.BookStore.
func (*bookStore) GetBookByID(ctx context.Context, tx db.Handler, id string) (models.Book, error) {
	var m models.Book
	query := tx.Rebind(`SELECT * FROM books WHERE id = ?;`)
	err := tx.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// ListBooksByClub implements store.BookStore.
func (*bookStore) ListBooksByClub(ctx context.Context, tx db.Handler, clubID string) ([]models.Book, error) {
	var ms []models.Book
	query := tx.Rebind(`SELECT * FROM books WHERE club_id = ? ORDER BY created_at;`)
	err := tx.SelectContext(ctx, &ms, query, clubID)
	return ms, err //nolint:wrapcheck
}

// ListOpenNominations implements store.BookStore.
//
// Ties break toward the oldest nomination so the ranking is stable across
// calls.
func (*bookStore) ListOpenNominations(ctx context.Context, tx db.Handler, clubID string) ([]models.BookTally, error) {
	var ms []models.BookTally
	query := tx.Rebind(`SELECT books.*, COUNT(book_votes.id) AS vote_count
			FROM books
			LEFT JOIN book_votes ON books.id = book_votes.book_id
			WHERE books.club_id = ? AND books.status IN ('nominated', 'voting')
			GROUP BY books.id
			ORDER BY vote_count DESC, books.created_at ASC, books.id ASC;`)
	err := tx.SelectContext(ctx, &ms, query, clubID)
	return ms, err //nolint:wrapcheck
}

// GetCurrentBook implements store.BookStore.
func (*bookStore) GetCurrentBook(ctx context.Context, tx db.Handler, clubID string) (models.Book, error) {
	var m models.Book
	query := tx.Rebind(`SELECT * FROM books
			WHERE club_id = ? AND status = 'reading'
			ORDER BY selected_at DESC LIMIT 1;`)
	err := tx.GetContext(ctx, &m, query, clubID)
	return m, err //nolint:wrapcheck
}

// PromoteBook implements store.BookStore.
func (*bookStore) PromoteBook(ctx context.Context, tx db.Handler, id string) error {
	query := tx.Rebind(`UPDATE books SET status = 'reading', selected_at = CURRENT_TIMESTAMP
			WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}

// CompleteBook implements store.BookStore.
func (*bookStore) CompleteBook(ctx context.Context, tx db.Handler, id string) error {
	query := tx.Rebind(`UPDATE books SET status = 'completed', completed_at = CURRENT_TIMESTAMP
			WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}

// DeleteBook implements store.BookStore.
func (*bookStore) DeleteBook(ctx context.Context, tx db.Handler, id string) error {
	query := tx.Rebind(`DELETE FROM books WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}
