package database

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/store"
)

type voteStore struct{}

var _ store.VoteStore = (*voteStore)(nil)

// GetVote implements store.VoteStore.
func (*voteStore) GetVote(ctx context.Context, tx db.Handler, bookID string, userID string) (models.BookVote, error) {
	var m models.BookVote
	query := tx.Rebind(`SELECT * FROM book_votes WHERE book_id = ? AND user_id = ?;`)
	err := tx.GetContext(ctx, &m, query, bookID, userID)
	return m, err //nolint:wrapcheck
}

// CreateVote implements store.VoteStore.
func (*voteStore) CreateVote(ctx context.Context, tx db.Handler, id string, bookID string, userID string, rank int) error {
	query := tx.Rebind(`INSERT INTO book_votes (id, book_id, user_id, rank)
			VALUES (?, ?, ?, ?);`)
	_, err := tx.ExecContext(ctx, query, id, bookID, userID, rank)
	return err //nolint:wrapcheck
}

// DeleteVote implements store.VoteStore.
func (*voteStore) DeleteVote(ctx context.Context, tx db.Handler, bookID string, userID string) error {
	query := tx.Rebind(`DELETE FROM book_votes WHERE book_id = ? AND user_id = ?;`)
	_, err := tx.ExecContext(ctx, query, bookID, userID)
	return err //nolint:wrapcheck
}

// CountVotes implements store.VoteStore.
func (*voteStore) CountVotes(ctx context.Context, tx db.Handler, bookID string) (int, error) {
	var count int
	query := tx.Rebind(`SELECT COUNT(*) FROM book_votes WHERE book_id = ?;`)
	err := tx.GetContext(ctx, &count, query, bookID)
	return count, err //nolint:wrapcheck
}

// DeleteVotesByBook implements store.VoteStore.
func (*voteStore) DeleteVotesByBook(ctx context.Context, tx db.Handler, bookID string) error {
	query := tx.Rebind(`DELETE FROM book_votes WHERE book_id = ?;`)
	_, err := tx.ExecContext(ctx, query, bookID)
	return err //nolint:wrapcheck
}
