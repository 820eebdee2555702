package database

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/store"
)

type questionStore struct{}

var _ store.QuestionStore = (*questionStore)(nil)

// CreateQuestion implements store.QuestionStore.
func (*questionStore) CreateQuestion(ctx context.Context, tx db.Handler, q models.DiscussionQuestion) error {
	query := tx.Rebind(`INSERT INTO discussion_questions (id, book_id, question, assigned_to, sort_order)
			VALUES (?, ?, ?, ?, ?);`)
	_, err := tx.ExecContext(ctx, query, q.ID, q.BookID, q.Question, q.AssignedTo, q.SortOrder)
	return err //nolint:wrapcheck
}

// ListQuestionsByBook implements store.QuestionStore.
func (*questionStore) ListQuestionsByBook(ctx context.Context, tx db.Handler, bookID string) ([]models.DiscussionQuestion, error) {
	var ms []models.DiscussionQuestion
	query := tx.Rebind(`SELECT * FROM discussion_questions WHERE book_id = ? ORDER BY sort_order;`)
	err := tx.SelectContext(ctx, &ms, query, bookID)
	return ms, err //nolint:wrapcheck
}

// CountQuestionsByBook implements store.QuestionStore.
func (*questionStore) CountQuestionsByBook(ctx context.Context, tx db.Handler, bookID string) (int, error) {
	var count int
	query := tx.Rebind(`SELECT COUNT(*) FROM discussion_questions WHERE book_id = ?;`)
	err := tx.GetContext(ctx, &count, query, bookID)
	return count, err //nolint:wrapcheck
}
