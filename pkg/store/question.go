package store

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
)

// QuestionStore is an interface for managing discussion questions.
type QuestionStore interface {
	CreateQuestion(ctx context.Context, h db.Handler, q models.DiscussionQuestion) error
	ListQuestionsByBook(ctx context.Context, h db.Handler, bookID string) ([]models.DiscussionQuestion, error)
	CountQuestionsByBook(ctx context.Context, h db.Handler, bookID string) (int, error)
}
