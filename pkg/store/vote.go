package store

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
)

// VoteStore is an interface for managing book votes.
type VoteStore interface {
	GetVote(ctx context.Context, h db.Handler, bookID string, userID string) (models.BookVote, error)
	CreateVote(ctx context.Context, h db.Handler, id string, bookID string, userID string, rank int) error
	DeleteVote(ctx context.Context, h db.Handler, bookID string, userID string) error
	CountVotes(ctx context.Context, h db.Handler, bookID string) (int, error)
	DeleteVotesByBook(ctx context.Context, h db.Handler, bookID string) error
}
