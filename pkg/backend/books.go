package backend

import (
	"context"
	"database/sql"
	"errors"

	"github.com/clubreads/clubreads/pkg/access"
	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/proto"
	"github.com/google/uuid"
)

// NominateParams are the caller-supplied fields of a nomination.
type NominateParams struct {
	Title        string
	Author       string
	PageCount    int
	CoverURL     string
	GoodreadsURL string
	ThemeID      string
}

// NominateBook adds a book to a club's open nominations. Any member can
// nominate, there is no duplicate-title detection and no rate limiting.
func (b *Backend) NominateBook(ctx context.Context, user models.Profile, clubID string, params NominateParams) (models.Book, error) {
	if params.Title == "" || params.Author == "" {
		return models.Book{}, errors.New("title and author are required")
	}
	if params.PageCount < 0 {
		return models.Book{}, errors.New("page count must be positive")
	}

	if _, err := b.Member(ctx, clubID, user.ID); err != nil {
		return models.Book{}, err
	}

	if params.ThemeID != "" {
		if _, err := b.store.GetThemeByID(ctx, b.db, params.ThemeID); err != nil {
			if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
				return models.Book{}, errors.New("unknown theme")
			}
			return models.Book{}, err
		}
	}

	book := models.Book{
		ID:           uuid.NewString(),
		ClubID:       clubID,
		Title:        params.Title,
		Author:       params.Author,
		CoverURL:     nullString(params.CoverURL),
		GoodreadsURL: nullString(params.GoodreadsURL),
		ThemeID:      nullString(params.ThemeID),
		Status:       models.StatusNominated,
		NominatedBy:  nullString(user.ID),
	}
	if params.PageCount > 0 {
		book.PageCount = sql.NullInt64{Int64: int64(params.PageCount), Valid: true}
	}

	if err := b.store.CreateBook(ctx, b.db, book); err != nil {
		return models.Book{}, db.WrapError(err)
	}

	b.logger.Info("book nominated", "club", clubID, "book", book.ID, "title", book.Title)
	return b.store.GetBookByID(ctx, b.db, book.ID)
}

// Book returns the book with the given id.
func (b *Backend) Book(ctx context.Context, id string) (models.Book, error) {
	book, err := b.store.GetBookByID(ctx, b.db, id)
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return models.Book{}, proto.ErrBookNotFound
		}
		return models.Book{}, err
	}
	return book, nil
}

// Nominations returns a club's open nominations with vote counts.
func (b *Backend) Nominations(ctx context.Context, clubID, userID string) ([]models.BookTally, error) {
	if _, err := b.Member(ctx, clubID, userID); err != nil {
		return nil, err
	}
	return b.store.ListOpenNominations(ctx, b.db, clubID)
}

// ToggleVote flips the user's vote on a book: voting when they haven't,
// retracting when they have. It reports whether the user has a vote after
// the call. The unique (book, user) constraint backstops concurrent
// toggles, so double casting can never yield two rows.
func (b *Backend) ToggleVote(ctx context.Context, bookID, userID string) (voted bool, err error) {
	err = b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		book, err := b.store.GetBookByID(ctx, tx, bookID)
		if err != nil {
			if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
				return proto.ErrBookNotFound
			}
			return err
		}
		if !book.Status.Open() {
			return proto.ErrBookNotOpen
		}
		if _, err := b.store.GetMember(ctx, tx, book.ClubID, userID); err != nil {
			if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
				return proto.ErrNotAMember
			}
			return err
		}

		_, err = b.store.GetVote(ctx, tx, bookID, userID)
		switch {
		case err == nil:
			voted = false
			return b.store.DeleteVote(ctx, tx, bookID, userID)
		case errors.Is(db.WrapError(err), db.ErrRecordNotFound):
			voted = true
			if err := b.store.CreateVote(ctx, tx, uuid.NewString(), bookID, userID, 1); err != nil {
				// Lost a race with another cast of the same vote.
				if errors.Is(db.WrapError(err), db.ErrDuplicateKey) {
					return nil
				}
				return err
			}
			return nil
		default:
			return err
		}
	})
	if err == nil {
		action := "retract"
		if voted {
			action = "cast"
		}
		voteToggleCounter.WithLabelValues(action).Inc()
	}
	return voted, err
}

// SelectWinner promotes the most-voted open nomination to reading status
// and clears the rest, all in one transaction. Ties break toward the
// oldest nomination. The losing nominations and every vote involved are
// deleted; the history of a voting round is not kept.
func (b *Backend) SelectWinner(ctx context.Context, clubID, userID string) (models.Book, error) {
	member, err := b.Member(ctx, clubID, userID)
	if err != nil {
		return models.Book{}, err
	}
	if access.ParseRole(member.Role) < access.Admin {
		return models.Book{}, proto.ErrUnauthorized
	}

	var winner models.Book
	err = b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		tallies, err := b.store.ListOpenNominations(ctx, tx, clubID)
		if err != nil {
			return err
		}
		if len(tallies) == 0 {
			return proto.ErrNoCandidates
		}

		winner = tallies[0].Book
		for _, loser := range tallies[1:] {
			if err := b.store.DeleteVotesByBook(ctx, tx, loser.ID); err != nil {
				return err
			}
			if err := b.store.DeleteBook(ctx, tx, loser.ID); err != nil {
				return err
			}
		}

		if err := b.store.PromoteBook(ctx, tx, winner.ID); err != nil {
			return err
		}
		return b.store.DeleteVotesByBook(ctx, tx, winner.ID)
	})
	if err != nil {
		return models.Book{}, err
	}

	winnerCounter.Inc()
	b.logger.Info("winner selected", "club", clubID, "book", winner.ID, "title", winner.Title)
	return b.store.GetBookByID(ctx, b.db, winner.ID)
}

// FinishBook marks the club's current book as completed.
func (b *Backend) FinishBook(ctx context.Context, bookID, userID string) (models.Book, error) {
	book, err := b.Book(ctx, bookID)
	if err != nil {
		return models.Book{}, err
	}
	member, err := b.Member(ctx, book.ClubID, userID)
	if err != nil {
		return models.Book{}, err
	}
	if access.ParseRole(member.Role) < access.Admin {
		return models.Book{}, proto.ErrUnauthorized
	}

	if err := b.store.CompleteBook(ctx, b.db, bookID); err != nil {
		return models.Book{}, err
	}
	return b.store.GetBookByID(ctx, b.db, bookID)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
