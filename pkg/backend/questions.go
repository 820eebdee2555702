package backend

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/proto"
	"github.com/google/uuid"
)

// GenerateResult is the outcome of a question generation request.
type GenerateResult struct {
	Count int
	// Existing is true when questions were already there and nothing was
	// generated.
	Existing bool
}

// GenerateQuestions creates discussion questions for a book and assigns
// them round-robin to the club's members. Premium only. Generating twice
// is a no-op reporting the existing count, and concurrent requests for
// the same book collapse into a single generation.
func (b *Backend) GenerateQuestions(ctx context.Context, user models.Profile, bookID string) (GenerateResult, error) {
	book, err := b.Book(ctx, bookID)
	if err != nil {
		return GenerateResult{}, err
	}
	if _, err := b.Member(ctx, book.ClubID, user.ID); err != nil {
		return GenerateResult{}, err
	}
	if err := b.requireFeature(user, proto.FeatureAIQuestions); err != nil {
		return GenerateResult{}, err
	}

	v, err, _ := b.generating.Do(bookID, func() (interface{}, error) {
		return b.generateQuestions(ctx, book)
	})
	if err != nil {
		return GenerateResult{}, err
	}

	return v.(GenerateResult), nil
}

func (b *Backend) generateQuestions(ctx context.Context, book models.Book) (GenerateResult, error) {
	existing, err := b.store.CountQuestionsByBook(ctx, b.db, book.ID)
	if err != nil {
		return GenerateResult{}, err
	}
	if existing > 0 {
		return GenerateResult{Count: existing, Existing: true}, nil
	}

	var themeName, themeDesc string
	if book.ThemeID.Valid {
		theme, err := b.store.GetThemeByID(ctx, b.db, book.ThemeID.String)
		if err == nil {
			themeName = theme.Name
			themeDesc = theme.Description.String
		}
	}

	questions, err := b.ai.GenerateQuestions(ctx, book.Title, book.Author, themeName, themeDesc)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("generate questions: %w", err)
	}
	if len(questions) == 0 {
		return GenerateResult{}, fmt.Errorf("generate questions: empty response")
	}

	members, err := b.store.ListMembers(ctx, b.db, book.ClubID)
	if err != nil {
		return GenerateResult{}, err
	}

	// All questions land or none do.
	err = b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		for i, q := range questions {
			var assignedTo sql.NullString
			if len(members) > 0 {
				assignedTo = nullString(members[i%len(members)].UserID)
			}
			dq := models.DiscussionQuestion{
				ID:         uuid.NewString(),
				BookID:     book.ID,
				Question:   q,
				AssignedTo: assignedTo,
				SortOrder:  i,
			}
			if err := b.store.CreateQuestion(ctx, tx, dq); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return GenerateResult{}, err
	}

	questionCounter.Add(float64(len(questions)))
	b.logger.Info("questions generated", "club", book.ClubID, "book", book.ID, "count", len(questions))
	return GenerateResult{Count: len(questions)}, nil
}

// Questions returns a book's discussion questions in order.
func (b *Backend) Questions(ctx context.Context, userID, bookID string) ([]models.DiscussionQuestion, error) {
	book, err := b.Book(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if _, err := b.Member(ctx, book.ClubID, userID); err != nil {
		return nil, err
	}
	return b.store.ListQuestionsByBook(ctx, b.db, bookID)
}
