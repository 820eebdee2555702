package backend

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"sort"
	"time"

	"github.com/clubreads/clubreads/pkg/access"
	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/proto"
	"github.com/google/uuid"
)

const inviteCodeLen = 8

const inviteCodeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateInviteCode returns a new random invite code.
func GenerateInviteCode() (string, error) {
	code := make([]byte, inviteCodeLen)
	max := big.NewInt(int64(len(inviteCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate invite code: %w", err)
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// CreateClub creates a club owned by the given profile. The owner joins
// as a member in the same transaction. Free profiles can own one club.
func (b *Backend) CreateClub(ctx context.Context, owner models.Profile, name, description, cadence string) (models.Club, error) {
	if name == "" {
		return models.Club{}, errors.New("club name is required")
	}
	if cadence == "" {
		cadence = models.CadenceMonthly
	}
	if !models.ValidCadence(cadence) {
		return models.Club{}, fmt.Errorf("invalid meeting cadence %q", cadence)
	}

	if err := b.allowCreateClub(ctx, owner); err != nil {
		return models.Club{}, err
	}

	code, err := GenerateInviteCode()
	if err != nil {
		return models.Club{}, err
	}

	clubID := uuid.NewString()
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := b.store.CreateClub(ctx, tx, clubID, name, description, owner.ID, code, cadence); err != nil {
			return err
		}
		return b.store.AddMember(ctx, tx, uuid.NewString(), clubID, owner.ID, access.Owner.String())
	}); err != nil {
		return models.Club{}, db.WrapError(err)
	}

	b.logger.Info("club created", "club", clubID, "owner", owner.ID)
	return b.store.GetClubByID(ctx, b.db, clubID)
}

// Club returns the club with the given id.
func (b *Backend) Club(ctx context.Context, id string) (models.Club, error) {
	c, err := b.store.GetClubByID(ctx, b.db, id)
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return models.Club{}, proto.ErrClubNotFound
		}
		return models.Club{}, err
	}
	return c, nil
}

// Clubs returns the clubs the user belongs to.
func (b *Backend) Clubs(ctx context.Context, userID string) ([]models.Club, error) {
	return b.store.ListClubsByUserID(ctx, b.db, userID)
}

// Member returns the user's membership in a club, or ErrNotAMember.
func (b *Backend) Member(ctx context.Context, clubID, userID string) (models.ClubMember, error) {
	m, err := b.store.GetMember(ctx, b.db, clubID, userID)
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return models.ClubMember{}, proto.ErrNotAMember
		}
		return models.ClubMember{}, err
	}
	return m, nil
}

// JoinByInviteCode adds the user to the club behind an invite code.
// Joining a club twice is a no-op, and an unknown code has no side
// effects at all.
func (b *Backend) JoinByInviteCode(ctx context.Context, user models.Profile, code string) (models.Club, error) {
	club, err := b.store.FindClubByInviteCode(ctx, b.db, code)
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return models.Club{}, proto.ErrClubNotFound
		}
		return models.Club{}, err
	}

	if err := b.store.AddMember(ctx, b.db, uuid.NewString(), club.ID, user.ID, access.Member.String()); err != nil {
		return models.Club{}, db.WrapError(err)
	}

	b.logger.Info("member joined", "club", club.ID, "user", user.ID)
	return club, nil
}

// InviteURL returns the public join URL for a club.
func (b *Backend) InviteURL(club models.Club) string {
	return fmt.Sprintf("%s/join?code=%s", b.cfg.HTTP.PublicURL, url.QueryEscape(club.InviteCode))
}

// UpdateClubParams are the editable club settings. Empty fields keep
// their current value.
type UpdateClubParams struct {
	Name         string
	Description  string
	CurrentTheme string
	Cadence      string
}

// UpdateClub changes a club's settings. Owners and admins only.
func (b *Backend) UpdateClub(ctx context.Context, actor models.Profile, clubID string, params UpdateClubParams) (models.Club, error) {
	member, err := b.Member(ctx, clubID, actor.ID)
	if err != nil {
		return models.Club{}, err
	}
	if access.ParseRole(member.Role) < access.Admin {
		return models.Club{}, proto.ErrUnauthorized
	}

	club, err := b.Club(ctx, clubID)
	if err != nil {
		return models.Club{}, err
	}
	if params.Name == "" {
		params.Name = club.Name
	}
	if params.Description == "" {
		params.Description = club.Description.String
	}
	if params.CurrentTheme == "" {
		params.CurrentTheme = club.CurrentTheme.String
	}
	if params.Cadence == "" {
		params.Cadence = club.MeetingCadence
	}
	if !models.ValidCadence(params.Cadence) {
		return models.Club{}, fmt.Errorf("invalid meeting cadence %q", params.Cadence)
	}

	if err := b.store.UpdateClub(ctx, b.db, clubID, params.Name, params.Description, params.CurrentTheme, params.Cadence); err != nil {
		return models.Club{}, err
	}

	b.logger.Info("club updated", "club", clubID, "user", actor.ID)
	return b.Club(ctx, clubID)
}

// DeleteClub removes a club and everything hanging off it through the
// cascading foreign keys. Only the owner can delete.
func (b *Backend) DeleteClub(ctx context.Context, actor models.Profile, clubID string) error {
	member, err := b.Member(ctx, clubID, actor.ID)
	if err != nil {
		return err
	}
	if access.ParseRole(member.Role) != access.Owner {
		return proto.ErrUnauthorized
	}

	if err := b.store.DeleteClub(ctx, b.db, clubID); err != nil {
		return err
	}

	b.logger.Info("club deleted", "club", clubID, "owner", actor.ID)
	return nil
}

// LeaveClub removes the user's own membership. The owner cannot leave
// their club; deleting it is the way out.
func (b *Backend) LeaveClub(ctx context.Context, user models.Profile, clubID string) error {
	member, err := b.Member(ctx, clubID, user.ID)
	if err != nil {
		return err
	}
	if access.ParseRole(member.Role) == access.Owner {
		return proto.ErrUnauthorized
	}

	if err := b.store.RemoveMember(ctx, b.db, clubID, user.ID); err != nil {
		return err
	}

	b.logger.Info("member left", "club", clubID, "user", user.ID)
	return nil
}

// ClubDetail is everything the club page shows.
type ClubDetail struct {
	Club        models.Club
	Members     []models.ClubMemberProfile
	CurrentBook *models.Book
	Nominations []models.BookTally
	Meetings    []models.Meeting
	Questions   []models.DiscussionQuestion
	// History is the club's reading history: completed books, most
	// recently finished first.
	History []models.Book
}

// ClubDetailFor loads the full club view for a member.
func (b *Backend) ClubDetailFor(ctx context.Context, clubID, userID string) (ClubDetail, error) {
	club, err := b.Club(ctx, clubID)
	if err != nil {
		return ClubDetail{}, err
	}
	if _, err := b.Member(ctx, clubID, userID); err != nil {
		return ClubDetail{}, err
	}

	detail := ClubDetail{Club: club}

	detail.Members, err = b.store.ListMembers(ctx, b.db, clubID)
	if err != nil {
		return ClubDetail{}, err
	}

	current, err := b.store.GetCurrentBook(ctx, b.db, clubID)
	switch {
	case err == nil:
		detail.CurrentBook = &current
	case !errors.Is(db.WrapError(err), db.ErrRecordNotFound):
		return ClubDetail{}, err
	}

	detail.Nominations, err = b.store.ListOpenNominations(ctx, b.db, clubID)
	if err != nil {
		return ClubDetail{}, err
	}

	detail.Meetings, err = b.store.ListUpcomingMeetings(ctx, b.db, clubID, time.Now().UTC())
	if err != nil {
		return ClubDetail{}, err
	}

	if detail.CurrentBook != nil {
		detail.Questions, err = b.store.ListQuestionsByBook(ctx, b.db, detail.CurrentBook.ID)
		if err != nil {
			return ClubDetail{}, err
		}
	}

	books, err := b.store.ListBooksByClub(ctx, b.db, clubID)
	if err != nil {
		return ClubDetail{}, err
	}
	for _, book := range books {
		if book.Status == models.StatusCompleted {
			detail.History = append(detail.History, book)
		}
	}
	sort.Slice(detail.History, func(i, j int) bool {
		return detail.History[i].CompletedAt.Time.After(detail.History[j].CompletedAt.Time)
	})

	return detail, nil
}
