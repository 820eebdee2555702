package store

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
)

// ClubStore is an interface for managing clubs.
type ClubStore interface {
	CreateClub(ctx context.Context, h db.Handler, id string, name string, description string, ownerID string, inviteCode string, cadence string) error
	GetClubByID(ctx context.Context, h db.Handler, id string) (models.Club, error)
	FindClubByInviteCode(ctx context.Context, h db.Handler, code string) (models.Club, error)
	ListClubsByUserID(ctx context.Context, h db.Handler, userID string) ([]models.Club, error)
	CountClubsByOwnerID(ctx context.Context, h db.Handler, ownerID string) (int, error)
	UpdateClub(ctx context.Context, h db.Handler, id string, name string, description string, currentTheme string, cadence string) error
	DeleteClub(ctx context.Context, h db.Handler, id string) error
}
