package store

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
)

// ProfileStore is an interface for managing user profiles.
type ProfileStore interface {
	GetProfileByID(ctx context.Context, h db.Handler, id string) (models.Profile, error)
	FindProfileByCustomerID(ctx context.Context, h db.Handler, customerID string) (models.Profile, error)
	CreateProfile(ctx context.Context, h db.Handler, id string, email string, fullName string, avatarURL string) error
	UpdateProfile(ctx context.Context, h db.Handler, id string, fullName string, avatarURL string) error
	SetPremium(ctx context.Context, h db.Handler, id string, premium bool) error
	SetPremiumByCustomerID(ctx context.Context, h db.Handler, customerID string, premium bool) error
	SetCustomerID(ctx context.Context, h db.Handler, id string, customerID string) error
}
