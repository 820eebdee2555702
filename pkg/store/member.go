package store

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
)

// MemberStore is an interface for managing club memberships.
type MemberStore interface {
	// AddMember inserts a membership row. Inserting an existing
	// (club, user) pair is a no-op.
	AddMember(ctx context.Context, h db.Handler, id string, clubID string, userID string, role string) error
	GetMember(ctx context.Context, h db.Handler, clubID string, userID string) (models.ClubMember, error)
	ListMembers(ctx context.Context, h db.Handler, clubID string) ([]models.ClubMemberProfile, error)
	RemoveMember(ctx context.Context, h db.Handler, clubID string, userID string) error
}
