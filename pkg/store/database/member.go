package database

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/store"
)

type memberStore struct{}

var _ store.MemberStore = (*memberStore)(nil)

// AddMember implements store.MemberStore.
func (*memberStore) AddMember(ctx context.Context, tx db.Handler, id string, clubID string, userID string, role string) error {
	query := `INSERT INTO club_members (id, club_id, user_id, role)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (club_id, user_id) DO NOTHING;`
	_, err := tx.ExecContext(ctx, tx.Rebind(query), id, clubID, userID, role)
	return err //nolint:wrapcheck
}

// GetMember implements store.MemberStore.
func (*memberStore) GetMember(ctx context.Context, tx db.Handler, clubID string, userID string) (models.ClubMember, error) {
	var m models.ClubMember
	query := tx.Rebind(`SELECT * FROM club_members WHERE club_id = ? AND user_id = ?;`)
	err := tx.GetContext(ctx, &m, query, clubID, userID)
	return m, err //nolint:wrapcheck
}

// ListMembers implements store.MemberStore.
func (*memberStore) ListMembers(ctx context.Context, tx db.Handler, clubID string) ([]models.ClubMemberProfile, error) {
	var ms []models.ClubMemberProfile
	query := tx.Rebind(`SELECT club_members.*,
			profiles.id AS "profile.id",
			profiles.email AS "profile.email",
			profiles.full_name AS "profile.full_name",
			profiles.avatar_url AS "profile.avatar_url",
			profiles.is_premium AS "profile.is_premium",
			profiles.stripe_customer_id AS "profile.stripe_customer_id",
			profiles.created_at AS "profile.created_at",
			profiles.updated_at AS "profile.updated_at"
			FROM club_members
			INNER JOIN profiles ON club_members.user_id = profiles.id
			WHERE club_members.club_id = ?
			ORDER BY club_members.joined_at;`)
	err := tx.SelectContext(ctx, &ms, query, clubID)
	return ms, err //nolint:wrapcheck
}

// RemoveMember implements store.MemberStore.
func (*memberStore) RemoveMember(ctx context.Context, tx db.Handler, clubID string, userID string) error {
	query := tx.Rebind(`DELETE FROM club_members WHERE club_id = ? AND user_id = ?;`)
	_, err := tx.ExecContext(ctx, query, clubID, userID)
	return err //nolint:wrapcheck
}
