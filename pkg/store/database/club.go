package database

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/store"
)

type clubStore struct{}

var _ store.ClubStore = (*clubStore)(nil)

// CreateClub implements store.ClubStore.
func (*clubStore) CreateClub(ctx context.Context, tx db.Handler, id string, name string, description string, ownerID string, inviteCode string, cadence string) error {
	query := tx.Rebind(`INSERT INTO clubs (id, name, description, owner_id, invite_code, meeting_cadence, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);`)
	_, err := tx.ExecContext(ctx, query, id, name, nullable(description), ownerID, inviteCode, cadence)
	return err //nolint:wrapcheck
}

// GetClubByID implements store.ClubStore.
func (*clubStore) GetClubByID(ctx context.Context, tx db.Handler, id string) (models.Club, error) {
	var m models.Club
	query := tx.Rebind(`SELECT * FROM clubs WHERE id = ?;`)
	err := tx.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// FindClubByInviteCode implements store.ClubStore.
func (*clubStore) FindClubByInviteCode(ctx context.Context, tx db.Handler, code string) (models.Club, error) {
	var m models.Club
	query := tx.Rebind(`SELECT * FROM clubs WHERE invite_code = ?;`)
	err := tx.GetContext(ctx, &m, query, code)
	return m, err //nolint:wrapcheck
}

// ListClubsByUserID implements store.ClubStore.
func (*clubStore) ListClubsByUserID(ctx context.Context, tx db.Handler, userID string) ([]models.Club, error) {
	var ms []models.Club
	query := tx.Rebind(`SELECT clubs.*
			FROM clubs
			INNER JOIN club_members ON clubs.id = club_members.club_id
			WHERE club_members.user_id = ?
			ORDER BY clubs.created_at;`)
	err := tx.SelectContext(ctx, &ms, query, userID)
	return ms, err //nolint:wrapcheck
}

// CountClubsByOwnerID implements store.ClubStore.
func (*clubStore) CountClubsByOwnerID(ctx context.Context, tx db.Handler, ownerID string) (int, error) {
	var count int
	query := tx.Rebind(`SELECT COUNT(*) FROM clubs WHERE owner_id = ?;`)
	err := tx.GetContext(ctx, &count, query, ownerID)
	return count, err //nolint:wrapcheck
}

// UpdateClub implements store.ClubStore.
func (*clubStore) UpdateClub(ctx context.Context, tx db.Handler, id string, name string, description string, currentTheme string, cadence string) error {
	query := tx.Rebind(`UPDATE clubs
			SET name = ?, description = ?, current_theme = ?, meeting_cadence = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, name, nullable(description), nullable(currentTheme), cadence, id)
	return err //nolint:wrapcheck
}

// DeleteClub implements store.ClubStore.
func (*clubStore) DeleteClub(ctx context.Context, tx db.Handler, id string) error {
	query := tx.Rebind(`DELETE FROM clubs WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}
