package database

import (
	"context"
	"strings"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/store"
)

type profileStore struct{}

var _ store.ProfileStore = (*profileStore)(nil)

// GetProfileByID implements store.ProfileStore.
func (*profileStore) GetProfileByID(ctx context.Context, tx db.Handler, id string) (models.Profile, error) {
	var m models.Profile
	query := tx.Rebind(`SELECT * FROM profiles WHERE id = ?;`)
	err := tx.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// FindProfileByCustomerID implements store.ProfileStore.
func (*profileStore) FindProfileByCustomerID(ctx context.Context, tx db.Handler, customerID string) (models.Profile, error) {
	var m models.Profile
	query := tx.Rebind(`SELECT * FROM profiles WHERE stripe_customer_id = ?;`)
	err := tx.GetContext(ctx, &m, query, customerID)
	return m, err //nolint:wrapcheck
}

// CreateProfile implements store.ProfileStore.
func (*profileStore) CreateProfile(ctx context.Context, tx db.Handler, id string, email string, fullName string, avatarURL string) error {
	email = strings.ToLower(email)

	query := tx.Rebind(`INSERT INTO profiles (id, email, full_name, avatar_url, updated_at)
			VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP);`)
	_, err := tx.ExecContext(ctx, query, id, email, nullable(fullName), nullable(avatarURL))
	return err //nolint:wrapcheck
}

// UpdateProfile implements store.ProfileStore.
func (*profileStore) UpdateProfile(ctx context.Context, tx db.Handler, id string, fullName string, avatarURL string) error {
	query := tx.Rebind(`UPDATE profiles SET full_name = ?, avatar_url = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, nullable(fullName), nullable(avatarURL), id)
	return err //nolint:wrapcheck
}

// SetPremium implements store.ProfileStore.
func (*profileStore) SetPremium(ctx context.Context, tx db.Handler, id string, premium bool) error {
	query := tx.Rebind(`UPDATE profiles SET is_premium = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, premium, id)
	return err //nolint:wrapcheck
}

// SetPremiumByCustomerID implements store.ProfileStore.
func (*profileStore) SetPremiumByCustomerID(ctx context.Context, tx db.Handler, customerID string, premium bool) error {
	query := tx.Rebind(`UPDATE profiles SET is_premium = ?, updated_at = CURRENT_TIMESTAMP
			WHERE stripe_customer_id = ?;`)
	_, err := tx.ExecContext(ctx, query, premium, customerID)
	return err //nolint:wrapcheck
}

// SetCustomerID implements store.ProfileStore.
func (*profileStore) SetCustomerID(ctx context.Context, tx db.Handler, id string, customerID string) error {
	query := tx.Rebind(`UPDATE profiles SET stripe_customer_id = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?;`)
	_, err := tx.ExecContext(ctx, query, customerID, id)
	return err //nolint:wrapcheck
}
