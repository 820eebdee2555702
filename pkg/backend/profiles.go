package backend

import (
	"context"
	"errors"

	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/proto"
)

// AuthorizeProfile returns the profile for an authenticated user,
// creating it the first time the user shows up. The claims come from the
// auth provider's token, so they are trusted as-is.
func (b *Backend) AuthorizeProfile(ctx context.Context, id, email, fullName, avatarURL string) (models.Profile, error) {
	if p, ok := b.cache.Get(id); ok {
		return p, nil
	}

	p, err := b.store.GetProfileByID(ctx, b.db, id)
	if err != nil && !errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
		return models.Profile{}, err
	}
	if err == nil {
		b.cache.Set(id, p)
		return p, nil
	}

	if err := b.store.CreateProfile(ctx, b.db, id, email, fullName, avatarURL); err != nil {
		// A concurrent request may have created the row first.
		if !errors.Is(db.WrapError(err), db.ErrDuplicateKey) {
			return models.Profile{}, err
		}
	}

	p, err = b.store.GetProfileByID(ctx, b.db, id)
	if err != nil {
		return models.Profile{}, err
	}

	b.logger.Info("profile created", "user", p.ID, "email", p.Email)
	b.cache.Set(id, p)
	return p, nil
}

// Profile returns the profile with the given id.
func (b *Backend) Profile(ctx context.Context, id string) (models.Profile, error) {
	p, err := b.store.GetProfileByID(ctx, b.db, id)
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return models.Profile{}, proto.ErrUserNotFound
		}
		return models.Profile{}, err
	}
	return p, nil
}

// UpdateProfile updates the profile's display name and avatar.
func (b *Backend) UpdateProfile(ctx context.Context, id, fullName, avatarURL string) (models.Profile, error) {
	if err := b.store.UpdateProfile(ctx, b.db, id, fullName, avatarURL); err != nil {
		return models.Profile{}, err
	}

	b.cache.Delete(id)
	return b.Profile(ctx, id)
}
