package backend

import (
	"context"

	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/proto"
)

// CanUse reports whether a profile may use a premium feature. There are
// no grace periods and no metering: the premium flag decides.
func CanUse(p models.Profile, _ proto.Feature) bool {
	return p.IsPremium
}

// requireFeature returns ErrPremiumRequired when the profile is not
// allowed to use the feature.
func (b *Backend) requireFeature(p models.Profile, f proto.Feature) error {
	if CanUse(p, f) {
		return nil
	}
	b.logger.Debug("premium feature denied", "user", p.ID, "feature", f)
	return proto.ErrPremiumRequired
}

// allowCreateClub applies the multi-club gate: everyone gets their first
// club, further clubs need premium.
func (b *Backend) allowCreateClub(ctx context.Context, p models.Profile) error {
	owned, err := b.store.CountClubsByOwnerID(ctx, b.db, p.ID)
	if err != nil {
		return err
	}
	if owned == 0 {
		return nil
	}
	return b.requireFeature(p, proto.FeatureMultiClub)
}
