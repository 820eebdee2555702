package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/clubreads/clubreads/pkg/billing"
	"github.com/clubreads/clubreads/pkg/db"
	"github.com/clubreads/clubreads/pkg/db/models"
	"github.com/clubreads/clubreads/pkg/proto"
)

// CheckoutURL starts a premium checkout for the user and returns the URL
// to send them to. The billing customer is created lazily on first use.
func (b *Backend) CheckoutURL(ctx context.Context, user models.Profile) (string, error) {
	customerID := user.StripeCustomerID.String
	if customerID == "" {
		id, err := b.billing.CreateCustomer(ctx, user.Email, user.ID)
		if err != nil {
			return "", fmt.Errorf("create billing customer: %w", err)
		}
		if err := b.store.SetCustomerID(ctx, b.db, user.ID, id); err != nil {
			return "", err
		}
		b.cache.Delete(user.ID)
		customerID = id
	}

	return b.billing.CreateCheckoutSession(ctx, customerID, user.ID)
}

// PortalURL opens the billing portal for an existing subscriber.
func (b *Backend) PortalURL(ctx context.Context, user models.Profile) (string, error) {
	if !user.StripeCustomerID.Valid || user.StripeCustomerID.String == "" {
		return "", proto.ErrNoBillingAccount
	}
	return b.billing.CreatePortalSession(ctx, user.StripeCustomerID.String)
}

// HandleBillingEvent applies a verified billing webhook event to the
// profiles. Unknown event types are acknowledged and ignored.
func (b *Backend) HandleBillingEvent(ctx context.Context, e billing.Event) error {
	switch e.Type {
	case billing.EventCheckoutCompleted:
		var session billing.CheckoutSession
		if err := json.Unmarshal(e.Data.Object, &session); err != nil {
			return fmt.Errorf("decode checkout session: %w", err)
		}
		userID := session.Metadata["user_id"]
		if userID == "" {
			b.logger.Warn("checkout completed without user metadata", "event", e.ID)
			return nil
		}
		if session.Customer != "" {
			if err := b.store.SetCustomerID(ctx, b.db, userID, session.Customer); err != nil {
				return err
			}
		}
		if err := b.store.SetPremium(ctx, b.db, userID, true); err != nil {
			return err
		}
		b.cache.Delete(userID)
		b.logger.Info("premium activated", "user", userID)
		return nil

	case billing.EventSubscriptionUpdated, billing.EventSubscriptionDeleted:
		var sub billing.Subscription
		if err := json.Unmarshal(e.Data.Object, &sub); err != nil {
			return fmt.Errorf("decode subscription: %w", err)
		}
		premium := e.Type == billing.EventSubscriptionUpdated && sub.Status == "active"

		p, err := b.store.FindProfileByCustomerID(ctx, b.db, sub.Customer)
		if err != nil {
			if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
				b.logger.Warn("subscription event for unknown customer", "customer", sub.Customer)
				return nil
			}
			return err
		}
		if err := b.store.SetPremium(ctx, b.db, p.ID, premium); err != nil {
			return err
		}
		b.cache.Delete(p.ID)
		b.logger.Info("premium updated", "user", p.ID, "premium", premium)
		return nil

	default:
		b.logger.Debug("ignoring billing event", "type", e.Type)
		return nil
	}
}
