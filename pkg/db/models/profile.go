// Package models defines the database models for ClubReads.
package models

import (
	"database/sql"
	"time"
)

// Profile is a database model for an authenticated user's profile.
type Profile struct {
	ID               string         `db:"id"`
	Email            string         `db:"email"`
	FullName         sql.NullString `db:"full_name"`
	AvatarURL        sql.NullString `db:"avatar_url"`
	IsPremium        bool           `db:"is_premium"`
	StripeCustomerID sql.NullString `db:"stripe_customer_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// DisplayName returns the profile's name, falling back to a generic
// greeting name when the user never set one.
func (p Profile) DisplayName() string {
	if p.FullName.Valid && p.FullName.String != "" {
		return p.FullName.String
	}
	return "Reader"
}
