package proto

import (
	"errors"
)

var (
	// ErrUnauthorized is returned when the user is not authorized to perform action.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrClubNotFound is returned when a club is not found.
	ErrClubNotFound = errors.New("club not found")
	// ErrNotAMember is returned when the user is not a member of the club.
	ErrNotAMember = errors.New("not a member of this club")
	// ErrBookNotFound is returned when a book is not found.
	ErrBookNotFound = errors.New("book not found")
	// ErrBookNotOpen is returned when a book is past nomination or voting.
	ErrBookNotOpen = errors.New("book is not open for voting")
	// ErrNoCandidates is returned when winner selection finds nothing to pick from.
	ErrNoCandidates = errors.New("no books to select from")
	// ErrMeetingNotFound is returned when a meeting is not found.
	ErrMeetingNotFound = errors.New("meeting not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrPremiumRequired is returned when a free-tier user hits a premium feature.
	ErrPremiumRequired = errors.New("premium subscription required")
	// ErrNoBillingAccount is returned when the user has no billing customer yet.
	ErrNoBillingAccount = errors.New("no billing account for user")
)
