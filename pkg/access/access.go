package access

import (
	"encoding"
	"errors"
)

// Role is the level of access a member has within a club.
type Role int // nolint: revive

const (
	// Member can nominate, vote, and view club content.
	Member Role = iota

	// Admin can additionally manage books, meetings, and questions.
	Admin

	// Owner has full control of the club, including deleting it.
	Owner
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case Member:
		return "member"
	case Admin:
		return "admin"
	case Owner:
		return "owner"
	default:
		return "unknown"
	}
}

// ParseRole parses a role string.
func ParseRole(s string) Role {
	switch s {
	case "member":
		return Member
	case "admin":
		return Admin
	case "owner":
		return Owner
	default:
		return Role(-1)
	}
}

var (
	_ encoding.TextMarshaler   = Role(0)
	_ encoding.TextUnmarshaler = (*Role)(nil)
)

// ErrInvalidRole is returned when an invalid role is provided.
var ErrInvalidRole = errors.New("invalid role")

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	l := ParseRole(string(text))
	if l < 0 {
		return ErrInvalidRole
	}

	*r = l

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}
