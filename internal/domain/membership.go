package domain

import "time"

// Role is a user's role within a business.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// RoleSet is a fixed set of roles allowed to perform an operation.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Contains reports whether r is in the set.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

// MembershipStatus is the lifecycle state of a membership.
type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "active"
	MembershipInactive MembershipStatus = "inactive"
)

// Membership ties a user to a business with a role.
type Membership struct {
	ID         string
	BusinessID string
	UserID     string
	Role       Role
	Status     MembershipStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Active reports whether the membership currently grants access.
func (m *Membership) Active() bool {
	return m.Status == MembershipActive
}
