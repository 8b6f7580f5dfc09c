package usecase

import (
	"context"
	"errors"

	"github.com/iho/hisab/internal/domain"
)

// AccessGate checks a caller's membership role against an allowed-role set
// before an operation touches a business's data. It holds no state of its
// own; roles live with the membership repository.
type AccessGate struct {
	memberships MembershipRepository
}

// NewAccessGate creates a new AccessGate.
func NewAccessGate(memberships MembershipRepository) *AccessGate {
	return &AccessGate{memberships: memberships}
}

// Require returns nil when userID holds an active membership in businessID
// with a role in allowed, domain.ErrForbidden otherwise.
func (g *AccessGate) Require(ctx context.Context, businessID, userID string, allowed domain.RoleSet) error {
	m, err := g.memberships.Get(ctx, businessID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return domain.ErrForbidden
		}

		return err
	}

	if !m.Active() || !allowed.Contains(m.Role) {
		return domain.ErrForbidden
	}

	return nil
}
