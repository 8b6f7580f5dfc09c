package usecase

import (
	"time"

	"github.com/iho/hisab/internal/domain"
)

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultPageLimit is the page size used when the caller does not supply one.
	DefaultPageLimit = 20

	// MaxPageLimit caps the page size of transaction listings.
	MaxPageLimit = 100

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

// Allowed-role sets per operation. Creation is open to working members;
// reads extend to viewers; managing someone else's records needs owner or
// admin.
var (
	RolesRecord = domain.NewRoleSet(domain.RoleOwner, domain.RoleAdmin, domain.RoleMember)
	RolesRead   = domain.NewRoleSet(domain.RoleOwner, domain.RoleAdmin, domain.RoleMember, domain.RoleViewer)
	RolesManage = domain.NewRoleSet(domain.RoleOwner, domain.RoleAdmin)
)
