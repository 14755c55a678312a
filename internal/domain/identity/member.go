package identity

import (
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrgRole represents a member's role within an organization
type OrgRole string

const (
	OrgRoleOwner  OrgRole = "owner"
	OrgRoleAdmin  OrgRole = "admin"
	OrgRoleMember OrgRole = "member"
)

// IsValid returns true for a recognized role
func (r OrgRole) IsValid() bool {
	switch r {
	case OrgRoleOwner, OrgRoleAdmin, OrgRoleMember:
		return true
	}
	return false
}

// String returns the role as a string
func (r OrgRole) String() string {
	return string(r)
}

// CanManage reports whether the role may manage organization resources
func (r OrgRole) CanManage() bool {
	return r == OrgRoleOwner || r == OrgRoleAdmin
}

// OrgMember links a user to an organization with a role.
// A user holds at most one membership; it is resolved into the JWT
// claims at login so request handlers never look it up again.
type OrgMember struct {
	shared.BaseAggregateRoot
	OrgID    uuid.UUID
	UserID   uuid.UUID
	Role     OrgRole
	JoinedAt time.Time
}

// NewOrgMember creates a new membership
func NewOrgMember(orgID, userID uuid.UUID, role OrgRole) (*OrgMember, error) {
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown organization role")
	}
	return &OrgMember{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrgID:             orgID,
		UserID:            userID,
		Role:              role,
		JoinedAt:          time.Now(),
	}, nil
}

// ChangeRole updates the member's role. The last owner cannot be
// demoted; the service enforces that with a count check.
func (m *OrgMember) ChangeRole(role OrgRole) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown organization role")
	}
	m.Role = role
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
	return nil
}
