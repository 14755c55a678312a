package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// OrganizationRepository defines the interface for organization persistence
type OrganizationRepository interface {
	Create(ctx context.Context, org *Organization) error
	Update(ctx context.Context, org *Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	FindBySlug(ctx context.Context, slug string) (*Organization, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

// OrgMemberRepository defines the interface for membership persistence
type OrgMemberRepository interface {
	Create(ctx context.Context, member *OrgMember) error
	Update(ctx context.Context, member *OrgMember) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*OrgMember, error)
	FindByOrgID(ctx context.Context, orgID uuid.UUID) ([]*OrgMember, error)
	CountByRole(ctx context.Context, orgID uuid.UUID, role OrgRole) (int64, error)
}
