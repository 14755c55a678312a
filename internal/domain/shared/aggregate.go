package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// OrgAggregateRoot extends BaseAggregateRoot with organization scoping.
// Every tenant-owned aggregate embeds it; repositories filter on OrgID.
type OrgAggregateRoot struct {
	BaseAggregateRoot
	OrgID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
}

// NewOrgAggregateRoot creates a new organization-scoped aggregate root
func NewOrgAggregateRoot(orgID uuid.UUID) OrgAggregateRoot {
	return OrgAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		OrgID:             orgID,
	}
}

// NewOrgAggregateRootWithCreator creates a new organization-scoped aggregate root with creator info
func NewOrgAggregateRootWithCreator(orgID, createdBy uuid.UUID) OrgAggregateRoot {
	return OrgAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		OrgID:             orgID,
		CreatedBy:         &createdBy,
	}
}

// SetCreatedBy sets the creator user ID
func (o *OrgAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	o.CreatedBy = &userID
}
