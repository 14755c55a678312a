package models

import (
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel extends BaseModel with a version for optimistic locking
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// PopulateAggregateRoot populates a domain BaseAggregateRoot from the model
func (m *AggregateModel) PopulateAggregateRoot(a *shared.BaseAggregateRoot) {
	a.BaseEntity.ID = m.ID
	a.BaseEntity.CreatedAt = m.CreatedAt
	a.BaseEntity.UpdatedAt = m.UpdatedAt
	a.Version = m.Version
}

// OrgAggregateModel extends AggregateModel with organization scoping
type OrgAggregateModel struct {
	AggregateModel
	OrgID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
}

// FromDomainOrgAggregateRoot populates OrgAggregateModel from domain OrgAggregateRoot
func (m *OrgAggregateModel) FromDomainOrgAggregateRoot(o shared.OrgAggregateRoot) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrgID = o.OrgID
	m.CreatedBy = o.CreatedBy
}

// PopulateOrgAggregateRoot populates a domain OrgAggregateRoot from the model
func (m *OrgAggregateModel) PopulateOrgAggregateRoot(o *shared.OrgAggregateRoot) {
	m.PopulateAggregateRoot(&o.BaseAggregateRoot)
	o.OrgID = m.OrgID
	o.CreatedBy = m.CreatedBy
}
