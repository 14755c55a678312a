package models

import (
	"time"

	"github.com/fiberops/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// UserModel is the persistence model for users
type UserModel struct {
	AggregateModel
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FullName     string `gorm:"type:varchar(200)"`
	Phone        string `gorm:"type:varchar(50)"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
}

// TableName returns the table name
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Phone:        m.Phone,
		IsActive:     m.IsActive,
		LastLoginAt:  m.LastLoginAt,
	}
	m.PopulateAggregateRoot(&user.BaseAggregateRoot)
	return user
}

// FromDomain populates the model from a domain user
func (m *UserModel) FromDomain(user *identity.User) {
	m.FromDomainAggregateRoot(user.BaseAggregateRoot)
	m.Email = user.Email
	m.PasswordHash = user.PasswordHash
	m.FullName = user.FullName
	m.Phone = user.Phone
	m.IsActive = user.IsActive
	m.LastLoginAt = user.LastLoginAt
}

// OrganizationModel is the persistence model for organizations
type OrganizationModel struct {
	AggregateModel
	Name     string `gorm:"type:varchar(200);not null"`
	Slug     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name
func (OrganizationModel) TableName() string {
	return "organizations"
}

// ToDomain converts the model to a domain organization
func (m *OrganizationModel) ToDomain() *identity.Organization {
	org := &identity.Organization{
		Name:     m.Name,
		Slug:     m.Slug,
		IsActive: m.IsActive,
	}
	m.PopulateAggregateRoot(&org.BaseAggregateRoot)
	return org
}

// FromDomain populates the model from a domain organization
func (m *OrganizationModel) FromDomain(org *identity.Organization) {
	m.FromDomainAggregateRoot(org.BaseAggregateRoot)
	m.Name = org.Name
	m.Slug = org.Slug
	m.IsActive = org.IsActive
}

// OrgMemberModel is the persistence model for organization memberships.
// The unique index on user_id enforces one membership per user.
type OrgMemberModel struct {
	AggregateModel
	OrgID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Role     string    `gorm:"type:varchar(20);not null"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName returns the table name
func (OrgMemberModel) TableName() string {
	return "org_members"
}

// ToDomain converts the model to a domain membership
func (m *OrgMemberModel) ToDomain() *identity.OrgMember {
	member := &identity.OrgMember{
		OrgID:    m.OrgID,
		UserID:   m.UserID,
		Role:     identity.OrgRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
	m.PopulateAggregateRoot(&member.BaseAggregateRoot)
	return member
}

// FromDomain populates the model from a domain membership
func (m *OrgMemberModel) FromDomain(member *identity.OrgMember) {
	m.FromDomainAggregateRoot(member.BaseAggregateRoot)
	m.OrgID = member.OrgID
	m.UserID = member.UserID
	m.Role = member.Role.String()
	m.JoinedAt = member.JoinedAt
}
